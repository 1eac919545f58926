package storage

import "folio-hand/models"

func (s *Store) Galleries() ([]models.Gallery, error) {
	var items []models.Gallery
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) GalleriesByCategory(category string) ([]models.Gallery, error) {
	var items []models.Gallery
	err := s.db.Where("category = ?", category).Find(&items).Error
	return items, err
}

func (s *Store) FeaturedGalleries() ([]models.Gallery, error) {
	var items []models.Gallery
	err := s.db.Where("featured = ?", true).Find(&items).Error
	return items, err
}

func (s *Store) CreateGallery(g models.Gallery) (models.Gallery, error) {
	err := s.db.Create(&g).Error
	return g, err
}

func (s *Store) UpdateGallery(id uint, fields map[string]interface{}) (models.Gallery, error) {
	var g models.Gallery
	if err := s.db.First(&g, id).Error; err != nil {
		return models.Gallery{}, err
	}
	if err := s.db.Model(&g).Updates(fields).Error; err != nil {
		return models.Gallery{}, err
	}
	return g, nil
}

func (s *Store) DeleteGallery(id uint) (bool, error) {
	res := s.db.Delete(&models.Gallery{}, id)
	return res.RowsAffected > 0, res.Error
}
