package storage

import "folio-hand/models"

func (s *Store) Projects() ([]models.Project, error) {
	var items []models.Project
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) ProjectsByCategory(category string) ([]models.Project, error) {
	var items []models.Project
	err := s.db.Where("category = ?", category).Find(&items).Error
	return items, err
}

func (s *Store) FeaturedProjects() ([]models.Project, error) {
	var items []models.Project
	err := s.db.Where("featured = ?", true).Find(&items).Error
	return items, err
}

func (s *Store) CreateProject(p models.Project) (models.Project, error) {
	err := s.db.Create(&p).Error
	return p, err
}

func (s *Store) UpdateProject(id uint, fields map[string]interface{}) (models.Project, error) {
	var p models.Project
	if err := s.db.First(&p, id).Error; err != nil {
		return models.Project{}, err
	}
	if err := s.db.Model(&p).Updates(fields).Error; err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (s *Store) DeleteProject(id uint) (bool, error) {
	res := s.db.Delete(&models.Project{}, id)
	return res.RowsAffected > 0, res.Error
}
