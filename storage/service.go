package storage

import "folio-hand/models"

func (s *Store) Services() ([]models.Service, error) {
	var items []models.Service
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) ServicesByCategory(category string) ([]models.Service, error) {
	var items []models.Service
	err := s.db.Where("category = ?", category).Find(&items).Error
	return items, err
}

func (s *Store) CreateService(svc models.Service) (models.Service, error) {
	err := s.db.Create(&svc).Error
	return svc, err
}

func (s *Store) UpdateService(id uint, fields map[string]interface{}) (models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		return models.Service{}, err
	}
	if err := s.db.Model(&svc).Updates(fields).Error; err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Store) DeleteService(id uint) (bool, error) {
	res := s.db.Delete(&models.Service{}, id)
	return res.RowsAffected > 0, res.Error
}
