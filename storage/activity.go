package storage

import "folio-hand/models"

func (s *Store) Activities() ([]models.Activity, error) {
	var items []models.Activity
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) CreateActivity(act models.Activity) (models.Activity, error) {
	err := s.db.Create(&act).Error
	return act, err
}

func (s *Store) UpdateActivity(id uint, fields map[string]interface{}) (models.Activity, error) {
	var act models.Activity
	if err := s.db.First(&act, id).Error; err != nil {
		return models.Activity{}, err
	}
	if err := s.db.Model(&act).Updates(fields).Error; err != nil {
		return models.Activity{}, err
	}
	return act, nil
}

func (s *Store) DeleteActivity(id uint) (bool, error) {
	res := s.db.Delete(&models.Activity{}, id)
	return res.RowsAffected > 0, res.Error
}
