package storage

import "folio-hand/models"

func (s *Store) Experiences() ([]models.Experience, error) {
	var items []models.Experience
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) CreateExperience(exp models.Experience) (models.Experience, error) {
	err := s.db.Create(&exp).Error
	return exp, err
}

func (s *Store) UpdateExperience(id uint, fields map[string]interface{}) (models.Experience, error) {
	var exp models.Experience
	if err := s.db.First(&exp, id).Error; err != nil {
		return models.Experience{}, err
	}
	if err := s.db.Model(&exp).Updates(fields).Error; err != nil {
		return models.Experience{}, err
	}
	return exp, nil
}

func (s *Store) DeleteExperience(id uint) (bool, error) {
	res := s.db.Delete(&models.Experience{}, id)
	return res.RowsAffected > 0, res.Error
}
