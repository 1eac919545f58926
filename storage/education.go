package storage

import "folio-hand/models"

func (s *Store) EducationEntries() ([]models.Education, error) {
	var items []models.Education
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) CreateEducation(edu models.Education) (models.Education, error) {
	err := s.db.Create(&edu).Error
	return edu, err
}

func (s *Store) UpdateEducation(id uint, fields map[string]interface{}) (models.Education, error) {
	var edu models.Education
	if err := s.db.First(&edu, id).Error; err != nil {
		return models.Education{}, err
	}
	if err := s.db.Model(&edu).Updates(fields).Error; err != nil {
		return models.Education{}, err
	}
	return edu, nil
}

func (s *Store) DeleteEducation(id uint) (bool, error) {
	res := s.db.Delete(&models.Education{}, id)
	return res.RowsAffected > 0, res.Error
}
