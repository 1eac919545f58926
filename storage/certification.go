package storage

import "folio-hand/models"

func (s *Store) Certifications() ([]models.Certification, error) {
	var items []models.Certification
	err := s.db.Find(&items).Error
	return items, err
}

func (s *Store) CreateCertification(cert models.Certification) (models.Certification, error) {
	err := s.db.Create(&cert).Error
	return cert, err
}

func (s *Store) UpdateCertification(id uint, fields map[string]interface{}) (models.Certification, error) {
	var cert models.Certification
	if err := s.db.First(&cert, id).Error; err != nil {
		return models.Certification{}, err
	}
	if err := s.db.Model(&cert).Updates(fields).Error; err != nil {
		return models.Certification{}, err
	}
	return cert, nil
}

func (s *Store) DeleteCertification(id uint) (bool, error) {
	res := s.db.Delete(&models.Certification{}, id)
	return res.RowsAffected > 0, res.Error
}
