package storage

import "folio-hand/models"

func (s *Store) Skills() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Find(&skills).Error
	return skills, err
}

func (s *Store) CreateSkill(skill models.Skill) (models.Skill, error) {
	err := s.db.Create(&skill).Error
	return skill, err
}

// UpdateSkill applies a partial field set to the row matching id. Returns
// gorm.ErrRecordNotFound when no row matches; it never inserts.
func (s *Store) UpdateSkill(id uint, fields map[string]interface{}) (models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		return models.Skill{}, err
	}
	if err := s.db.Model(&skill).Updates(fields).Error; err != nil {
		return models.Skill{}, err
	}
	return skill, nil
}

// DeleteSkill reports whether a row was actually removed. Deleting a missing
// id is a no-op, not an error.
func (s *Store) DeleteSkill(id uint) (bool, error) {
	res := s.db.Delete(&models.Skill{}, id)
	return res.RowsAffected > 0, res.Error
}
