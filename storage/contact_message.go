package storage

import "folio-hand/models"

func (s *Store) ContactMessages() ([]models.ContactMessage, error) {
	var items []models.ContactMessage
	err := s.db.Order("created_at desc").Find(&items).Error
	return items, err
}

func (s *Store) CreateContactMessage(msg models.ContactMessage) (models.ContactMessage, error) {
	err := s.db.Create(&msg).Error
	return msg, err
}

// MarkMessageRead flips read to true and touches nothing else. Re-marking an
// already-read message still reports success.
func (s *Store) MarkMessageRead(id uint) (bool, error) {
	res := s.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) DeleteContactMessage(id uint) (bool, error) {
	res := s.db.Delete(&models.ContactMessage{}, id)
	return res.RowsAffected > 0, res.Error
}
