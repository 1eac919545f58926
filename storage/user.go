package storage

import "folio-hand/models"

// CreateUser inserts an account. The caller supplies an already-hashed
// password.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	err := s.db.Create(&user).Error
	return user, err
}

// UserByUsername returns gorm.ErrRecordNotFound for unknown accounts.
func (s *Store) UserByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	return user, err
}
