package models

// User is the admin account checked by /api/auth/login. The password column
// holds a bcrypt hash, never the plaintext.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
