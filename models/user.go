package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account able to authenticate against the API. Only admins may
// write portfolio content.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name         string    `json:"name" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Email        string    `json:"email" gorm:"type:varchar(254);not null;uniqueIndex" validate:"required,email,lowercase"`
	PasswordHash string    `json:"-" gorm:"type:varchar(100);not null" validate:"required"`
	Role         string    `json:"role" gorm:"type:varchar(10);not null;default:user" validate:"omitempty,oneof=admin user"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	return validateDocument("user", u)
}
