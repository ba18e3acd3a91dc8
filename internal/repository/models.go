package repository

import "time"

type Account struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:50;uniqueIndex;not null"`
	Email        string    `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:100;not null"` // bcrypt, 60 chars
	CreatedAt    time.Time `gorm:"not null"`
}
