package models

import (
	"time"
)

// User is an identity record. Email doubles as the login username; the
// two are always equal because signup derives one from the other.
type User struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	HashedPassword []byte `gorm:"not null"`
	Blogs          []Blog `gorm:"foreignKey:AuthorID"`
}
