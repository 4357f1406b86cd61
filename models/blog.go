package models

import "time"

// Blog is a post owned by its author. AuthorID is set from the
// authenticated requester at creation and never changes afterwards.
type Blog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text"`
	AuthorID  uint   `gorm:"index;not null"`
	Author    User   `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
