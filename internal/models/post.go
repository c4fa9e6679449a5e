package models

import (
	"time"

	"gorm.io/gorm"
)

type BoardCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Color string `gorm:"size:7;default:''" json:"color"`
}

type Post struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	AuthorID   uint           `gorm:"not null;index" json:"author_id"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID *uint          `gorm:"index" json:"category_id,omitempty"`
	Category   *BoardCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	ViewCount  int            `gorm:"not null;default:0" json:"view_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
