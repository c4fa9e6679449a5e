package models

import "time"

type DictionaryCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Color string `gorm:"size:7;default:''" json:"color"`
}

type Term struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Title       string              `gorm:"size:255;not null;index" json:"title"`
	TitleEn     string              `gorm:"size:255;default:''" json:"title_en"`
	Description string              `gorm:"type:text;not null" json:"description"`
	Example     string              `gorm:"type:text;default:''" json:"example"`
	CategoryID  *uint               `gorm:"index" json:"category_id,omitempty"`
	Category    *DictionaryCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsFeatured  bool                `gorm:"not null;default:false" json:"is_featured"`
	ImageURL    string              `gorm:"size:500;default:''" json:"image_url"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
