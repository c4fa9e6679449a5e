package models

import "time"

// QuizResultRecord is a completed identity quiz outcome saved to a user
// profile. Only the resolved identifiers are stored; the displayable
// content lives in the in-memory result catalog.
type QuizResultRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ResultID  string    `gorm:"size:100;not null" json:"result_id"`
	Code      string    `gorm:"size:4;not null" json:"code"`
	Label     string    `gorm:"size:50;not null" json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
