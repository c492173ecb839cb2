package model

import "time"

// PasswordGroup is a named bucket of credential items owned by exactly
// one user. The category column is exposed as "type" in JSON for
// compatibility with the client.
type PasswordGroup struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Category  *string   `json:"type" gorm:"column:category;size:255"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Items []PasswordItem `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}
