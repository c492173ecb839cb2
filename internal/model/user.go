package model

import "time"

// User represents a vault owner. Groups hang off the user with a DB
// level cascade so deleting the account wipes the whole vault.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string     `json:"first_name" gorm:"size:255"`
	LastName     string     `json:"last_name" gorm:"size:255"`
	Avatar       string     `json:"avatar,omitempty" gorm:"type:text"`
	Gender       string     `json:"gender,omitempty" gorm:"size:50"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	PostalCode   string     `json:"postal_code,omitempty" gorm:"size:20"`
	Address      string     `json:"address,omitempty" gorm:"size:255"`
	Country      string     `json:"country,omitempty" gorm:"size:100"`
	State        string     `json:"state,omitempty" gorm:"size:100"`
	City         string     `json:"city,omitempty" gorm:"size:100"`
	Complement   string     `json:"complement,omitempty" gorm:"size:255"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Groups []PasswordGroup `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
