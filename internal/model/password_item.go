package model

import "time"

// PasswordItem is a single stored credential. Ownership is transitive
// through the parent group; the item never carries an owner id of its
// own.
type PasswordItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GroupID   uint      `json:"group_id" gorm:"index;not null"`
	Username  *string   `json:"username"`
	Email     *string   `json:"email"`
	Password  string    `json:"password" gorm:"not null"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
