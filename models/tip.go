package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Comment lives inside its parent tip's row rather than in a table of its
// own; it is identified by a uuid so admin replies can target it later.
type Comment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
	AdminReply string    `json:"adminReply"`
}

// Tip is a published advice article. Comments are stored as a JSON column so
// the whole tip is read and written as one document; their order is insertion
// order and the public surface only ever appends.
type Tip struct {
	ID        uint                         `gorm:"primarykey" json:"id"`
	Title     string                       `gorm:"not null" json:"title"`
	Content   string                       `gorm:"not null" json:"content"`
	ImageUrl  string                       `json:"imageUrl"`
	Likes     int                          `gorm:"default:0" json:"likes"`
	Comments  datatypes.JSONSlice[Comment] `json:"comments"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}

var ErrTipFields = errors.New("title and content are required")

func (t *Tip) Validate() error {
	if t.Title == "" || t.Content == "" {
		return ErrTipFields
	}
	return nil
}
