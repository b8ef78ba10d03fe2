package models

import (
	"errors"
	"fmt"
)

// ProductCategories is the closed set of catalog categories.
var ProductCategories = []string{"Fish Seed", "Fish Medicine"}

var (
	ErrProductFields   = errors.New("name, imageUrl, details, originalPrice and category are required")
	ErrInvalidCategory = fmt.Errorf("category must be one of: %s, %s", ProductCategories[0], ProductCategories[1])
)

type Product struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	Name            string  `gorm:"not null" json:"name"`
	ImageUrl        string  `gorm:"not null" json:"imageUrl"`
	Details         string  `gorm:"not null" json:"details"`
	OriginalPrice   float64 `gorm:"not null" json:"originalPrice"`
	DiscountPercent float64 `gorm:"not null" json:"discountPercent"`
	Category        string  `gorm:"not null" json:"category"`
}

// Validate enforces the full product schema; it runs on every write so a
// record can never be persisted with a category outside the enumerated set.
func (p *Product) Validate() error {
	if p.Name == "" || p.ImageUrl == "" || p.Details == "" || p.Category == "" {
		return ErrProductFields
	}
	for _, category := range ProductCategories {
		if p.Category == category {
			return nil
		}
	}
	return ErrInvalidCategory
}
