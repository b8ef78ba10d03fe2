package models

import "time"

// Farmer is one intake-form submission. Records are write-once: there is no
// update or delete surface for them.
type Farmer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Phone        string    `gorm:"not null" json:"phone"`
	Address      string    `json:"address"`
	FarmingType  string    `json:"farmingType"`
	Area         string    `json:"area"`
	Experience   string    `json:"experience"`
	CurrentFish  string    `json:"currentFish"`
	UsedFeed     string    `json:"usedFeed"`
	UsedMedicine string    `json:"usedMedicine"`
	Remarks      string    `json:"remarks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
