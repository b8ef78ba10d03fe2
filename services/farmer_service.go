package services

import (
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/models"
)

type FarmerService struct {
	db *gorm.DB
}

func NewFarmerService(db *gorm.DB) *FarmerService {
	return &FarmerService{db: db}
}

func (s *FarmerService) Submit(farmer *models.Farmer) error {
	return s.db.Create(farmer).Error
}

// List returns every submission, newest first.
func (s *FarmerService) List() ([]models.Farmer, error) {
	farmers := make([]models.Farmer, 0)
	if err := s.db.Order("created_at DESC").Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}
