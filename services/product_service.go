package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/models"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Create(product *models.Product) error {
	if err := product.Validate(); err != nil {
		return &ValidationError{Err: err}
	}
	return s.db.Create(product).Error
}

// ProductUpdate carries a partial payload; nil fields are left untouched.
type ProductUpdate struct {
	Name            *string
	ImageUrl        *string
	Details         *string
	OriginalPrice   *float64
	DiscountPercent *float64
	Category        *string
}

// Update merges the payload into the stored record and re-validates the
// whole schema before saving.
func (s *ProductService) Update(id uint, upd ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.ImageUrl != nil {
		product.ImageUrl = *upd.ImageUrl
	}
	if upd.Details != nil {
		product.Details = *upd.Details
	}
	if upd.OriginalPrice != nil {
		product.OriginalPrice = *upd.OriginalPrice
	}
	if upd.DiscountPercent != nil {
		product.DiscountPercent = *upd.DiscountPercent
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if err := product.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
