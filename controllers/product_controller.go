package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/models"
	"github.com/ritamsamanta1/fish/services"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		productService: services.NewProductService(db),
	}
}

type AddProductInput struct {
	Name            string  `json:"name"`
	ImageUrl        string  `json:"imageUrl"`
	Details         string  `json:"details"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	Category        string  `json:"category"`
}

type UpdateProductInput struct {
	Name            *string  `json:"name"`
	ImageUrl        *string  `json:"imageUrl"`
	Details         *string  `json:"details"`
	OriginalPrice   *float64 `json:"originalPrice"`
	DiscountPercent *float64 `json:"discountPercent"`
	Category        *string  `json:"category"`
}

func (ctrl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctrl.productService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductController) AddProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if input.Name == "" || input.ImageUrl == "" || input.OriginalPrice == 0 || input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	product := models.Product{
		Name:            input.Name,
		ImageUrl:        input.ImageUrl,
		Details:         input.Details,
		OriginalPrice:   input.OriginalPrice,
		DiscountPercent: input.DiscountPercent,
		Category:        input.Category,
	}
	if err := ctrl.productService.Create(&product); err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		log.Println("Error adding product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully!",
		"product": product,
	})
}

func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	product, err := ctrl.productService.Update(uint(id), services.ProductUpdate{
		Name:            input.Name,
		ImageUrl:        input.ImageUrl,
		Details:         input.Details,
		OriginalPrice:   input.OriginalPrice,
		DiscountPercent: input.DiscountPercent,
		Category:        input.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case services.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			log.Println("Error updating product:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully!",
		"product": product,
	})
}

func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err := ctrl.productService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		log.Println("Error deleting product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Product deleted successfully!",
		"productId": c.Param("id"),
	})
}
