package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/models"
	"github.com/ritamsamanta1/fish/services"
)

type FarmerController struct {
	farmerService *services.FarmerService
}

func NewFarmerController(db *gorm.DB) *FarmerController {
	return &FarmerController{
		farmerService: services.NewFarmerService(db),
	}
}

type SubmitFarmerInput struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address"`
	FarmingType  string `json:"farmingType"`
	Area         string `json:"area"`
	Experience   string `json:"experience"`
	CurrentFish  string `json:"currentFish"`
	UsedFeed     string `json:"usedFeed"`
	UsedMedicine string `json:"usedMedicine"`
	Remarks      string `json:"remarks"`
}

func (ctrl *FarmerController) SubmitForm(c *gin.Context) {
	var input SubmitFarmerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and phone are required"})
		return
	}
	farmer := models.Farmer{
		Name:         input.Name,
		Phone:        input.Phone,
		Address:      input.Address,
		FarmingType:  input.FarmingType,
		Area:         input.Area,
		Experience:   input.Experience,
		CurrentFish:  input.CurrentFish,
		UsedFeed:     input.UsedFeed,
		UsedMedicine: input.UsedMedicine,
		Remarks:      input.Remarks,
	}
	if err := ctrl.farmerService.Submit(&farmer); err != nil {
		log.Println("Error saving farmer:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error submitting form"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Form submitted successfully!",
		"phone":   farmer.Phone,
	})
}

func (ctrl *FarmerController) ListFarmers(c *gin.Context) {
	farmers, err := ctrl.farmerService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching farmers"})
		return
	}
	c.JSON(http.StatusOK, farmers)
}
