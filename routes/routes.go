package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/config"
	"github.com/ritamsamanta1/fish/controllers"
	"github.com/ritamsamanta1/fish/middleware"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authController := controllers.NewAuthController(cfg)
	farmerController := controllers.NewFarmerController(db)
	productController := controllers.NewProductController(db)
	tipController := controllers.NewTipController(db)

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/submit-form", farmerController.SubmitForm)
		api.GET("/products", productController.ListProducts)
		api.POST("/admin/login", authController.Login)
		api.GET("/tips", tipController.ListTips)
		api.PUT("/tips/like/:id", tipController.LikeTip)
		api.POST("/tips/comment/:id", tipController.AddComment)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.GET("/farmers", farmerController.ListFarmers)
			admin.POST("/add-product", productController.AddProduct)
			admin.PUT("/products/:id", productController.UpdateProduct)
			admin.DELETE("/products/:id", productController.DeleteProduct)
			admin.POST("/tips", tipController.CreateTip)
			admin.PUT("/tips/:id", tipController.UpdateTip)
			admin.DELETE("/tips/:id", tipController.DeleteTip)
			admin.PUT("/tips/:id/comment/:commentId", tipController.ReplyToComment)
		}
	}
}
