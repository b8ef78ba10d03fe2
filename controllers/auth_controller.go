package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ritamsamanta1/fish/config"
	"github.com/ritamsamanta1/fish/utils"
)

type AuthController struct {
	cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

type AdminLoginInput struct {
	Password string `json:"password"`
}

// Login validates the admin password and returns success or failure. No
// token is issued; privileged requests re-present the secret in the
// Authorization header.
func (ctrl *AuthController) Login(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil || !utils.CheckAdminPassword(ctrl.cfg, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}
