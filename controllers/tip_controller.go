package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/services"
)

type TipController struct {
	tipService *services.TipService
}

func NewTipController(db *gorm.DB) *TipController {
	return &TipController{
		tipService: services.NewTipService(db),
	}
}

type TipInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ImageUrl string `json:"imageUrl"`
}

type CommentInput struct {
	Name    string `json:"name" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type ReplyInput struct {
	ReplyText string `json:"replyText"`
}

func (ctrl *TipController) ListTips(c *gin.Context) {
	tips, err := ctrl.tipService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching tips"})
		return
	}
	c.JSON(http.StatusOK, tips)
}

func (ctrl *TipController) LikeTip(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}
	tip, err := ctrl.tipService.Like(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error liking tip"})
		return
	}
	c.JSON(http.StatusOK, tip)
}

func (ctrl *TipController) AddComment(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and comment are required"})
		return
	}
	tip, err := ctrl.tipService.AddComment(id, input.Name, input.Comment)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding comment"})
		return
	}
	c.JSON(http.StatusCreated, tip)
}

func (ctrl *TipController) CreateTip(c *gin.Context) {
	var input TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}
	tip, err := ctrl.tipService.Create(input.Title, input.Content, input.ImageUrl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating tip"})
		return
	}
	c.JSON(http.StatusCreated, tip)
}

func (ctrl *TipController) UpdateTip(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}
	var input TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}
	tip, err := ctrl.tipService.Update(id, input.Title, input.Content, input.ImageUrl)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating tip"})
		return
	}
	c.JSON(http.StatusOK, tip)
}

func (ctrl *TipController) DeleteTip(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}
	if err := ctrl.tipService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting tip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip deleted successfully"})
}

func (ctrl *TipController) ReplyToComment(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}
	var input ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	tip, err := ctrl.tipService.ReplyToComment(id, c.Param("commentId"), input.ReplyText)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Tip not found"})
		case errors.Is(err, services.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		default:
			log.Println("Error replying to comment:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error replying to comment"})
		}
		return
	}
	c.JSON(http.StatusOK, tip)
}

// tipID parses the :id path param; an unparseable id can never resolve to a
// tip, so it reports not found and aborts the handler.
func tipID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tip not found"})
		return 0, false
	}
	return uint(id), true
}
