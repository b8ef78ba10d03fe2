package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/models"
)

// TipService owns the tips collection. Like, AddComment and ReplyToComment
// are deliberately find-mutate-save over the whole tip row with no
// concurrency guard: concurrent writers last-write-win, matching the
// single-document semantics the site was built on.
type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

func (s *TipService) List() ([]models.Tip, error) {
	tips := make([]models.Tip, 0)
	if err := s.db.Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (s *TipService) Create(title, content, imageUrl string) (*models.Tip, error) {
	tip := models.Tip{
		Title:    title,
		Content:  content,
		ImageUrl: imageUrl,
		Comments: datatypes.JSONSlice[models.Comment]{},
	}
	if err := tip.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}
	if err := s.db.Create(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

// Update overwrites title, content and imageUrl only; likes and comments are
// never touched by it.
func (s *TipService) Update(id uint, title, content, imageUrl string) (*models.Tip, error) {
	tip, err := s.get(id)
	if err != nil {
		return nil, err
	}
	tip.Title = title
	tip.Content = content
	tip.ImageUrl = imageUrl
	if err := tip.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}
	if err := s.db.Save(tip).Error; err != nil {
		return nil, err
	}
	return tip, nil
}

// Delete removes the tip and, with it, every embedded comment.
func (s *TipService) Delete(id uint) error {
	result := s.db.Delete(&models.Tip{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TipService) Like(id uint) (*models.Tip, error) {
	tip, err := s.get(id)
	if err != nil {
		return nil, err
	}
	tip.Likes++
	if err := s.db.Save(tip).Error; err != nil {
		return nil, err
	}
	return tip, nil
}

// AddComment appends to the tip's comment sequence; comments are never
// removed or reordered from the public surface.
func (s *TipService) AddComment(id uint, name, text string) (*models.Tip, error) {
	tip, err := s.get(id)
	if err != nil {
		return nil, err
	}
	tip.Comments = append(tip.Comments, models.Comment{
		ID:         uuid.NewString(),
		Name:       name,
		Comment:    text,
		Date:       time.Now(),
		AdminReply: "",
	})
	if err := s.db.Save(tip).Error; err != nil {
		return nil, err
	}
	return tip, nil
}

// ReplyToComment sets the admin reply on one embedded comment. An empty
// replyText is allowed and clears the reply.
func (s *TipService) ReplyToComment(tipID uint, commentID, replyText string) (*models.Tip, error) {
	tip, err := s.get(tipID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range tip.Comments {
		if tip.Comments[i].ID == commentID {
			tip.Comments[i].AdminReply = replyText
			found = true
			break
		}
	}
	if !found {
		return nil, ErrCommentNotFound
	}
	if err := s.db.Save(tip).Error; err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *TipService) get(id uint) (*models.Tip, error) {
	var tip models.Tip
	if err := s.db.First(&tip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tip, nil
}
