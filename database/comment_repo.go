package database

import (
	"errors"

	"github.com/borovikovd/realworld-backend-go/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Create inserts a new comment, filling in its identity.
func (r *CommentRepo) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID returns the comment, or nil when absent.
func (r *CommentRepo) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) DeleteByID(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// DeleteByArticleID removes every comment of an article; used when the
// article itself is deleted.
func (r *CommentRepo) DeleteByArticleID(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error
}
