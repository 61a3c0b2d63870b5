package services

import (
	"errors"
	"time"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
	"gorm.io/gorm"
)

// CommentQueryService projects an article's comments with author profiles.
type CommentQueryService struct {
	db *gorm.DB
}

func NewCommentQueryService(db *gorm.DB) *CommentQueryService {
	return &CommentQueryService{db: db}
}

type commentRow struct {
	ID        uint
	Body      string
	AuthorID  uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Bio       *string
	Image     *string
}

// GetComments returns the article's comments (oldest first) with each
// author's profile and the viewer's following flag.
func (s *CommentQueryService) GetComments(articleSlug string, viewerID *uint) ([]*CommentView, error) {
	var article models.Article
	err := s.db.Where("slug = ?", articleSlug).Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("article")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}

	var rows []commentRow
	err = s.db.Table("comments").
		Select("comments.id, comments.body, comments.author_id, comments.created_at, comments.updated_at, users.username, users.bio, users.image").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.article_id = ?", article.ID).
		Order("comments.created_at").
		Find(&rows).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "comments", err)
	}

	views := make([]*CommentView, 0, len(rows))
	for _, row := range rows {
		following := false
		if viewerID != nil {
			var count int64
			if err := s.db.Model(&models.Follow{}).
				Where("follower_id = ? AND followee_id = ?", *viewerID, row.AuthorID).
				Count(&count).Error; err != nil {
				return nil, errs.NewDatabaseError("check", "follow", err)
			}
			following = count > 0
		}

		views = append(views, &CommentView{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			Body:      row.Body,
			Author: Profile{
				Username:  row.Username,
				Bio:       row.Bio,
				Image:     row.Image,
				Following: following,
			},
		})
	}
	return views, nil
}
