package services

import (
	"github.com/borovikovd/realworld-backend-go/database"
	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
)

// CommentService handles the comment write path.
type CommentService struct {
	db database.Database
}

func NewCommentService(db database.Database) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) AddComment(userID uint, articleSlug, body string) (*models.Comment, error) {
	var created *models.Comment
	err := s.db.Transaction(func(tx database.Database) error {
		article, err := tx.ArticleRepo().FindBySlug(articleSlug)
		if err != nil {
			return errs.NewDatabaseError("find", "article", err)
		}
		if article == nil {
			return errs.NewNotFound("article")
		}

		comment, err := models.NewComment(article.ID, userID, body)
		if err != nil {
			return err
		}
		if err := tx.CommentRepo().Create(comment); err != nil {
			return errs.NewDatabaseError("create", "comment", err)
		}
		created = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteComment removes an author-owned comment. The comment must belong to
// the addressed article; otherwise it is reported as absent, not forbidden.
func (s *CommentService) DeleteComment(userID uint, articleSlug string, commentID uint) error {
	return s.db.Transaction(func(tx database.Database) error {
		article, err := tx.ArticleRepo().FindBySlug(articleSlug)
		if err != nil {
			return errs.NewDatabaseError("find", "article", err)
		}
		if article == nil {
			return errs.NewNotFound("article")
		}

		comment, err := tx.CommentRepo().FindByID(commentID)
		if err != nil {
			return errs.NewDatabaseError("find", "comment", err)
		}
		if comment == nil || comment.ArticleID != article.ID {
			return errs.NewNotFound("comment")
		}
		if !comment.CanBeDeletedBy(userID) {
			return errs.NewForbiddenError("you can only delete your own comments")
		}

		if err := tx.CommentRepo().DeleteByID(commentID); err != nil {
			return errs.NewDatabaseError("delete", "comment", err)
		}
		return nil
	})
}
