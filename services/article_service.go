package services

import (
	"github.com/borovikovd/realworld-backend-go/database"
	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
)

// ArticleService handles the article write path. Every operation runs inside
// a single transaction; the aggregate loaded within it is never shared.
type ArticleService struct {
	db    database.Database
	token models.TokenSource
}

func NewArticleService(db database.Database, token models.TokenSource) *ArticleService {
	if token == nil {
		token = models.DefaultTokenSource
	}
	return &ArticleService{db: db, token: token}
}

func (s *ArticleService) CreateArticle(userID uint, title, description, body string, tags []string) (*models.Article, error) {
	article, err := models.NewArticle(title, description, body, userID, tags, s.token)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx database.Database) error {
		if err := tx.ArticleRepo().Save(article); err != nil {
			return errs.NewDatabaseError("create", "article", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) UpdateArticle(userID uint, slug string, title, description, body *string) (*models.Article, error) {
	var updated *models.Article
	err := s.db.Transaction(func(tx database.Database) error {
		article, err := tx.ArticleRepo().FindBySlug(slug)
		if err != nil {
			return errs.NewDatabaseError("find", "article", err)
		}
		if article == nil {
			return errs.NewNotFound("article")
		}

		if err := article.Update(userID, title, description, body); err != nil {
			return err
		}

		if err := tx.ArticleRepo().Save(article); err != nil {
			return errs.NewDatabaseError("update", "article", err)
		}
		updated = article
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ArticleService) DeleteArticle(userID uint, slug string) error {
	return s.db.Transaction(func(tx database.Database) error {
		article, err := tx.ArticleRepo().FindBySlug(slug)
		if err != nil {
			return errs.NewDatabaseError("find", "article", err)
		}
		if article == nil {
			return errs.NewNotFound("article")
		}
		if !article.CanBeDeletedBy(userID) {
			return errs.NewForbiddenError("you can only delete your own articles")
		}

		// Comments are owned by their article and removed with it.
		if err := tx.CommentRepo().DeleteByArticleID(article.ID); err != nil {
			return errs.NewDatabaseError("delete", "comments", err)
		}
		if err := tx.ArticleRepo().DeleteByID(article.ID); err != nil {
			return errs.NewDatabaseError("delete", "article", err)
		}
		return nil
	})
}

// FavoriteArticle records the viewer's favorite. Any authenticated user may
// favorite any article, including their own; repeating is a no-op.
func (s *ArticleService) FavoriteArticle(userID uint, slug string) error {
	return s.db.Transaction(func(tx database.Database) error {
		article, err := tx.ArticleRepo().FindBySlug(slug)
		if err != nil {
			return errs.NewDatabaseError("find", "article", err)
		}
		if article == nil {
			return errs.NewNotFound("article")
		}
		if err := tx.ArticleRepo().Favorite(article.ID, userID); err != nil {
			return errs.NewDatabaseError("favorite", "article", err)
		}
		return nil
	})
}

func (s *ArticleService) UnfavoriteArticle(userID uint, slug string) error {
	return s.db.Transaction(func(tx database.Database) error {
		article, err := tx.ArticleRepo().FindBySlug(slug)
		if err != nil {
			return errs.NewDatabaseError("find", "article", err)
		}
		if article == nil {
			return errs.NewNotFound("article")
		}
		if err := tx.ArticleRepo().Unfavorite(article.ID, userID); err != nil {
			return errs.NewDatabaseError("unfavorite", "article", err)
		}
		return nil
	})
}

// AllTags returns the global tag registry, lexicographically ordered.
func (s *ArticleService) AllTags() ([]string, error) {
	tags, err := s.db.ArticleRepo().AllTags()
	if err != nil {
		return nil, errs.NewDatabaseError("list", "tags", err)
	}
	return tags, nil
}
