package database

import (
	"errors"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ArticleRepo) GetDB() *gorm.DB {
	return r.db
}

// Save inserts the article when it has no identity, otherwise updates the row
// and replaces its full tag-association set (delete and re-insert, no diffing).
func (r *ArticleRepo) Save(article *models.Article) error {
	if article.ID == 0 {
		if err := r.db.Create(article).Error; err != nil {
			// slug carries the only unique index on articles
			if errs.IsDuplicateKey(err) {
				return errs.NewUniqueConstraintViolationError("articles", "slug", err)
			}
			return err
		}
		return r.saveTags(article.ID, article.Tags)
	}

	updates := map[string]any{
		"title":       article.Title,
		"description": article.Description,
		"body":        article.Body,
		"updated_at":  article.UpdatedAt,
	}
	if err := r.db.Model(&models.Article{}).Where("id = ?", article.ID).Updates(updates).Error; err != nil {
		return err
	}
	if err := r.db.Where("article_id = ?", article.ID).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}
	return r.saveTags(article.ID, article.Tags)
}

// saveTags upserts each tag name into the global registry (first-writer-wins
// on the name) and associates it; duplicate associations are ignored.
func (r *ArticleRepo) saveTags(articleID uint, tags []string) error {
	for _, name := range tags {
		tag := models.Tag{Name: name}
		if err := r.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}

		assoc := models.ArticleTag{ArticleID: articleID, TagID: tag.ID}
		if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&assoc).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindByID returns the article with its tag names, or nil when absent.
func (r *ArticleRepo) FindByID(id uint) (*models.Article, error) {
	var row models.Article
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.withTags(&row)
}

// FindBySlug returns the article with its tag names, or nil when absent.
func (r *ArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	var row models.Article
	if err := r.db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.withTags(&row)
}

func (r *ArticleRepo) withTags(row *models.Article) (*models.Article, error) {
	tags, err := r.loadTags(row.ID)
	if err != nil {
		return nil, err
	}
	return models.ReconstituteArticle(
		row.ID, row.Slug, row.Title, row.Description, row.Body,
		row.AuthorID, tags, row.CreatedAt, row.UpdatedAt,
	), nil
}

func (r *ArticleRepo) loadTags(articleID uint) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Tag{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Order("tags.name").
		Pluck("tags.name", &names).Error
	return names, err
}

// DeleteByID removes the article together with its tag associations and
// favorites. The tag registry itself is never pruned. Comments are owned by
// the comment repository and removed by the caller.
func (r *ArticleRepo) DeleteByID(id uint) error {
	if err := r.db.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("article_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Article{}, id).Error
}

// Favorite records the (article, user) pair; favoriting twice is a no-op.
func (r *ArticleRepo) Favorite(articleID, userID uint) error {
	fav := models.Favorite{ArticleID: articleID, UserID: userID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

// Unfavorite removes the pair; removing a non-favorite is a no-op.
func (r *ArticleRepo) Unfavorite(articleID, userID uint) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.Favorite{}).Error
}

func (r *ArticleRepo) IsFavorited(articleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ArticleRepo) CountFavorites(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

// AllTags returns every registered tag name in lexicographic order.
func (r *ArticleRepo) AllTags() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Tag{}).Order("name").Pluck("name", &names).Error
	return names, err
}
