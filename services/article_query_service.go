package services

import (
	"errors"
	"time"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
	"gorm.io/gorm"
)

const defaultPageSize = 20

// ArticleQueryService is the read-only projection side: it joins article,
// author, tag, favorite and follow data into view models and never mutates
// state.
type ArticleQueryService struct {
	db *gorm.DB
}

func NewArticleQueryService(db *gorm.DB) *ArticleQueryService {
	return &ArticleQueryService{db: db}
}

// ListArticlesParams filters the global article list. Every filter narrows
// the candidate set independently; zero values mean "no filter".
type ListArticlesParams struct {
	Tag         string
	Author      string
	FavoritedBy string
	Limit       int
	Offset      int
	ViewerID    *uint
}

type articleRow struct {
	ID          uint
	Slug        string
	Title       string
	Description string
	Body        string
	AuthorID    uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Username    string
	Bio         *string
	Image       *string
}

const articleColumns = "articles.id, articles.slug, articles.title, articles.description, " +
	"articles.body, articles.author_id, articles.created_at, articles.updated_at, " +
	"users.username, users.bio, users.image"

// GetArticleBySlug assembles the view for one article. An absent viewer
// yields favorited=false and following=false, never an error.
func (s *ArticleQueryService) GetArticleBySlug(slug string, viewerID *uint) (*ArticleView, error) {
	var row articleRow
	err := s.db.Table("articles").
		Select(articleColumns).
		Joins("JOIN users ON users.id = articles.author_id").
		Where("articles.slug = ?", slug).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("article")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "article", err)
	}

	return s.assemble(row, viewerID)
}

// GetArticles returns the filtered, paginated article list, newest first.
func (s *ArticleQueryService) GetArticles(p ListArticlesParams) ([]*ArticleView, error) {
	q := s.db.Table("articles").
		Select(articleColumns).
		Joins("JOIN users ON users.id = articles.author_id")

	if p.Tag != "" {
		q = q.Where("articles.id IN (?)", s.db.Table("article_tags").
			Select("article_tags.article_id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name = ?", p.Tag))
	}
	if p.Author != "" {
		q = q.Where("articles.author_id IN (?)", s.db.Table("users").
			Select("users.id").
			Where("users.username = ?", p.Author))
	}
	if p.FavoritedBy != "" {
		q = q.Where("articles.id IN (?)", s.db.Table("favorites").
			Select("favorites.article_id").
			Joins("JOIN users ON users.id = favorites.user_id").
			Where("users.username = ?", p.FavoritedBy))
	}

	return s.fetchPage(q, p.Limit, p.Offset, p.ViewerID)
}

// GetFeed returns articles authored by users the viewer follows.
func (s *ArticleQueryService) GetFeed(viewerID uint, limit, offset int) ([]*ArticleView, error) {
	q := s.db.Table("articles").
		Select(articleColumns).
		Joins("JOIN users ON users.id = articles.author_id").
		Where("articles.author_id IN (?)", s.db.Table("follows").
			Select("follows.followee_id").
			Where("follows.follower_id = ?", viewerID))

	return s.fetchPage(q, limit, offset, &viewerID)
}

func (s *ArticleQueryService) fetchPage(q *gorm.DB, limit, offset int, viewerID *uint) ([]*ArticleView, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var rows []articleRow
	err := q.Order("articles.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "articles", err)
	}

	// TODO: batch the tag/favorite/follow lookups by the page's article-ID
	// set instead of querying per row.
	views := make([]*ArticleView, 0, len(rows))
	for _, row := range rows {
		view, err := s.assemble(row, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ArticleQueryService) assemble(row articleRow, viewerID *uint) (*ArticleView, error) {
	tags, err := s.loadTags(row.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("load", "article tags", err)
	}

	var favoritesCount int64
	if err := s.db.Model(&models.Favorite{}).
		Where("article_id = ?", row.ID).
		Count(&favoritesCount).Error; err != nil {
		return nil, errs.NewDatabaseError("count", "favorites", err)
	}

	favorited := false
	following := false
	if viewerID != nil {
		var count int64
		if err := s.db.Model(&models.Favorite{}).
			Where("article_id = ? AND user_id = ?", row.ID, *viewerID).
			Count(&count).Error; err != nil {
			return nil, errs.NewDatabaseError("check", "favorite", err)
		}
		favorited = count > 0

		if err := s.db.Model(&models.Follow{}).
			Where("follower_id = ? AND followee_id = ?", *viewerID, row.AuthorID).
			Count(&count).Error; err != nil {
			return nil, errs.NewDatabaseError("check", "follow", err)
		}
		following = count > 0
	}

	return &ArticleView{
		Slug:           row.Slug,
		Title:          row.Title,
		Description:    row.Description,
		Body:           row.Body,
		TagList:        tags,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		Favorited:      favorited,
		FavoritesCount: favoritesCount,
		Author: Profile{
			Username:  row.Username,
			Bio:       row.Bio,
			Image:     row.Image,
			Following: following,
		},
	}, nil
}

func (s *ArticleQueryService) loadTags(articleID uint) ([]string, error) {
	names := []string{}
	err := s.db.Model(&models.Tag{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Order("tags.name").
		Pluck("tags.name", &names).Error
	return names, err
}
