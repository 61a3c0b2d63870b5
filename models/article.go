package models

import (
	"strings"
	"time"

	"github.com/borovikovd/realworld-backend-go/errs"
)

// Article is the aggregate root for a published post. Tag associations are
// managed by the repository through the Tag/ArticleTag tables; the Tags slice
// carries the de-duplicated tag names in memory.
type Article struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Body        string    `json:"body" db:"body" gorm:"type:text;not null"`
	AuthorID    uint      `json:"authorId" db:"author_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Tags []string `json:"tags,omitempty" gorm:"-"`
}

// NewArticle validates the creation inputs and builds a fresh aggregate with
// a derived slug. The slug is fixed for the article's lifetime; title changes
// never regenerate it.
func NewArticle(title, description, body string, authorID uint, tags []string, token TokenSource) (*Article, error) {
	fieldErrs := errs.FieldErrors{}
	if strings.TrimSpace(title) == "" {
		fieldErrs.Add("title", "must not be blank")
	}
	if strings.TrimSpace(description) == "" {
		fieldErrs.Add("description", "must not be blank")
	}
	if strings.TrimSpace(body) == "" {
		fieldErrs.Add("body", "must not be blank")
	}
	if !fieldErrs.Empty() {
		return nil, errs.NewValidationError(fieldErrs)
	}

	now := time.Now().UTC()
	return &Article{
		Slug:        NewSlug(title, token),
		Title:       title,
		Description: description,
		Body:        body,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        dedupeTags(tags),
	}, nil
}

// ReconstituteArticle rebuilds an aggregate from persisted state without
// business validation; only the repository should call it.
func ReconstituteArticle(id uint, slug, title, description, body string, authorID uint, tags []string, createdAt, updatedAt time.Time) *Article {
	return &Article{
		ID:          id,
		Slug:        slug,
		Title:       title,
		Description: description,
		Body:        body,
		AuthorID:    authorID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Tags:        tags,
	}
}

// Update applies an owner-authorized partial edit. Nil or blank fields leave
// the current value untouched; UpdatedAt is refreshed on every successful
// call even when nothing changed.
func (a *Article) Update(userID uint, title, description, body *string) error {
	if userID != a.AuthorID {
		return errs.NewForbiddenError("you can only update your own articles")
	}

	if title != nil && strings.TrimSpace(*title) != "" {
		a.Title = *title
	}
	if description != nil && strings.TrimSpace(*description) != "" {
		a.Description = *description
	}
	if body != nil && strings.TrimSpace(*body) != "" {
		a.Body = *body
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (a *Article) CanBeDeletedBy(userID uint) bool {
	return userID == a.AuthorID
}

// dedupeTags collapses duplicate tag names (case-sensitive exact match),
// keeping first-seen order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
