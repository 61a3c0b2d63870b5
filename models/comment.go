package models

import (
	"strings"
	"time"

	"github.com/borovikovd/realworld-backend-go/errs"
)

// Comment belongs exclusively to its article and is removed with it.
type Comment struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID uint      `json:"articleId" db:"article_id" gorm:"not null;index"`
	AuthorID  uint      `json:"authorId" db:"author_id" gorm:"not null;index"`
	Body      string    `json:"body" db:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// NewComment validates the body and builds a fresh comment.
func NewComment(articleID, authorID uint, body string) (*Comment, error) {
	fieldErrs := errs.FieldErrors{}
	if strings.TrimSpace(body) == "" {
		fieldErrs.Add("body", "must not be blank")
	}
	if !fieldErrs.Empty() {
		return nil, errs.NewValidationError(fieldErrs)
	}

	now := time.Now().UTC()
	return &Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (c *Comment) CanBeDeletedBy(userID uint) bool {
	return userID == c.AuthorID
}
