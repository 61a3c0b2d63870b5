package models

// Favorite records that a user bookmarked an article. Unique per
// (article, user) pair; the pair's cardinality for an article is its
// favorites count.
type Favorite struct {
	ArticleID uint `json:"articleId" db:"article_id" gorm:"not null;uniqueIndex:idx_favorite_unique;index"`
	UserID    uint `json:"userId" db:"user_id" gorm:"not null;uniqueIndex:idx_favorite_unique"`
}
