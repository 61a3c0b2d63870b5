package models

// Tag is the global tag registry. Rows are created lazily on first use and
// never deleted when an article is removed.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
}

// ArticleTag associates an article with a tag from the registry.
type ArticleTag struct {
	ArticleID uint `json:"articleId" db:"article_id" gorm:"not null;uniqueIndex:idx_article_tag_unique;index"`
	TagID     uint `json:"tagId" db:"tag_id" gorm:"not null;uniqueIndex:idx_article_tag_unique"`
}
