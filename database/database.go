package database

import (
	"gorm.io/gorm"
)

type Database struct {
	db          *gorm.DB
	articleRepo *ArticleRepo
	commentRepo *CommentRepo
	userRepo    *UserRepo
	followRepo  *FollowRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		articleRepo: NewArticleRepo(db),
		commentRepo: NewCommentRepo(db),
		userRepo:    NewUserRepo(db),
		followRepo:  NewFollowRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) FollowRepo() *FollowRepo {
	return d.followRepo
}

// DB returns the underlying GORM handle for read-only query services.
func (d Database) DB() *gorm.DB {
	return d.db
}

// Transaction runs fn against a Database whose repositories are all bound to
// one transaction; either every effect commits or none do.
func (d Database) Transaction(fn func(Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
