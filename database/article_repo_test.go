package database

import (
	"testing"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustArticle(t *testing.T, d Database, authorID uint, title string, tags []string) *models.Article {
	t.Helper()

	article, err := models.NewArticle(title, "desc", "body", authorID, tags, models.DefaultTokenSource)
	require.NoError(t, err)
	require.NoError(t, d.ArticleRepo().Save(article))
	return article
}

func TestArticleSaveAndFindBySlug(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")

	created := mustArticle(t, d, author.ID, "How to train your dragon", []string{"dragons", "training"})
	require.NotZero(t, created.ID)

	found, err := d.ArticleRepo().FindBySlug(created.Slug)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "How to train your dragon", found.Title)
	assert.Equal(t, author.ID, found.AuthorID)
	// Tags come back sorted by name
	assert.Equal(t, []string{"dragons", "training"}, found.Tags)
}

func TestArticleFindBySlugAbsentReturnsNil(t *testing.T) {
	d := testDB(t)

	found, err := d.ArticleRepo().FindBySlug("no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestArticleSaveReplacesTagSet(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")

	article := mustArticle(t, d, author.ID, "tagged", []string{"old", "shared"})
	article.Tags = []string{"shared", "new"}
	require.NoError(t, d.ArticleRepo().Save(article))

	found, err := d.ArticleRepo().FindByID(article.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"new", "shared"}, found.Tags)

	// The registry keeps the orphaned name
	tags, err := d.ArticleRepo().AllTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old", "shared"}, tags)
}

func TestArticleTagsSharedAcrossArticles(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")

	mustArticle(t, d, author.ID, "first", []string{"go"})
	mustArticle(t, d, author.ID, "second", []string{"go", "web"})

	tags, err := d.ArticleRepo().AllTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, tags)
}

func TestArticleDeleteRemovesAssociations(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")
	reader := mustUser(t, d, "anne@jake.jake", "anne")

	article := mustArticle(t, d, author.ID, "doomed", []string{"gone"})
	require.NoError(t, d.ArticleRepo().Favorite(article.ID, reader.ID))

	require.NoError(t, d.ArticleRepo().DeleteByID(article.ID))

	found, err := d.ArticleRepo().FindByID(article.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	count, err := d.ArticleRepo().CountFavorites(article.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFavoriteIsIdempotent(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")
	reader := mustUser(t, d, "anne@jake.jake", "anne")

	article := mustArticle(t, d, author.ID, "popular", nil)

	require.NoError(t, d.ArticleRepo().Favorite(article.ID, reader.ID))
	require.NoError(t, d.ArticleRepo().Favorite(article.ID, reader.ID))

	count, err := d.ArticleRepo().CountFavorites(article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	favorited, err := d.ArticleRepo().IsFavorited(article.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestUnfavoriteWithoutFavoriteIsNoOp(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")
	reader := mustUser(t, d, "anne@jake.jake", "anne")

	article := mustArticle(t, d, author.ID, "unloved", nil)

	require.NoError(t, d.ArticleRepo().Unfavorite(article.ID, reader.ID))

	count, err := d.ArticleRepo().CountFavorites(article.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDuplicateSlugIsRejected(t *testing.T) {
	d := testDB(t)
	author := mustUser(t, d, "jake@jake.jake", "jake")

	first, err := models.NewArticle("same", "d", "b", author.ID, nil, fixedToken)
	require.NoError(t, err)
	require.NoError(t, d.ArticleRepo().Save(first))

	second, err := models.NewArticle("same", "d", "b", author.ID, nil, fixedToken)
	require.NoError(t, err)

	err = d.ArticleRepo().Save(second)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
	assert.True(t, errs.IsUniqueConstraintViolationError(err))
}
