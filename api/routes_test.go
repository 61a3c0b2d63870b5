package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/borovikovd/realworld-backend-go/database"
	"github.com/borovikovd/realworld-backend-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testRouter builds the full API against an in-memory SQLite database scoped
// to the test.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	return newRouter(database.New(db), withConfig(map[string]string{
		"JWT_SECRET": "test-secret",
	}))
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func registerUser(t *testing.T, router http.Handler, email, username string) (token string) {
	t.Helper()

	var req registerRequest
	req.User.Email = email
	req.User.Username = username
	req.User.Password = "hunter2hunter2"

	rec := doJSON(t, router, http.MethodPost, "/api/users", "", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp userResponse
	decodeInto(t, rec, &resp)
	require.NotEmpty(t, resp.User.Token)
	return resp.User.Token
}

func createTestArticle(t *testing.T, router http.Handler, token, title string, tags []string) string {
	t.Helper()

	var req createArticleRequest
	req.Article.Title = title
	req.Article.Description = "desc"
	req.Article.Body = "body"
	req.Article.TagList = tags

	rec := doJSON(t, router, http.MethodPost, "/api/articles", token, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp articleResponse
	decodeInto(t, rec, &resp)
	return resp.Article.Slug
}

func TestRegisterLoginAndCurrentUser(t *testing.T) {
	router := testRouter(t)
	registerUser(t, router, "jake@jake.jake", "jake")

	var login loginRequest
	login.User.Email = "jake@jake.jake"
	login.User.Password = "hunter2hunter2"
	rec := doJSON(t, router, http.MethodPost, "/api/users/login", "", login)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp userResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "jake", resp.User.Username)

	rec = doJSON(t, router, http.MethodGet, "/api/user", resp.User.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &resp)
	assert.Equal(t, "jake@jake.jake", resp.User.Email)
}

func TestRegisterValidationEnvelope(t *testing.T) {
	router := testRouter(t)

	var req registerRequest
	req.User.Email = "jake@jake.jake"
	req.User.Username = "jake"
	req.User.Password = "short"

	rec := doJSON(t, router, http.MethodPost, "/api/users", "", req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var resp ErrorResponse
	decodeInto(t, rec, &resp)
	assert.Contains(t, resp.Errors, "password")
}

func TestArticleLifecycleOverHTTP(t *testing.T) {
	router := testRouter(t)
	authorToken := registerUser(t, router, "jake@jake.jake", "jake")
	readerToken := registerUser(t, router, "anne@jake.jake", "anne")

	slug := createTestArticle(t, router, authorToken, "How to train your dragon", []string{"dragons"})

	// Anonymous read
	rec := doJSON(t, router, http.MethodGet, "/api/articles/"+slug, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var article articleResponse
	decodeInto(t, rec, &article)
	assert.Equal(t, "How to train your dragon", article.Article.Title)
	assert.Equal(t, []string{"dragons"}, article.Article.TagList)
	assert.False(t, article.Article.Favorited)

	// Another user cannot update it
	var update updateArticleRequest
	title := "hijacked"
	update.Article.Title = &title
	rec = doJSON(t, router, http.MethodPut, "/api/articles/"+slug, readerToken, update)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	// The author can
	rec = doJSON(t, router, http.MethodPut, "/api/articles/"+slug, authorToken, update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &article)
	assert.Equal(t, "hijacked", article.Article.Title)
	assert.Equal(t, slug, article.Article.Slug, "updates never change the slug")

	// Favoriting reflects in the returned view
	rec = doJSON(t, router, http.MethodPost, "/api/articles/"+slug+"/favorite", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &article)
	assert.True(t, article.Article.Favorited)
	assert.Equal(t, int64(1), article.Article.FavoritesCount)

	// Delete and verify it is gone
	rec = doJSON(t, router, http.MethodDelete, "/api/articles/"+slug, authorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/articles/"+slug, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestWritesRequireToken(t *testing.T) {
	router := testRouter(t)

	var req createArticleRequest
	req.Article.Title = "nope"
	rec := doJSON(t, router, http.MethodPost, "/api/articles", "", req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/articles/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}

func TestOptionalAuthPersonalizesListing(t *testing.T) {
	router := testRouter(t)
	authorToken := registerUser(t, router, "jake@jake.jake", "jake")
	readerToken := registerUser(t, router, "anne@jake.jake", "anne")

	slug := createTestArticle(t, router, authorToken, "liked", nil)
	rec := doJSON(t, router, http.MethodPost, "/api/articles/"+slug+"/favorite", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/articles", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var listing articlesResponse
	decodeInto(t, rec, &listing)
	require.Equal(t, 1, listing.ArticlesCount)
	assert.True(t, listing.Articles[0].Favorited)

	rec = doJSON(t, router, http.MethodGet, "/api/articles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &listing)
	require.Equal(t, 1, listing.ArticlesCount)
	assert.False(t, listing.Articles[0].Favorited)
}

func TestFeedAndFollowOverHTTP(t *testing.T) {
	router := testRouter(t)
	authorToken := registerUser(t, router, "jake@jake.jake", "jake")
	readerToken := registerUser(t, router, "anne@jake.jake", "anne")

	createTestArticle(t, router, authorToken, "from jake", nil)

	rec := doJSON(t, router, http.MethodPost, "/api/profiles/jake/follow", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var profile profileResponse
	decodeInto(t, rec, &profile)
	assert.True(t, profile.Profile.Following)

	rec = doJSON(t, router, http.MethodGet, "/api/articles/feed", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var listing articlesResponse
	decodeInto(t, rec, &listing)
	require.Equal(t, 1, listing.ArticlesCount)
	assert.Equal(t, "from jake", listing.Articles[0].Title)

	rec = doJSON(t, router, http.MethodDelete, "/api/profiles/jake/follow", readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeInto(t, rec, &profile)
	assert.False(t, profile.Profile.Following)
}

func TestCommentsOverHTTP(t *testing.T) {
	router := testRouter(t)
	authorToken := registerUser(t, router, "jake@jake.jake", "jake")
	readerToken := registerUser(t, router, "anne@jake.jake", "anne")

	slug := createTestArticle(t, router, authorToken, "discussed", nil)

	var add addCommentRequest
	add.Comment.Body = "great post"
	rec := doJSON(t, router, http.MethodPost, "/api/articles/"+slug+"/comments", readerToken, add)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created commentResponse
	decodeInto(t, rec, &created)
	assert.Equal(t, "anne", created.Comment.Author.Username)

	rec = doJSON(t, router, http.MethodGet, "/api/articles/"+slug+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var comments commentsResponse
	decodeInto(t, rec, &comments)
	require.Len(t, comments.Comments, 1)
	assert.Equal(t, "great post", comments.Comments[0].Body)

	// Only the comment author may remove it
	path := fmt.Sprintf("/api/articles/%s/comments/%d", slug, created.Comment.ID)
	rec = doJSON(t, router, http.MethodDelete, path, authorToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, path, readerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestTagsEndpoint(t *testing.T) {
	router := testRouter(t)
	token := registerUser(t, router, "jake@jake.jake", "jake")

	createTestArticle(t, router, token, "tagged", []string{"zulu", "alpha"})

	rec := doJSON(t, router, http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tags tagsResponse
	decodeInto(t, rec, &tags)
	assert.Equal(t, []string{"alpha", "zulu"}, tags.Tags)
}
