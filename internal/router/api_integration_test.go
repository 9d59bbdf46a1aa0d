//go:build integration
// +build integration

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"time"

	"ncnews/internal/db"
	"ncnews/internal/services"
	"ncnews/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDSN string

func TestMain(m *testing.M) {
	dsn, terminate, err := testutil.StartPostgres(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	testDSN = dsn
	code := m.Run()
	terminate()
	os.Exit(code)
}

func seededEngine(t *testing.T) *gin.Engine {
	gdb := testutil.Seeded(t, testDSN)
	logger, _ := test.NewNullLogger()
	topics := services.NewTopicService(gdb)
	return New(Deps{
		Topics:   topics,
		Users:    services.NewUserService(gdb),
		Articles: services.NewArticleService(gdb, topics),
		Comments: services.NewCommentService(gdb),
		Ping:     func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		Log:      logrus.NewEntry(logger),
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Reader
	if s, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(s))
	} else if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func message(t *testing.T, body map[string]json.RawMessage) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(body["message"], &msg))
	return msg
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

type articleJSON struct {
	ArticleID     int     `json:"article_id"`
	Title         string  `json:"title"`
	Topic         string  `json:"topic"`
	Author        string  `json:"author"`
	Body          *string `json:"body"`
	CreatedAt     string  `json:"created_at"`
	Votes         int     `json:"votes"`
	ArticleImgURL string  `json:"article_img_url"`
	CommentCount  int     `json:"comment_count"`
}

type commentJSON struct {
	CommentID int    `json:"comment_id"`
	ArticleID int    `json:"article_id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	Votes     int    `json:"votes"`
	CreatedAt string `json:"created_at"`
}

func TestAPITopicsAndUsers(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodGet, "/api/topics", nil)
	require.Equal(t, http.StatusOK, status)
	var topics []struct {
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	decode(t, body["topics"], &topics)
	assert.Len(t, topics, 3)

	status, body = do(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, status)
	var users []map[string]string
	decode(t, body["users"], &users)
	require.Len(t, users, 4)
	for _, u := range users {
		assert.Contains(t, u, "username")
		assert.Contains(t, u, "name")
		assert.Contains(t, u, "avatar_url")
	}

	status, body = do(t, r, http.MethodGet, "/api/users/butter_bridge", nil)
	require.Equal(t, http.StatusOK, status)
	var user map[string]string
	decode(t, body["user"], &user)
	assert.Equal(t, "jonny", user["name"])

	status, body = do(t, r, http.MethodGet, "/api/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", message(t, body))
}

func TestAPIListArticles(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodGet, "/api/articles", nil)
	require.Equal(t, http.StatusOK, status)
	var articles []articleJSON
	decode(t, body["articles"], &articles)
	require.Len(t, articles, 10)
	assert.Equal(t, 3, articles[0].ArticleID)
	for _, a := range articles {
		assert.Nil(t, a.Body)
	}

	status, body = do(t, r, http.MethodGet, "/api/articles?sort_by=votes&order=asc&limit=20", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, body["articles"], &articles)
	require.Len(t, articles, 13)
	assert.Equal(t, 1, articles[12].ArticleID)

	status, body = do(t, r, http.MethodGet, "/api/articles?topic=paper", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body["articles"]))

	cases := []struct {
		query   string
		status  int
		message string
	}{
		{"?topic=dogs", http.StatusNotFound, "Topic does not exist"},
		{"?sort_by=password", http.StatusBadRequest, "Invalid sort_by query"},
		{"?order=sideways", http.StatusBadRequest, "Invalid order query"},
		{"?limit=ten", http.StatusBadRequest, "Limit not valid"},
		{"?p=-1", http.StatusBadRequest, "Page(p) not valid"},
		{"?sort_by=votes%20DESC%2C%20body", http.StatusBadRequest, "Invalid sort_by query"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			status, body := do(t, r, http.MethodGet, "/api/articles"+tc.query, nil)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, message(t, body))
		})
	}
}

func TestAPIListArticlesSortsEveryColumn(t *testing.T) {
	r := seededEngine(t)

	keys := map[string]func(a, b articleJSON) int{
		"title":  func(a, b articleJSON) int { return compareStrings(a.Title, b.Title) },
		"author": func(a, b articleJSON) int { return compareStrings(a.Author, b.Author) },
		"votes":  func(a, b articleJSON) int { return a.Votes - b.Votes },
		"comment_count": func(a, b articleJSON) int {
			return a.CommentCount - b.CommentCount
		},
		"created_at": func(a, b articleJSON) int {
			return compareTimes(t, a.CreatedAt, b.CreatedAt)
		},
	}

	for column, cmp := range keys {
		for _, order := range []string{"asc", "desc"} {
			t.Run(column+" "+order, func(t *testing.T) {
				status, body := do(t, r, http.MethodGet, "/api/articles?limit=20&sort_by="+column+"&order="+order, nil)
				require.Equal(t, http.StatusOK, status)
				var articles []articleJSON
				decode(t, body["articles"], &articles)
				require.Len(t, articles, 13)

				assert.True(t, sort.SliceIsSorted(articles, func(i, j int) bool {
					if order == "desc" {
						return cmp(articles[i], articles[j]) > 0
					}
					return cmp(articles[i], articles[j]) < 0
				}), "articles not ordered by %s %s", column, order)
			})
		}
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTimes(t *testing.T, a, b string) int {
	ta, err := time.Parse(time.RFC3339Nano, a)
	require.NoError(t, err)
	tb, err := time.Parse(time.RFC3339Nano, b)
	require.NoError(t, err)
	return ta.Compare(tb)
}

func TestAPIArticleByID(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodGet, "/api/articles/1", nil)
	require.Equal(t, http.StatusOK, status)
	var article articleJSON
	decode(t, body["article"], &article)
	assert.Equal(t, 1, article.ArticleID)
	require.NotNil(t, article.Body)
	assert.Equal(t, 11, article.CommentCount)

	status, body = do(t, r, http.MethodGet, "/api/articles/99999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Item not found", message(t, body))

	status, body = do(t, r, http.MethodGet, "/api/articles/banana", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", message(t, body))
}

func TestAPIPatchArticleVotes(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodPatch, "/api/articles/1", map[string]int{"inc_votes": -20})
	require.Equal(t, http.StatusOK, status)
	var article articleJSON
	decode(t, body["article"], &article)
	assert.Equal(t, 80, article.Votes)

	status, body = do(t, r, http.MethodPatch, "/api/articles/1", map[string]int{"inc_votes": 0})
	require.Equal(t, http.StatusOK, status)
	decode(t, body["article"], &article)
	assert.Equal(t, 80, article.Votes)

	status, body = do(t, r, http.MethodPatch, "/api/articles/1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", message(t, body))

	status, body = do(t, r, http.MethodPatch, "/api/articles/1", map[string]string{"inc_votes": "cat"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", message(t, body))

	status, body = do(t, r, http.MethodPatch, "/api/articles/99999", map[string]int{"inc_votes": 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Item not found", message(t, body))
}

func TestAPIPostArticle(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodPost, "/api/articles", map[string]string{
		"username": "butter_bridge",
		"topic":    "cats",
		"title":    "Cats again",
		"body":     "Still cats.",
	})
	require.Equal(t, http.StatusCreated, status)
	var article articleJSON
	decode(t, body["article"], &article)
	assert.Equal(t, 14, article.ArticleID)
	assert.Equal(t, 0, article.Votes)
	assert.Equal(t, 0, article.CommentCount)
	assert.NotEmpty(t, article.CreatedAt)

	status, body = do(t, r, http.MethodPost, "/api/articles", map[string]string{
		"topic": "cats", "title": "t", "body": "b",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Author missing", message(t, body))

	status, body = do(t, r, http.MethodPost, "/api/articles", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Author missing", message(t, body))

	status, body = do(t, r, http.MethodPost, "/api/articles", map[string]string{
		"username": "ghost", "topic": "cats", "title": "t", "body": "b",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", message(t, body))
}

func TestAPIComments(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodGet, "/api/articles/1/comments?limit=5&p=2", nil)
	require.Equal(t, http.StatusOK, status)
	var comments []commentJSON
	decode(t, body["comments"], &comments)
	assert.Len(t, comments, 5)

	status, body = do(t, r, http.MethodGet, "/api/articles/2/comments", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body["comments"]))

	status, body = do(t, r, http.MethodGet, "/api/articles/99999/comments", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Article not found", message(t, body))

	status, body = do(t, r, http.MethodPost, "/api/articles/5/comments", map[string]string{
		"username": "icellusedkars", "body": "Nice.",
	})
	require.Equal(t, http.StatusCreated, status)
	var comment commentJSON
	decode(t, body["comment"], &comment)
	assert.Equal(t, 19, comment.CommentID)
	assert.Equal(t, 5, comment.ArticleID)

	status, body = do(t, r, http.MethodPost, "/api/articles/5/comments", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Author missing", message(t, body))

	status, body = do(t, r, http.MethodPost, "/api/articles/5/comments", map[string]string{"username": "lurker"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Comment missing", message(t, body))

	status, body = do(t, r, http.MethodPost, "/api/articles/5/comments", map[string]string{
		"username": "ghost", "body": "boo",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", message(t, body))

	status, body = do(t, r, http.MethodPatch, "/api/comments/3", map[string]int{"inc_votes": -1})
	require.Equal(t, http.StatusOK, status)
	decode(t, body["comment"], &comment)
	assert.Equal(t, 99, comment.Votes)

	status, _ = do(t, r, http.MethodDelete, "/api/comments/6", nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, r, http.MethodDelete, "/api/comments/6", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Item not found", message(t, body))

	status, body = do(t, r, http.MethodDelete, "/api/comments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", message(t, body))
}

func TestAPIMalformedBodyAndPaths(t *testing.T) {
	r := seededEngine(t)

	status, body := do(t, r, http.MethodPost, "/api/articles", "{not json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", message(t, body))

	status, body = do(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invalid path", message(t, body))

	status, body = do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `"ok"`, string(body["status"]))
}
