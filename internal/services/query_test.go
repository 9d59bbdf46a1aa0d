package services

import (
	"net/http"
	"testing"

	"ncnews/internal/apperr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok, "expected *apperr.Error, got %T", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestOrderByDefaults(t *testing.T) {
	got, err := orderBy("", "")
	require.NoError(t, err)

	want := clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: "articles", Name: "created_at"}, Desc: true},
		{Column: clause.Column{Table: "articles", Name: "article_id"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("orderBy mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderByAllowList(t *testing.T) {
	for _, sortBy := range []string{"title", "author", "created_at", "votes", "comment_count"} {
		for _, order := range []string{"asc", "ASC", "Asc", "desc", "DESC", "dEsC"} {
			got, err := orderBy(sortBy, order)
			require.NoError(t, err, "%s %s", sortBy, order)
			assert.Equal(t, sortBy, got.Columns[0].Column.Name)
			assert.Equal(t, order[0] == 'd' || order[0] == 'D', got.Columns[0].Desc)
		}
	}

	// comment_count is an output alias, not an articles column.
	got, err := orderBy("comment_count", "")
	require.NoError(t, err)
	assert.Empty(t, got.Columns[0].Column.Table)
}

func TestOrderByRejects(t *testing.T) {
	_, err := orderBy("body", "asc")
	requireAppError(t, err, http.StatusBadRequest, "Invalid sort_by query")

	_, err = orderBy("votes; DROP TABLE articles", "asc")
	requireAppError(t, err, http.StatusBadRequest, "Invalid sort_by query")

	_, err = orderBy("votes", "sideways")
	requireAppError(t, err, http.StatusBadRequest, "Invalid order query")

	// sort_by is checked before order.
	_, err = orderBy("nope", "sideways")
	requireAppError(t, err, http.StatusBadRequest, "Invalid sort_by query")
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name string
		in   PageQuery
		want Page
	}{
		{"defaults", PageQuery{}, Page{Limit: 10, Offset: 0}},
		{"second page", PageQuery{Limit: "5", Page: "2"}, Page{Limit: 5, Offset: 5}},
		{"default limit third page", PageQuery{Page: "3"}, Page{Limit: 10, Offset: 20}},
		{"page zero", PageQuery{Limit: "5", Page: "0"}, Page{Limit: 5, Offset: 0}},
		{"limit zero", PageQuery{Limit: "0", Page: "4"}, Page{Limit: 0, Offset: 0}},
		{"zero padded", PageQuery{Limit: "0000000010", Page: "0000000002"}, Page{Limit: 10, Offset: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paginate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginateRejects(t *testing.T) {
	_, err := paginate(PageQuery{Limit: "ten"})
	requireAppError(t, err, http.StatusBadRequest, "Limit not valid")

	_, err = paginate(PageQuery{Limit: "-1"})
	requireAppError(t, err, http.StatusBadRequest, "Limit not valid")

	_, err = paginate(PageQuery{Page: "two"})
	requireAppError(t, err, http.StatusBadRequest, "Page(p) not valid")

	// limit is checked before p.
	_, err = paginate(PageQuery{Limit: "x", Page: "y"})
	requireAppError(t, err, http.StatusBadRequest, "Limit not valid")
}

func strPtr(s string) *string { return &s }

func TestValidateNewArticleOrder(t *testing.T) {
	full := NewArticle{
		Username: strPtr("butter_bridge"),
		Topic:    strPtr("cats"),
		Title:    strPtr("On cats"),
		Body:     strPtr("They are not dogs."),
	}
	require.NoError(t, validateNewArticle(full))

	tests := []struct {
		name    string
		mutate  func(a *NewArticle)
		message string
	}{
		{"everything missing", func(a *NewArticle) { *a = NewArticle{} }, "Author missing"},
		{"empty author", func(a *NewArticle) { a.Username = strPtr("") }, "Author missing"},
		{"topic before title", func(a *NewArticle) { a.Topic = nil; a.Title = nil }, "Topic missing"},
		{"title before body", func(a *NewArticle) { a.Title = strPtr(""); a.Body = nil }, "Title missing"},
		{"body", func(a *NewArticle) { a.Body = nil }, "Body missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := full
			tt.mutate(&in)
			requireAppError(t, validateNewArticle(in), http.StatusBadRequest, tt.message)
		})
	}
}
