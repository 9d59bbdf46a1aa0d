package services

import (
	"strings"

	"ncnews/internal/apperr"
	"ncnews/internal/utils"

	"gorm.io/gorm/clause"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// sortColumns is the allow-list for article ordering. The ORDER BY clause is
// built from these descriptors; the request string is only used as a map key.
var sortColumns = map[string]clause.Column{
	"title":         {Table: "articles", Name: "title"},
	"author":        {Table: "articles", Name: "author"},
	"created_at":    {Table: "articles", Name: "created_at"},
	"votes":         {Table: "articles", Name: "votes"},
	"comment_count": {Name: "comment_count"},
}

// ArticleQuery holds the raw query-string values of an article listing.
// Empty strings mean "not supplied".
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
	Page   string
}

// PageQuery holds the raw pagination values shared by both listings.
type PageQuery struct {
	Limit string
	Page  string
}

// Page is a validated LIMIT/OFFSET pair.
type Page struct {
	Limit  int
	Offset int
}

func sortColumn(sortBy string) (clause.Column, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		return clause.Column{}, apperr.BadRequest("Invalid sort_by query")
	}
	return col, nil
}

// sortDescending reports whether order asks for DESC; it accepts asc/desc in any case.
func sortDescending(order string) (bool, error) {
	if order == "" {
		order = DefaultOrder
	}
	switch strings.ToUpper(order) {
	case "DESC":
		return true, nil
	case "ASC":
		return false, nil
	}
	return false, apperr.BadRequest("Invalid order query")
}

// orderBy validates sort_by and order, in that order, and returns the clause.
// Ties are broken by article_id so pages are stable.
func orderBy(sortBy, order string) (clause.OrderBy, error) {
	col, err := sortColumn(sortBy)
	if err != nil {
		return clause.OrderBy{}, err
	}
	desc, err := sortDescending(order)
	if err != nil {
		return clause.OrderBy{}, err
	}
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: col, Desc: desc},
		{Column: clause.Column{Table: "articles", Name: "article_id"}},
	}}, nil
}

// paginate validates limit then page. Both must be strings of digits. Page 0 is
// treated as the first page.
func paginate(q PageQuery) (Page, error) {
	limit := DefaultLimit
	if q.Limit != "" {
		n, ok := utils.ParseDigits(q.Limit)
		if !ok {
			return Page{}, apperr.BadRequest("Limit not valid")
		}
		limit = n
	}

	page := DefaultPage
	if q.Page != "" {
		n, ok := utils.ParseDigits(q.Page)
		if !ok {
			return Page{}, apperr.BadRequest("Page(p) not valid")
		}
		page = n
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}, nil
}
