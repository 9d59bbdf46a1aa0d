package router

import (
	"net/http"

	"ncnews/internal/handlers"
	"ncnews/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Topics   handlers.TopicStore
	Users    handlers.UserStore
	Articles handlers.ArticleStore
	Comments handlers.CommentStore
	Ping     handlers.Pinger
	Log      *logrus.Entry

	// CORSOrigins restricts cross-origin access; empty allows every origin.
	CORSOrigins []string
}

// Route is one entry of the route table: what to register, and what GET /api
// says about it.
type Route struct {
	Method          string
	Path            string
	Handler         gin.HandlerFunc
	Description     string
	Queries         []string
	ExampleResponse interface{}
}

// New builds the engine with middleware, the route table and the fallback.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(corsMiddleware(d.CORSOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Recovery(d.Log))
	r.Use(handlers.ErrorHandler(d.Log))

	RegisterRoutes(r, d)
	return r
}

// RegisterRoutes registers the route table on r and returns it.
func RegisterRoutes(r *gin.Engine, d Deps) []Route {
	api := &handlers.APIHandler{}
	routes := Table(d, api)
	api.Endpoints = Catalogue(routes)

	for _, rt := range routes {
		r.Handle(rt.Method, rt.Path, rt.Handler)
	}
	r.GET("/healthz", handlers.NewHealthHandler(d.Ping).Check)
	r.NoRoute(handlers.InvalidPath)
	return routes
}

// Table is the static method+path to handler mapping of the API.
func Table(d Deps, api *handlers.APIHandler) []Route {
	topicHandler := handlers.NewTopicHandler(d.Topics)
	userHandler := handlers.NewUserHandler(d.Users)
	articleHandler := handlers.NewArticleHandler(d.Articles)
	commentHandler := handlers.NewCommentHandler(d.Comments)

	return []Route{
		{
			Method:      http.MethodGet,
			Path:        "/api",
			Handler:     api.List,
			Description: "serves a json representation of all the available endpoints of the api",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/topics",
			Handler:     topicHandler.List,
			Description: "serves an array of all topics",
			ExampleResponse: gin.H{"topics": []gin.H{
				{"slug": "football", "description": "Footie!"},
			}},
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/users",
			Handler:     userHandler.List,
			Description: "serves an array of all users",
			ExampleResponse: gin.H{"users": []gin.H{
				{"username": "butter_bridge", "name": "jonny", "avatar_url": "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			}},
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/users/:username",
			Handler:     userHandler.Get,
			Description: "serves the user with the given username",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/articles",
			Handler:     articleHandler.List,
			Description: "serves a page of articles, without bodies, with a count of their comments",
			Queries:     []string{"topic", "sort_by", "order", "limit", "p"},
			ExampleResponse: gin.H{"articles": []gin.H{{
				"article_id":      1,
				"title":           "Seafood substitutions are increasing",
				"topic":           "cooking",
				"author":          "weegembump",
				"created_at":      "2018-05-30T15:59:13.341Z",
				"votes":           0,
				"article_img_url": "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700",
				"comment_count":   6,
			}}},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/articles",
			Handler:     articleHandler.Create,
			Description: "adds an article; requires username, topic, title and body, accepts article_img_url",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/articles/:article_id",
			Handler:     articleHandler.Get,
			Description: "serves the article with the given id, including its body",
		},
		{
			Method:      http.MethodPatch,
			Path:        "/api/articles/:article_id",
			Handler:     articleHandler.UpdateVotes,
			Description: "adds inc_votes to the article's votes and serves the updated article",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/articles/:article_id/comments",
			Handler:     commentHandler.ListByArticle,
			Description: "serves a page of the article's comments, most recent first",
			Queries:     []string{"limit", "p"},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/articles/:article_id/comments",
			Handler:     commentHandler.Create,
			Description: "adds a comment from username with body to the article",
		},
		{
			Method:      http.MethodPatch,
			Path:        "/api/comments/:comment_id",
			Handler:     commentHandler.UpdateVotes,
			Description: "adds inc_votes to the comment's votes and serves the updated comment",
		},
		{
			Method:      http.MethodDelete,
			Path:        "/api/comments/:comment_id",
			Handler:     commentHandler.Delete,
			Description: "deletes the comment; responds with no content",
		},
	}
}

// Catalogue keys every route by "METHOD path".
func Catalogue(routes []Route) map[string]handlers.Endpoint {
	endpoints := make(map[string]handlers.Endpoint, len(routes))
	for _, rt := range routes {
		endpoints[rt.Method+" "+rt.Path] = handlers.Endpoint{
			Description:     rt.Description,
			Queries:         rt.Queries,
			ExampleResponse: rt.ExampleResponse,
		}
	}
	return endpoints
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	return cors.New(cfg)
}
