package handlers

import (
	"io"
	"net/http"

	"ncnews/internal/apperr"
	"ncnews/internal/middleware"
	"ncnews/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrorHandler is the one place a rejection becomes a response. Handlers record
// the error with c.Error and return without writing anything.
func ErrorHandler(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message, internal := apperr.Translate(err)
		if internal {
			log.WithError(err).
				WithField(middleware.RequestIDKey, c.GetString(middleware.RequestIDKey)).
				Errorf("%s %s: unhandled error", c.Request.Method, c.Request.URL.Path)
		}
		c.AbortWithStatusJSON(status, gin.H{"message": message})
	}
}

// InvalidPath answers every route that matched nothing.
func InvalidPath(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": apperr.MsgInvalidPath})
}

// pathID reads an integer path parameter. On failure it records a 400 and the
// caller should return.
func pathID(c *gin.Context, name string) (int, bool) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		c.Error(apperr.BadRequest(apperr.MsgBadRequest))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into obj, recording a 400 on malformed
// JSON, an empty body or a type mismatch.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.Error(apperr.BadRequest(apperr.MsgBadRequest))
		return false
	}
	return true
}

// bindSubmission is bindJSON for the POST endpoints, where an empty body reads
// as {} so the missing-field checks report which field is absent.
func bindSubmission(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.Error(apperr.BadRequest(apperr.MsgBadRequest))
	return false
}

// voteDelta is the body of both PATCH endpoints.
type voteDelta struct {
	IncVotes *int `json:"inc_votes"`
}

func bindVoteDelta(c *gin.Context) (int, bool) {
	var body voteDelta
	if !bindJSON(c, &body) {
		return 0, false
	}
	if body.IncVotes == nil {
		c.Error(apperr.BadRequest(apperr.MsgBadRequest))
		return 0, false
	}
	return *body.IncVotes, true
}
