package middleware

import (
	"io"
	"net/http"
	"runtime/debug"

	"ncnews/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic into a 500 {"message":"Server Error"} and logs it with
// the stack and request id. Register it after RequestID and Logger so the
// request still gets its access-log line.
func Recovery(log *logrus.Entry) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      rec,
			"stack":      string(debug.Stack()),
			RequestIDKey: c.GetString(RequestIDKey),
		}).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": apperr.MsgServerError})
	})
}
