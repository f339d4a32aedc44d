package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// logRequest is the access log. It stays at debug so the only info records
// are the ones the endpoint itself writes.
func logRequest(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debugf("%s -- %s -- %s -- %d", c.ClientIP(), c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

func logAndReturnError(c *gin.Context, log *logrus.Logger, httpResponseStr string, code int, consoleStr ...string) {
	// consoleStr is optional.
	msg := httpResponseStr
	if len(consoleStr) > 0 {
		msg = consoleStr[0]
	}
	if code >= http.StatusInternalServerError {
		log.Errorln(msg)
	} else {
		log.Warnln(msg)
	}
	c.AbortWithStatusJSON(code, errorResponse{Error: httpResponseStr})
}
