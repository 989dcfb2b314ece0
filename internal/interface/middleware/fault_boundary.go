package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FaultBoundary is the outermost catch-all: panics and errors attached
// by downstream handlers end up here and become a generic 500 page. If
// the response has already been partially written there is no safe way
// to respond again, so the failure is only logged.
func FaultBoundary(logger *logrus.Logger, appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				logger.WithFields(logrus.Fields{
					"request_id": c.GetString("request_id"),
					"path":       c.Request.URL.Path,
					"panic":      true,
				}).WithError(err).Error("unhandled panic")
				render500(c, appName, err)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("unhandled error")
		render500(c, appName, err)
	}
}

func render500(c *gin.Context, appName string, err error) {
	if c.Writer.Written() {
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Error",
		"AppName": appName,
		"Error":   err.Error(),
	})
	c.Abort()
}
