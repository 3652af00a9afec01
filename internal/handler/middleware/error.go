package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pourup/internal/handler/httperr"
	"pourup/internal/pkg/errs"
)

const stackLogLines = 12

// ErrorHandler translates errors accumulated on the gin context into the
// shared envelope. Newest error wins; public errors carry their prepared
// Response in Meta, anything else becomes an opaque 500 with the cause
// logged server-side only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]

			if ginErr.IsType(gin.ErrorTypePublic) {
				if resp, ok := ginErr.Meta.(httperr.Response); ok {
					if resp.Status >= http.StatusInternalServerError {
						slog.Error("request failed",
							"path", c.Request.URL.Path,
							"status", resp.Status,
							"stack", errs.StackLines(ginErr.Err, stackLogLines))
					}
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

// CustomRecovery converts panics into the same envelope instead of gin's
// default plain-text body.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "panic", r, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
				c.Abort()
			}
		}()
		c.Next()
	}
}
