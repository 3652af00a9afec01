// Package httperr defines the JSON error envelope shared by the API handlers
// and the error-translating middleware.
package httperr

import "github.com/gin-gonic/gin"

// Response is the body written for every handler-level failure. Status is
// carried for the middleware and never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// AbortWithError writes the envelope and records the underlying cause on the
// gin context so the logging middleware can see it. The cause is required;
// a nil err means the call site lost it, which is a bug.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called without a cause")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
