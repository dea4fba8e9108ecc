package response

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/models"
	appErrors "github.com/noah-isme/rate-my-teacher/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data       interface{}            `json:"data,omitempty"`
	Error      *appErrors.Error       `json:"error,omitempty"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data, Pagination: pagination}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// Redirect answers a form submission with 303 See Other, encoding the
// human-readable outcome in the "message" or "error" query parameter.
func Redirect(c *gin.Context, path, message string, err error) {
	c.Header("Cache-Control", "no-store")
	target := path
	switch {
	case err != nil:
		target = WithParam(path, "error", appErrors.FromError(err).Message)
	case message != "":
		target = WithParam(path, "message", message)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// WithParam appends a query parameter to path, keeping any fragment last.
func WithParam(path, key, value string) string {
	fragment := ""
	if idx := strings.Index(path, "#"); idx >= 0 {
		path, fragment = path[:idx], path[idx:]
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + url.QueryEscape(key) + "=" + url.QueryEscape(value) + fragment
}
