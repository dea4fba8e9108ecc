package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAddWarningsAccumulates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, ExtractMeta(c))
	AddWarnings(c)
	assert.Nil(t, ExtractMeta(c))

	AddWarnings(c, "Subject filter unavailable: timeout")
	AddWarnings(c, "Vote scores unavailable: timeout")
	meta := ExtractMeta(c)
	assert.Equal(t, []string{"Subject filter unavailable: timeout", "Vote scores unavailable: timeout"}, meta["warnings"])
	assert.Nil(t, ExtractMeta(nil))
}
