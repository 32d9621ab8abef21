package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentAccountID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	id := uuid.New()
	c.Set(ContextAccountIDKey, id.String())

	got, err := CurrentAccountID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCurrentAccountIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CurrentAccountID(c)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentAccountIDMalformed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextAccountIDKey, "not-a-uuid")

	_, err := CurrentAccountID(c)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// Missing auth must surface as 401, not as a 404 for an account that
// was never looked up.
func TestHandleServiceErrorUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleServiceError(c, ErrUnauthenticated)
	assert.Equal(t, 401, rec.Code)
}
