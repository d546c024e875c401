package utils_test

import (
	"net/http/httptest"
	"testing"

	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithAuth(header string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT("3f6f1a0e-29a8-4f6e-9e38-0a9a0f4f7a11", "jane@example.com", "ADMIN")
	require.NoError(t, err)

	claims, err := utils.VerifyJWT(contextWithAuth("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, "3f6f1a0e-29a8-4f6e-9e38-0a9a0f4f7a11", claims["userId"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestVerifyJWTRejectsBadHeaders(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := utils.VerifyJWT(contextWithAuth(""))
	assert.ErrorContains(t, err, "authorization header missing")

	_, err = utils.VerifyJWT(contextWithAuth("Basic abc123"))
	assert.ErrorContains(t, err, "invalid authorization header format")
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := utils.GenerateJWT("id", "a@example.com", "USER")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = utils.VerifyJWT(contextWithAuth("Bearer " + token))
	assert.Error(t, err)
}
