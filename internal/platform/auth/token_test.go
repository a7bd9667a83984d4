package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueAndParseToken(t *testing.T) {
	tok, err := IssueToken(testSecret, "reception", "Front Desk", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "reception", claims.Subject)
	assert.Equal(t, "Front Desk", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestIssueToken_EmptySecret(t *testing.T) {
	_, err := IssueToken("", "reception", "", time.Hour)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := IssueToken(testSecret, "reception", "", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", tok)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := IssueToken(testSecret, "reception", "", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tok)
	assert.Error(t, err)
}

func callWithHeader(t *testing.T, header string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestMiddleware(t *testing.T) {
	tok, err := IssueToken(testSecret, "reception", "", time.Hour)
	require.NoError(t, err)

	assert.NoError(t, callWithHeader(t, "Bearer "+tok))

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			err := callWithHeader(t, header)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}
