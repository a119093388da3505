package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Yashshinde43/tinyurl/internal/adapters/httpapi/handlers"
	"github.com/Yashshinde43/tinyurl/internal/domain"
)

func TestRedirect_Found(t *testing.T) {
	svc := &stubUseCase{
		t: t,
		resolveFunc: func(ctx context.Context, code string) (string, error) {
			require.Equal(t, "abc123", code)
			return "https://example.com", nil
		},
	}
	r := newRouter(t, svc)

	rec := doJSON(t, r, http.MethodGet, "/abc123", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://example.com", rec.Header().Get("Location"))
}

func TestRedirect_ReservedCodesSkipService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Only the redirect route registered, so every reserved name
	// reaches the handler guard. resolveFunc stays nil: any service
	// call fails the test.
	svc := &stubUseCase{t: t}
	h := handlers.New(svc, testBaseURL)

	r := gin.New()
	r.GET("/:code", h.Redirect)

	for _, code := range []string{"api", "code", "healthz"} {
		rec := doJSON(t, r, http.MethodGet, "/"+code, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, code)
		require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	}
}

func TestRedirect_NotFound(t *testing.T) {
	svc := &stubUseCase{
		t: t,
		resolveFunc: func(ctx context.Context, code string) (string, error) {
			return "", domain.ErrNotFound
		},
	}
	r := newRouter(t, svc)

	rec := doJSON(t, r, http.MethodGet, "/missing1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}
