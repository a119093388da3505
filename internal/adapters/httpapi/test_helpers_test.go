//go:build integration

package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type problemResponse struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func doRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func doJSON(t *testing.T, method, path string, body any, want int) map[string]any {
	t.Helper()

	rec := doRequest(t, method, path, body)
	require.Equal(t, want, rec.Code, rec.Body.String())

	if want == http.StatusNoContent {
		return nil
	}

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func doJSONArray(t *testing.T, method, path string, body any, want int) []map[string]any {
	t.Helper()

	rec := doRequest(t, method, path, body)
	require.Equal(t, want, rec.Code, rec.Body.String())

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func doJSONExpectError(t *testing.T, method, path string, body any, want int) {
	t.Helper()

	_ = doJSON(t, method, path, body, want)
}

func requireProblem(
	t *testing.T,
	rec *httptest.ResponseRecorder,
	wantStatus int,
	wantType, wantTitle string,
) {
	t.Helper()

	require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

	var p problemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))

	require.Equal(t, wantStatus, p.Status)
	require.Equal(t, wantType, p.Type)
	require.Equal(t, wantTitle, p.Title)
}

func asString(t *testing.T, v any) string {
	t.Helper()

	s, ok := v.(string)
	require.True(t, ok, "expected string, got %T (%v)", v, v)

	return s
}

func asInt64(t *testing.T, v any) int64 {
	t.Helper()

	f, ok := v.(float64)
	require.True(t, ok, "expected number(float64), got %T (%v)", v, v)

	return int64(f)
}
