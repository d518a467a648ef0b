package server

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/engine"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm/llmtest"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/store"
	"github.com/iWorld-y/daily_spark/app/display/internal/service"
	"github.com/iWorld-y/daily_spark/app/display/internal/usecase"
)

func newTestServer(stub *llmtest.Stub) *http.Server {
	eng := engine.NewEngine(stub, engine.WithClock(func() time.Time {
		return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	}))
	uc := usecase.NewStudioUseCase(store.New(), eng, log.DefaultLogger)
	return NewHTTPServer(&config.Config{}, service.NewStudioService(uc, log.DefaultLogger), log.DefaultLogger)
}

func do(t *testing.T, srv *http.Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHTTP_Flow(t *testing.T) {
	stub := llmtest.New()
	srv := newTestServer(stub)

	rec, st := do(t, srv, "GET", "/api/v1/state", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "config", st["status"])

	rec, body := do(t, srv, "PUT", "/api/v1/profile", `{"name":"Acme","description":"","targetAudience":"retailers"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "PROFILE_INCOMPLETE", body["reason"])

	rec, st = do(t, srv, "PUT", "/api/v1/profile", `{"name":"Acme","description":"sells widgets","targetAudience":"retailers"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "idle", st["status"])

	rec, st = do(t, srv, "POST", "/api/v1/generate", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "succeeded", st["status"])
	activity := st["activity"].(map[string]any)
	assert.Equal(t, "Thursday, October 15, 2026", activity["date"])
	assert.Equal(t, llmtest.Image, activity["post"].(map[string]any)["imageUrl"])

	rec, st = do(t, srv, "PUT", "/api/v1/post/text", `{"text":"edited"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "edited", st["activity"].(map[string]any)["post"].(map[string]any)["text"])

	rec, body = do(t, srv, "POST", "/api/v1/post/image-from-prompt", `{"imagePrompt":"  "}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_PROMPT", body["reason"])
}

func TestHTTP_UpstreamFailure(t *testing.T) {
	stub := llmtest.New()
	stub.KeywordsErr = errors.New("quota exceeded")
	srv := newTestServer(stub)

	do(t, srv, "PUT", "/api/v1/profile", `{"name":"Acme","description":"sells widgets","targetAudience":"retailers"}`)
	rec, body := do(t, srv, "POST", "/api/v1/generate", "")
	assert.Equal(t, 502, rec.Code)
	assert.Contains(t, body["message"], "quota exceeded")

	_, st := do(t, srv, "GET", "/api/v1/state", "")
	assert.Equal(t, "failed", st["status"])
}

func TestHTTP_NoActivity(t *testing.T) {
	srv := newTestServer(llmtest.New())
	rec, body := do(t, srv, "POST", "/api/v1/post/image", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_ACTIVITY", body["reason"])
}

func TestHTTP_Theme(t *testing.T) {
	srv := newTestServer(llmtest.New())

	_, body := do(t, srv, "GET", "/api/v1/theme", "")
	assert.Equal(t, "dark", body["theme"])

	rec, body := do(t, srv, "PUT", "/api/v1/theme", `{"theme":"forest"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "forest", body["theme"])

	rec, _ = do(t, srv, "PUT", "/api/v1/theme", `{"theme":"neon"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestHTTP_HealthzAndIndex(t *testing.T) {
	srv := newTestServer(llmtest.New())

	rec, body := do(t, srv, "GET", "/healthz", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	rec, _ = do(t, srv, "GET", "/", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Daily Spark")
}
