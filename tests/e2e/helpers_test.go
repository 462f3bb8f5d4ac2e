//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/activity"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/presenceaudit"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/section"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/testhelper"
	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/vettingcase"
	"github.com/ballotworks/advocacy-backend/internal/adapter/provider/presencescan"
	authpkg "github.com/ballotworks/advocacy-backend/internal/auth"
	"github.com/ballotworks/advocacy-backend/internal/config"
	"github.com/ballotworks/advocacy-backend/internal/service/presence"
	"github.com/ballotworks/advocacy-backend/internal/service/vetting"
	"github.com/ballotworks/advocacy-backend/internal/transport/middleware"
	"github.com/ballotworks/advocacy-backend/internal/transport/rest"
	"github.com/ballotworks/advocacy-backend/pkg/background"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// jwtValidator adapts the JWT manager to the middleware's token validator.
type jwtValidator struct{ jwt *authpkg.JWTManager }

func (v *jwtValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.jwt.ValidateAccessToken(token)
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	caseRepo := vettingcase.New(pool)
	sectionRepo := section.New(pool)
	auditRepo := presenceaudit.New(pool)
	activityRepo := activity.New(pool)

	// 4. Background runner with the stub scan provider; the registry gets
	// its own context so tasks drain cleanly on test teardown.
	tasksCtx, tasksStop := context.WithCancel(context.Background())
	registry := background.NewRegistry(tasksCtx, logger)
	t.Cleanup(func() {
		tasksStop()
		registry.Wait()
	})

	runner := presence.NewRunner(logger, auditRepo, caseRepo, presencescan.NewStub(), registry, 30*time.Second)

	// 5. Services.
	vettingService := vetting.NewService(logger, caseRepo, sectionRepo, auditRepo, runner, activityRepo, txm)

	// 6. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 7. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	rest.NewVettingHandler(vettingService, logger).Register(mux)

	// 8. Middleware chain.
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,PUT,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(&jwtValidator{jwt: jwtMgr}),
	)(mux)

	// 9. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Token helpers. There is no user store: the API trusts tokens issued by the
// organization's identity service, so tests mint their own.
// ---------------------------------------------------------------------------

func (ts *testServer) tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(uuid.New(), role)
	if err != nil {
		t.Fatalf("generate %s token: %v", role, err)
	}
	return token
}

func (ts *testServer) managerToken(t *testing.T) string { return ts.tokenFor(t, "vetting_manager") }

func (ts *testServer) memberToken(t *testing.T) string { return ts.tokenFor(t, "member") }

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// request sends a JSON request and returns the status code and raw body.
func (ts *testServer) request(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, buf.Bytes()
}

// doJSON sends a request and decodes the response as a JSON object.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.request(t, method, path, body, token)
	result := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			t.Fatalf("decode response object (%d %s %s): %v\nbody: %s", status, method, path, err, raw)
		}
	}
	return status, result
}

// doJSONList sends a request and decodes the response as a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path string, body any, token string) (int, []any) {
	t.Helper()

	status, raw := ts.request(t, method, path, body, token)
	var result []any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			t.Fatalf("decode response array (%d %s %s): %v\nbody: %s", status, method, path, err, raw)
		}
	}
	return status, result
}
