package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/course-catalog-service/internal/events"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories/memory"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

const adminEmail = "michael.chen@example.com"

type testServer struct {
	router   *gin.Engine
	sessions *session.Manager
}

// newTestServer wires the full router against the seeded store, a real
// in-process bus and inbox, and short timers.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repoMgr := memory.NewRepositoryManager()
	require.NoError(t, repoMgr.Initialize())

	bus := events.NewBus("notifications", logger)
	t.Cleanup(func() { _ = bus.Close() })
	inbox := events.NewInbox(events.DefaultInboxCapacity, logger)
	require.NoError(t, inbox.Run(ctx, bus))

	sessions := session.NewManager(session.ManagerConfig{Logger: logger})
	t.Cleanup(sessions.Shutdown)

	v := validator.New()
	cfg := services.DefaultServiceManagerConfig()
	cfg.SubmitDelay = 5 * time.Millisecond
	cfg.ListingDebounce = 20 * time.Millisecond

	sm := services.NewServiceManager(services.ServiceDeps{
		Repo:      repoMgr.GetRepository(),
		RepoMgr:   repoMgr,
		Publisher: bus,
		Inbox:     inbox,
		Sessions:  sessions,
		Validator: v,
		Logger:    logger,
	}, cfg)
	require.NoError(t, sm.Initialize(ctx))
	t.Cleanup(func() { _ = sm.Shutdown(context.Background()) })

	router := gin.New()
	SetupMiddleware(router, utils.NewSlogLogger(logger))
	NewHandlerManager(sm, sessions, v, utils.NewSlogLogger(logger)).SetupRoutes(router)

	return &testServer{router: router, sessions: sessions}
}

func (s *testServer) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()

	w := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result services.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.SessionID)
	return result.SessionID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func courseIDs(courses []map[string]interface{}) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c["id"].(string))
	}
	return ids
}
