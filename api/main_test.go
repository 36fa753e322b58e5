package api

import (
	"bytes"
	"context"
	"errors"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	db "github.com/Drolfothesgnir/bbparse/db"
	"github.com/Drolfothesgnir/bbparse/tmpstore"
	"github.com/Drolfothesgnir/bbparse/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	UseJSONFieldNames()

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress: "http://localhost:8080",
	AllowedOrigins:    []string{"*"},
	ParseCacheTTL:     time.Minute,
	MaxInputBytes:     64,
}

func newTestService(t *testing.T, store db.Store, cache tmpstore.Store) *Service {
	t.Helper()

	service, err := NewService(testConfig, store, cache)
	require.NoError(t, err)
	return service
}

func newJSONRequest(t *testing.T, method string, url string, body any) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	request, err := http.NewRequest(method, url, bytes.NewReader(data))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	return request
}

func TestNewService_InvalidAddress(t *testing.T) {
	config := testConfig
	config.HTTPServerAddress = "http://:8080"

	_, err := NewService(config, nil, nil)
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	service := newTestService(t, nil, nil)

	request, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	service.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "pong", recorder.Body.String())
}

func TestService_StartAndShutdown(t *testing.T) {
	config := testConfig
	config.HTTPServerAddress = "http://127.0.0.1:0"

	service, err := NewService(config, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, service.server)
	require.Equal(t, "127.0.0.1:0", service.server.Addr)
	require.Equal(t, service.router, service.server.Handler)

	done := make(chan error, 1)
	go func() {
		done <- service.Start()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, service.Shutdown(ctx))

	select {
	case err := <-done:
		require.True(t, errors.Is(err, http.ErrServerClosed), "unexpected error: %v", err)
	case <-ctx.Done():
		t.Fatal("server did not stop after shutdown")
	}
}
