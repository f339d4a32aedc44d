package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bodylogger/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	cfg := &config.Config{LogLevel: "warn"}

	level, err := logLevel(cfg, false)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, level)

	level, err = logLevel(cfg, true)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	_, err = logLevel(&config.Config{LogLevel: "loud"}, false)
	assert.Error(t, err)
}

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()
	cfg := &config.Config{
		ListenAddress:   "127.0.0.1:0",
		LogLevel:        "info",
		ShutdownTimeout: time.Second,
	}

	server := newServer(cfg, logger)
	assert.Equal(t, "127.0.0.1:0", server.Addr)

	req := httptest.NewRequest(http.MethodPost, "/log", strings.NewReader(`{"ok": true}`))
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "success", "message": "Body logged successfully", "received_data": {"ok": true}}`, rec.Body.String())
	assert.Len(t, hook.AllEntries(), 2)
}
