package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	r.GET("/boom", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{}) })

	req := httptest.NewRequest(http.MethodGet, "/ok?place=goa", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 2)

	okFields := entries[0].ContextMap()
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok?place=goa", okFields["path"], "query string is part of the logged path")
	assert.EqualValues(t, http.StatusOK, okFields["status"])
	assert.Equal(t, http.MethodGet, okFields["method"])

	boomFields := entries[1].ContextMap()
	assert.Equal(t, zap.ErrorLevel, entries[1].Level, "5xx logs at error level")
	assert.EqualValues(t, http.StatusInternalServerError, boomFields["status"])
}
