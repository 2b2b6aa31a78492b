package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func attrMap(attrs []logger.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = fmt.Sprint(a.Value)
	}
	return m
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/ping", func(c *ginext.Context) {
		id, ok := c.Get("request_id")
		assert.True(t, ok)
		assert.NotEmpty(t, toString(id))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_ReusesCallerHeader(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/ping", func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", w.Header().Get(RequestIDHeader))
}

func TestRequestAttrs_IncludesStashedError(t *testing.T) {
	var attrs map[string]string

	r := ginext.New("test")
	r.Use(RequestID())
	r.Use(func(c *ginext.Context) {
		c.Next()
		attrs = attrMap(requestAttrs(c, 5*time.Millisecond))
	})
	r.POST("/tickets", func(c *ginext.Context) {
		c.Set("error", "capacity exceeded")
		c.JSON(http.StatusConflict, ginext.H{"error": "capacity exceeded"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tickets", nil))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "capacity exceeded", attrs["error"])
	assert.Equal(t, http.MethodPost, attrs["method"])
	assert.Equal(t, "/tickets", attrs["path"])
	assert.Equal(t, "409", attrs["status"])
	assert.NotEmpty(t, attrs["request_id"])
}

func TestRequestAttrs_NoErrorOnSuccess(t *testing.T) {
	var attrs map[string]string

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Next()
		attrs = attrMap(requestAttrs(c, time.Millisecond))
	})
	r.GET("/health", func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, ok := attrs["error"]
	assert.False(t, ok)
	assert.Equal(t, "200", attrs["status"])
}
