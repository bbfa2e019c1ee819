package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/TWRT/taskboard/internal/logging"
)

func TestCORSSetsHeadersOnEveryResponse(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestLoggingAttachesEntryAndLogsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithOutput(&buf, "info", "json")

	var sawEntry bool
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := logging.FromContext(r.Context())
		_, sawEntry = entry.Data["request_id"]
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil))

	assert.True(t, sawEntry)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"method":"DELETE"`)
	assert.Contains(t, buf.String(), `"path":"/api/tasks/1"`)
}

func TestRateLimiterPerClient(t *testing.T) {
	logrus.SetOutput(&bytes.Buffer{})
	rl := NewRateLimiter(0.001, 1)
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"))
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	logrus.SetOutput(&bytes.Buffer{})
	clock := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(0.001, 1)
	rl.now = func() time.Time { return clock }
	rl.lastSweep = clock
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		assert.Equal(t, http.StatusOK, call(addr))
	}
	assert.Equal(t, 3, rl.Len())

	clock = clock.Add(DefaultLimiterIdleTTL / 2)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:2"))

	// 10.0.0.2 and .3 have been idle for a full TTL; .1 was seen half a TTL ago.
	clock = clock.Add(DefaultLimiterIdleTTL / 2)
	assert.Equal(t, http.StatusOK, call("10.0.0.4:1"))
	assert.Equal(t, 2, rl.Len())

	clock = clock.Add(DefaultLimiterIdleTTL)
	rl.Cleanup()
	assert.Equal(t, 0, rl.Len())
}
