package middleware

import (
	"bytes"
	log "log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"Parchment/internal/pkg/consts"
	"Parchment/internal/pkg/logger"
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceAndActorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware(), ActorMiddleware())

	var traceID, actor string
	r.GET("/x", func(c *gin.Context) {
		traceID = logger.TraceID(c.Request.Context())
		actor = service.ActorFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceHeader, "abc-123")
	req.Header.Set(consts.AdminUserHeader, "  root ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", traceID)
	assert.Equal(t, "abc-123", w.Header().Get(TraceHeader))
	assert.Equal(t, "root", actor)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Len(t, traceID, 36)
	assert.Equal(t, traceID, w.Header().Get(TraceHeader))
	assert.Empty(t, actor)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://admin.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://admin.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuditBody(t *testing.T) {
	assert.JSONEq(t, `{"username":"alice","password":"******"}`, auditBody([]byte(`{"username":"alice","password":"hunter22"}`)))
	assert.Equal(t, `{"title":"x"}`, auditBody([]byte(`{"title":"x"}`)))
	assert.Equal(t, "not json", auditBody([]byte("not json")))
	assert.JSONEq(t,
		`{"code":200,"data":[{"service_name":"crm","api_key":"******"},{"nested":{"password":"******"}}]}`,
		auditBody([]byte(`{"code":200,"data":[{"service_name":"crm","api_key":"k1"},{"nested":{"password":"p"}}]}`)),
	)
}

func TestAuditMiddleware_RedactsResponse(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(log.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { log.SetDefault(prev) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	r.POST("/api/integrations", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"code":200,"data":{"id":1,"api_key":"sk-live-SECRET"}}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/integrations", strings.NewReader(`{"api_key":"sk-live-SECRET"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "sk-live-SECRET")
	assert.NotContains(t, buf.String(), "sk-live-SECRET")
	assert.Contains(t, buf.String(), "Send Response")
}

func TestAuditMiddleware_OversizedResponseOmitted(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(log.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { log.SetDefault(prev) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	body := `{"api_key":"sk-live-SECRET","pad":"` + strings.Repeat("x", auditBodyLimit) + `"}`
	r.GET("/big", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(body))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/big", nil))

	assert.Len(t, w.Body.String(), len(body))
	assert.NotContains(t, buf.String(), "sk-live-SECRET")
	assert.Contains(t, buf.String(), `"res_body":"[truncated]"`)
}

func TestActorMiddleware_TruncatesByRune(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ActorMiddleware())

	var actor string
	r.GET("/x", func(c *gin.Context) {
		actor = service.ActorFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(consts.AdminUserHeader, "a"+strings.Repeat("编", maxActorLength))
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, utf8.ValidString(actor))
	assert.Equal(t, maxActorLength, utf8.RuneCountInString(actor))
}
