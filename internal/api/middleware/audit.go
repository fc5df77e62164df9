package middleware

import (
	"Parchment/internal/pkg/consts"
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// auditBodyLimit 请求与响应体记录的最大字节数
const auditBodyLimit = 16384

type responseBodyWriter struct {
	gin.ResponseWriter
	body      *bytes.Buffer
	truncated bool
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if !r.truncated && r.body.Len()+len(b) <= auditBodyLimit {
		r.body.Write(b)
	} else {
		r.truncated = true
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// multipart 上传只记录元信息
		var reqBody []byte
		if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("actor", c.GetHeader(consts.AdminUserHeader)),
			log.String("req_body", auditBody(reqBody)),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		// 超长响应无法完整解析脱敏，不记录内容
		resBody := "[truncated]"
		if !w.truncated {
			resBody = auditBody(w.body.Bytes())
		}
		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", resBody),
		)
	}
}

// secretFields 请求与响应体中需要脱敏的字段，任意嵌套层级
var secretFields = map[string]struct{}{"password": {}, "api_key": {}}

// auditBody 脱敏并截断请求或响应体，非 JSON 内容原样截断
func auditBody(b []byte) string {
	var v any
	if err := json.Unmarshal(b, &v); err == nil && redact(v) {
		if out, err := json.Marshal(v); err == nil {
			b = out
		}
	}
	if len(b) > auditBodyLimit {
		return string(b[:auditBodyLimit]) + "...[truncated]"
	}
	return string(b)
}

// redact 原地替换敏感字段的值，返回是否有替换
func redact(v any) bool {
	redacted := false
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			if _, ok := secretFields[k]; ok {
				node[k] = "******"
				redacted = true
				continue
			}
			if redact(child) {
				redacted = true
			}
		}
	case []any:
		for _, child := range node {
			if redact(child) {
				redacted = true
			}
		}
	}
	return redacted
}
