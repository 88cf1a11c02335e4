package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRequestID はリクエストIDミドルウェアを検証する。
func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("ヘッダー未指定の場合は新規UUIDが生成されること", func(t *testing.T) {
		t.Parallel()

		var captured string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			captured = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if captured == "" {
			t.Fatal("リクエストIDが生成されていない")
		}
		if _, err := uuid.Parse(captured); err != nil {
			t.Errorf("リクエストIDがUUID形式ではない: %q", captured)
		}
		if got := w.Header().Get("X-Request-ID"); got != captured {
			t.Errorf("レスポンスヘッダーのX-Request-ID = %q, want %q", got, captured)
		}
	})

	t.Run("ヘッダー指定がある場合はそのIDが引き継がれること", func(t *testing.T) {
		t.Parallel()

		var captured string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			captured = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "caller-supplied-id")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if captured != "caller-supplied-id" {
			t.Errorf("リクエストID = %q, want %q", captured, "caller-supplied-id")
		}
		if got := w.Header().Get("X-Request-ID"); got != "caller-supplied-id" {
			t.Errorf("レスポンスヘッダーのX-Request-ID = %q, want %q", got, "caller-supplied-id")
		}
	})

	t.Run("ミドルウェア未適用の場合は空文字列が返ること", func(t *testing.T) {
		t.Parallel()

		var captured string
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			captured = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if captured != "" {
			t.Errorf("リクエストID = %q, want 空文字列", captured)
		}
	})
}
