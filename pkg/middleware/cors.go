package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS は任意のオリジンからのクロスオリジンリクエストを許可するGinミドルウェアを返す。
// ゲートウェイは呼び出し元のデプロイ先を限定しないため、全レスポンスに
// ワイルドカードのAccess-Control-Allow-Originを付与する。
// OPTIONSのプリフライトリクエストは204で即座に応答する。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
