package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader はリクエストIDを伝播するHTTPヘッダー名。
const requestIDHeader = "X-Request-ID"

// contextKeyRequestID はGinコンテキストにリクエストIDを格納するためのキー。
const contextKeyRequestID = "request_id"

// RequestID はリクエストごとに一意のIDを付与するGinミドルウェアを返す。
// 呼び出し元がX-Request-IDヘッダーを指定した場合はそれを引き継ぎ、
// 指定がない場合は新規にUUIDを生成する。IDはレスポンスヘッダーにも設定される。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(contextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID はコンテキストからリクエストIDを取得する。
// リクエストIDが設定されていない場合は空文字列を返す。
func GetRequestID(c *gin.Context) string {
	id, ok := c.Get(contextKeyRequestID)
	if !ok {
		return ""
	}
	s, ok := id.(string)
	if !ok {
		return ""
	}
	return s
}
