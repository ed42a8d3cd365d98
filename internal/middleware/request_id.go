package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 요청마다 고유 ID를 부여, 응답 헤더와 로그 연동용
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
