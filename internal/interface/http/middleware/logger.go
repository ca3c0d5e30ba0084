package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey Context中请求ID的键名
const RequestIDKey = "request_id"

// slowRequestThreshold 慢请求告警阈值
const slowRequestThreshold = 3 * time.Second

// RequestLogger 请求日志中间件
// 设计说明：
// 1. 为每个请求生成唯一ID,写入响应头X-Request-ID便于排查
// 2. 记录方法、路径、状态码、耗时
// 3. 耗时超过阈值的请求单独告警
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 优先沿用调用方传入的请求ID,支持跨服务链路追踪
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[HTTP] %s | %3d | %13v | %-7s %s",
			requestID, status, latency, method, path)

		if latency > slowRequestThreshold {
			log.Printf("[SLOW] %s | 耗时%v超过阈值 | %-7s %s",
				requestID, latency, method, path)
		}
	}
}

// GetRequestID 从Context获取当前请求ID
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
