package middleware

import (
	"fmt"
	"net/http"
	"pic-share-server/internal/config"
	"strings"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通请求体大小，上传路由单独处理
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasSuffix(c.Request.URL.Path, "/upload") {
			c.Next()
			return
		}

		// 普通 JSON 请求 2MB 足够
		maxBytes := int64(2) * 1024 * 1024
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小
func UploadBodyLimitMiddleware(uploadCfg config.UploadConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := uploadCfg.MaxSizeMB
		if maxSizeMB <= 0 {
			// 图片不会那么大，对吧
			maxSizeMB = 32
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
