package middleware

import (
	"pic-share-server/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为图片静态资源添加 Cache-Control 头
func StaticCacheMiddleware(uploadCfg config.UploadConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uploadCfg.CacheCtl != "" {
			c.Header("Cache-Control", uploadCfg.CacheCtl)
		}
		c.Next()
	}
}
