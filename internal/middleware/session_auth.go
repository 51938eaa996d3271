package middleware

import (
	"net/http"
	"pic-share-server/internal/consts"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionAuth 要求请求携带已登录的会话。
// 会话中只保存不透明的用户 ID，校验通过后写入请求上下文。
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		value := session.Get(consts.SessionUserKey)

		uid, ok := value.(string)
		if !ok || uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			c.Abort()
			return
		}

		c.Set("user_id", uid)
		c.Next()
	}
}

// CurrentUserID 读取会话中的用户 ID，未登录返回空串。
func CurrentUserID(c *gin.Context) string {
	session := sessions.Default(c)
	if uid, ok := session.Get(consts.SessionUserKey).(string); ok {
		return uid
	}
	return ""
}
