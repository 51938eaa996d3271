package handler

import (
	"net/http"
	"pic-share-server/internal/common/httpx"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// LoginPage 已登录用户访问登录页时直接回首页。
func (h *Handler) LoginPage(c *gin.Context) {
	if middleware.CurrentUserID(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "请以 POST 提交 username 与 password 登录"})
}

func (h *Handler) Login(c *gin.Context) {
	if middleware.CurrentUserID(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	user, err := h.service.Auth.LoginUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	session := sessions.Default(c)
	session.Set(consts.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登录失败，请稍后重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"user_id": user.ID,
	})
}

func (h *Handler) RegisterPage(c *gin.Context) {
	if middleware.CurrentUserID(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "请以 POST 提交 username 与 password 注册"})
}

func (h *Handler) Register(c *gin.Context) {
	if middleware.CurrentUserID(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.Auth.RegisterUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "注册成功，请登录",
		"user_id": user.ID,
	})
}

// Logout 清除会话，GET 与 POST 行为一致。
func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(consts.SessionUserKey)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "退出失败，请稍后重试"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已退出登录"})
}
