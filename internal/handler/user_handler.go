package handler

import (
	"net/http"
	"pic-share-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	user, imageCount, err := h.service.User.GetProfile(c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户资料失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"image_count": imageCount,
	})
}

// UpdateAbout 更新用户简介，仅允许本人操作。
func (h *Handler) UpdateAbout(c *gin.Context) {
	actorID, _ := c.Get("user_id")
	uid, ok := actorID.(string)
	if !ok || uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	var req struct {
		About string `json:"about"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.service.User.UpdateAbout(c.Param("id"), uid, req.About); err != nil {
		httpx.WriteServiceError(c, err, "更新简介失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "简介已更新"})
}
