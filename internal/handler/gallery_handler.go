package handler

import (
	"net/http"
	"pic-share-server/internal/common/httpx"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Index 首页展示最新上传的图片。
func (h *Handler) Index(c *gin.Context) {
	images, err := h.service.Gallery.ListRecent()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// Gallery 按查询参数过滤、排序、分页展示图片目录。
func (h *Handler) Gallery(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	images, total, page, err := h.service.Gallery.ListGallery(service.GalleryQuery{
		Page:      page,
		Sort:      c.Query("sort"),
		Order:     c.Query("sort-order"),
		StartDate: c.Query("start-date"),
		EndDate:   c.Query("end-date"),
		Author:    c.Query("author"),
		Title:     c.Query("title"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"list":      images,
		"total":     total,
		"page":      page,
		"page_size": consts.GalleryPageSize,
	})
}
