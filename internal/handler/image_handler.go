package handler

import (
	"net/http"
	"pic-share-server/internal/common/httpx"
	"pic-share-server/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadPage 返回上传表单所需的字段说明。
func (h *Handler) UploadPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "请以 multipart 表单提交 title、description 与 image 文件",
	})
}

func (h *Handler) Upload(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}
	uid, ok := userID.(string)
	if !ok || uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	// 会话里的 ID 必须对应存在的用户，再触碰文件系统
	user, err := h.service.User.GetByID(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请上传图片文件"})
		return
	}

	imageRecord, url, err := h.service.Image.ProcessUpload(user, service.UploadForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		File:        file,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "上传成功",
		"id":       imageRecord.ID,
		"filename": imageRecord.Filename,
		"url":      url,
	})
}

// ShowImage 返回图片记录与提取出的元数据。
func (h *Handler) ShowImage(c *gin.Context) {
	image, err := h.service.Image.GetByFilename(c.Param("filename"))
	if err != nil {
		httpx.WriteServiceError(c, err, "查询图片失败")
		return
	}

	metadata, err := h.service.Metadata.Extract(image.Filename, image.Format)
	if err != nil {
		httpx.WriteServiceError(c, err, "解析图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image":    image,
		"metadata": metadata,
	})
}

// Download 以附件方式返回原始文件，下载名取自图片标题。
func (h *Handler) Download(c *gin.Context) {
	image, err := h.service.Image.GetByFilename(c.Param("filename"))
	if err != nil {
		httpx.WriteServiceError(c, err, "查询图片失败")
		return
	}

	path, err := h.service.Image.DiskPath(image.Filename)
	if err != nil {
		httpx.WriteServiceError(c, err, "查询图片失败")
		return
	}

	c.FileAttachment(path, image.Title+"."+image.Format)
}
