package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"pic-share-server/internal/common"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/model"
	"pic-share-server/internal/utils"
	"time"

	"gorm.io/gorm"
)

type UploadForm struct {
	Title       string
	Description string
	File        *multipart.FileHeader
}

// ProcessUpload 处理图片上传核心流程：
// 字段校验 → 内容嗅探 → 派生文件名 → 落盘 → 入库。
// 入库失败时删除刚写入的文件，避免产生孤儿存储。
func (s *ImageService) ProcessUpload(user *model.User, form UploadForm) (*model.Image, string, error) {
	// 1. 字段校验
	if ok, msg := utils.ValidateImageFields(form.Title, form.Description); !ok {
		return nil, "", common.NewValidationError(msg)
	}
	if form.File == nil {
		return nil, "", common.NewValidationError("请上传图片文件")
	}

	description := form.Description
	if description == "" {
		description = fmt.Sprintf("来自 %s 的分享", user.Username)
	}

	// 2. 内容校验：嗅探真实格式，绝不信任客户端扩展名
	src, err := form.File.Open()
	if err != nil {
		return nil, "", common.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", common.NewInternalError("无法读取上传文件")
	}

	format := utils.DetectImageFormat(data)
	if format == "" {
		return nil, "", common.NewValidationError("无法识别的文件类型")
	}
	if !consts.AllowedImageFormats[format] {
		return nil, "", common.NewValidationError(fmt.Sprintf("不支持的图片格式: %s", format))
	}

	// 3. 落盘：文件名由内容与时间戳派生，防碰撞且不可猜测
	uploadRoot := s.uploadCfg.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}
	if err := os.MkdirAll(uploadRoot, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 无法创建存储目录")
	}

	filename := utils.DeriveFilename(data, time.Now(), format)
	dst, err := utils.SecureJoin(uploadRoot, filename)
	if err != nil {
		log.Printf("SecureJoin error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 非法存储路径")
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		log.Printf("Write file error: %v\n", err)
		return nil, "", common.NewInternalError("文件保存失败")
	}

	// 4. 入库，失败即执行补偿删除
	imageRecord := model.Image{
		Filename:    filename,
		Format:      format,
		Author:      user.Username,
		AuthorID:    user.ID,
		Title:       form.Title,
		Description: description,
	}

	if err := s.imageStore.Create(&imageRecord); err != nil {
		_ = os.Remove(dst) // 回滚文件
		log.Printf("Process upload DB error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 数据库记录失败")
	}

	return &imageRecord, s.uploadCfg.URLPrefix + filename, nil
}

// GetByFilename 按存储文件名查询图片记录。
func (s *ImageService) GetByFilename(filename string) (*model.Image, error) {
	image, err := s.imageStore.FindByFilename(filename)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("图片不存在")
		}
		log.Printf("Find image error: %v\n", err)
		return nil, common.NewInternalError("查询图片失败")
	}
	return image, nil
}

// DiskPath 解析图片在磁盘上的安全绝对路径。
func (s *ImageService) DiskPath(filename string) (string, error) {
	uploadRoot := s.uploadCfg.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}
	path, err := utils.SecureJoin(uploadRoot, filename)
	if err != nil {
		return "", common.NewNotFoundError("图片不存在")
	}
	return path, nil
}
