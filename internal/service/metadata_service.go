package service

import (
	"errors"
	"image"
	"image/gif"
	"log"
	"os"
	"pic-share-server/internal/common"
	"pic-share-server/internal/utils"

	"github.com/rwcarlsen/goexif/exif"
	exiftiff "github.com/rwcarlsen/goexif/tiff"

	// 注册 DecodeConfig 所需的解码器
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

type ImageMetadata struct {
	Format     string            `json:"format"`
	Size       [2]int            `json:"size"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	IsAnimated bool              `json:"is_animated"`
	FrameCount int               `json:"n_frames"`
	Tags       map[string]string `json:"tags"`
}

// tagCollector 把 EXIF 字段收集为「可读名称 → 值」的映射。
type tagCollector struct {
	tags map[string]string
}

func (c tagCollector) Walk(name exif.FieldName, tag *exiftiff.Tag) error {
	c.tags[string(name)] = tag.String()
	return nil
}

// Extract 读取存储中的图片并提取展示元数据。
// 对同一文件重复调用结果一致；内容损坏返回 unreadable 错误而非崩溃。
func (s *MetadataService) Extract(filename, format string) (*ImageMetadata, error) {
	uploadRoot := s.uploadCfg.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}

	path, err := utils.SecureJoin(uploadRoot, filename)
	if err != nil {
		log.Printf("SecureJoin error: %v\n", err)
		return nil, common.NewNotFoundError("图片不存在")
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.NewNotFoundError("图片不存在")
		}
		log.Printf("Open image error: %v\n", err)
		return nil, common.NewInternalError("读取图片失败")
	}
	defer func() { _ = f.Close() }()

	meta := &ImageMetadata{
		Format: format,
		Tags:   map[string]string{},
	}

	switch format {
	case "svg":
		// 矢量图没有固定像素尺寸，也不携带 EXIF
		return meta, nil
	case "gif":
		decoded, err := gif.DecodeAll(f)
		if err != nil {
			return nil, common.NewUnreadableError("图片内容损坏，无法解析")
		}
		meta.Width = decoded.Config.Width
		meta.Height = decoded.Config.Height
		meta.Size = [2]int{decoded.Config.Width, decoded.Config.Height}
		meta.FrameCount = len(decoded.Image)
		meta.IsAnimated = len(decoded.Image) > 1
		return meta, nil
	default:
		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			return nil, common.NewUnreadableError("图片内容损坏，无法解析")
		}
		meta.Width = cfg.Width
		meta.Height = cfg.Height
		meta.Size = [2]int{cfg.Width, cfg.Height}
		meta.FrameCount = 1

		// EXIF 缺失不算错误，返回空标签集即可
		if _, err := f.Seek(0, 0); err == nil {
			if x, exifErr := exif.Decode(f); exifErr == nil {
				_ = x.Walk(tagCollector{tags: meta.Tags})
			}
		}
		return meta, nil
	}
}
