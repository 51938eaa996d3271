package repository

import (
	"pic-share-server/internal/model"
	"time"
)

// GallerySortKeys 画廊排序令牌到实际排序表达式的静态映射。
// 排序字段绝不直接取自用户输入，未知令牌在服务层被拒绝。
var GallerySortKeys = map[string]string{
	"id":     "images.id",
	"date":   "images.created_at",
	"title":  "lower(images.title)",
	"author": "lower(images.author)",
}

type GalleryListParams struct {
	StartDate time.Time
	EndDate   time.Time
	Author    string // 大小写不敏感的子串过滤
	Title     string // 大小写不敏感的子串过滤
	SortKey   string // GallerySortKeys 的键，空值等同 "id"
	Desc      bool
	Offset    int
	Limit     int
}

type ImageStore interface {
	Create(image *model.Image) error
	FindByFilename(filename string) (*model.Image, error)
	ListRecent(limit int) ([]model.Image, error)
	ListGallery(params GalleryListParams) ([]model.Image, int64, error)
	CountByAuthorID(authorID string) (int64, error)
}
