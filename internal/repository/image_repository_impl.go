package repository

import (
	"pic-share-server/internal/model"
	"strings"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByFilename(filename string) (*model.Image, error) {
	var image model.Image
	if err := r.db.Where("filename = ?", filename).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ListRecent(limit int) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Order("created_at desc").Limit(limit).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) ListGallery(params GalleryListParams) ([]model.Image, int64, error) {
	var images []model.Image
	var total int64

	query := r.db.Model(&model.Image{}).
		Where("images.created_at >= ?", params.StartDate).
		Where("images.created_at <= ?", params.EndDate)

	if params.Author != "" {
		query = query.Where("lower(images.author) LIKE ?", "%"+strings.ToLower(params.Author)+"%")
	}
	if params.Title != "" {
		query = query.Where("lower(images.title) LIKE ?", "%"+strings.ToLower(params.Title)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortKey := params.SortKey
	if sortKey == "" {
		sortKey = "id"
	}
	orderExpr, ok := GallerySortKeys[sortKey]
	if !ok {
		// 服务层已做白名单校验，这里兜底回退到主键
		orderExpr = GallerySortKeys["id"]
	}
	if params.Desc {
		orderExpr += " desc"
	} else {
		orderExpr += " asc"
	}

	if err := query.Order(orderExpr).Offset(params.Offset).Limit(params.Limit).Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (r *ImageRepository) CountByAuthorID(authorID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
