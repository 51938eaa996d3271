package service

import (
	"log"
	"pic-share-server/internal/common"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/model"
	repo "pic-share-server/internal/repository"
	"time"
)

// 开区间日期边界，与画廊筛选的缺省语义一致
var (
	galleryMinDate = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	galleryMaxDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

type GalleryQuery struct {
	Page      int
	Sort      string // 排序令牌: id/date/title/author，空值等同 id
	Order     string // asc/desc，空值等同 desc
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Author    string
	Title     string
}

// ListGallery 将不可信的查询参数转换为受限的分页查询。
// 排序令牌只接受白名单内的取值，超出末页的页码返回空列表而非错误。
func (s *GalleryService) ListGallery(q GalleryQuery) ([]model.Image, int64, int, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = "id"
	}
	if _, ok := repo.GallerySortKeys[sortKey]; !ok {
		return nil, 0, page, common.NewValidationError("不支持的排序字段")
	}

	desc := true
	switch q.Order {
	case "", "desc":
	case "asc":
		desc = false
	default:
		return nil, 0, page, common.NewValidationError("排序方向只能是 asc 或 desc")
	}

	startDate := galleryMinDate
	if q.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return nil, 0, page, common.NewValidationError("起始日期格式错误，应为 YYYY-MM-DD")
		}
		startDate = parsed
	}

	endDate := galleryMaxDate
	if q.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return nil, 0, page, common.NewValidationError("结束日期格式错误，应为 YYYY-MM-DD")
		}
		endDate = parsed
	}

	images, total, err := s.imageStore.ListGallery(repo.GalleryListParams{
		StartDate: startDate,
		EndDate:   endDate,
		Author:    q.Author,
		Title:     q.Title,
		SortKey:   sortKey,
		Desc:      desc,
		Offset:    (page - 1) * consts.GalleryPageSize,
		Limit:     consts.GalleryPageSize,
	})
	if err != nil {
		log.Printf("List gallery error: %v\n", err)
		return nil, 0, page, common.NewInternalError("获取图片列表失败")
	}

	return images, total, page, nil
}

// ListRecent 返回首页展示的最新图片。
func (s *GalleryService) ListRecent() ([]model.Image, error) {
	images, err := s.imageStore.ListRecent(consts.RecentImageCount)
	if err != nil {
		log.Printf("List recent error: %v\n", err)
		return nil, common.NewInternalError("获取图片列表失败")
	}
	return images, nil
}
