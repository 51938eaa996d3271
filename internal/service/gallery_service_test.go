package service

import (
	"fmt"
	"testing"
	"time"

	"pic-share-server/internal/common"
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

func seedGallery(t *testing.T, svc *AppService, gdb *gorm.DB) {
	t.Helper()

	alice := mustRegister(t, svc, "alice")
	bob := mustRegister(t, svc, "bob")

	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC)
	}
	rows := []model.Image{
		{Filename: "a.png", Format: "png", Author: alice.Username, AuthorID: alice.ID, Title: "Sunset", CreatedAt: day(1)},
		{Filename: "b.png", Format: "png", Author: alice.Username, AuthorID: alice.ID, Title: "sunset2", CreatedAt: day(10)},
		{Filename: "c.png", Format: "png", Author: bob.Username, AuthorID: bob.ID, Title: "Ocean", CreatedAt: day(20)},
	}
	for i := range rows {
		if err := gdb.Create(&rows[i]).Error; err != nil {
			t.Fatalf("造数失败: %v", err)
		}
	}
}

// 测试内容：验证标题过滤不区分大小写且按子串匹配。
func TestListGalleryTitleFilter(t *testing.T) {
	svc, gdb, _ := setupServices(t)
	seedGallery(t, svc, gdb)

	images, total, page, err := svc.Gallery.ListGallery(GalleryQuery{Title: "sun", Sort: "title", Order: "asc"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 || len(images) != 2 || page != 1 {
		t.Fatalf("结果数量不符: total=%d len=%d page=%d", total, len(images), page)
	}
	if images[0].Title != "Sunset" || images[1].Title != "sunset2" {
		t.Errorf("标题升序排序错误: %s, %s", images[0].Title, images[1].Title)
	}
}

// 测试内容：验证作者过滤与日期范围过滤。
func TestListGalleryAuthorAndDate(t *testing.T) {
	svc, gdb, _ := setupServices(t)
	seedGallery(t, svc, gdb)

	images, total, _, err := svc.Gallery.ListGallery(GalleryQuery{Author: "ALICE"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 || len(images) != 2 {
		t.Errorf("作者过滤结果不符: total=%d", total)
	}

	images, total, _, err = svc.Gallery.ListGallery(GalleryQuery{StartDate: "2024-06-05", EndDate: "2024-06-15"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 || images[0].Title != "sunset2" {
		t.Errorf("日期过滤结果不符: total=%d", total)
	}
}

// 测试内容：验证默认排序为 id 降序（最新在前）。
func TestListGalleryDefaultOrder(t *testing.T) {
	svc, gdb, _ := setupServices(t)
	seedGallery(t, svc, gdb)

	images, total, _, err := svc.Gallery.ListGallery(GalleryQuery{})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 3 || len(images) != 3 {
		t.Fatalf("结果数量不符: total=%d", total)
	}
	if images[0].Title != "Ocean" || images[2].Title != "Sunset" {
		t.Errorf("默认降序排序错误: %s ... %s", images[0].Title, images[2].Title)
	}
}

// 测试内容：验证超出末页的页码返回空列表而非错误，总数保持正确。
func TestListGalleryPastTheEnd(t *testing.T) {
	svc, gdb, _ := setupServices(t)
	seedGallery(t, svc, gdb)

	images, total, page, err := svc.Gallery.ListGallery(GalleryQuery{Page: 9999})
	if err != nil {
		t.Fatalf("超末页不应报错: %v", err)
	}
	if len(images) != 0 || total != 3 || page != 9999 {
		t.Errorf("超末页结果不符: len=%d total=%d page=%d", len(images), total, page)
	}
}

// 测试内容：验证非法排序令牌、排序方向与日期格式被拒绝。
func TestListGalleryInvalidParams(t *testing.T) {
	svc, gdb, _ := setupServices(t)
	seedGallery(t, svc, gdb)

	cases := []GalleryQuery{
		{Sort: "password; drop table images"},
		{Sort: "filename"},
		{Order: "sideways"},
		{StartDate: "06/01/2024"},
		{EndDate: "not-a-date"},
	}
	for i, q := range cases {
		_, _, _, err := svc.Gallery.ListGallery(q)
		if serviceErr, ok := common.AsServiceError(err); !ok || serviceErr.Code != common.ErrorCodeValidation {
			t.Errorf("case %d: 应返回 validation, got %v", i, err)
		}
	}
}

// 测试内容：验证首页最新图片最多 10 张且按时间倒序。
func TestListRecent(t *testing.T) {
	svc, gdb, _ := setupServices(t)
	alice := mustRegister(t, svc, "alice")

	for i := 0; i < 12; i++ {
		img := model.Image{
			Filename:  fmt.Sprintf("r%02d.png", i),
			Format:    "png",
			Author:    alice.Username,
			AuthorID:  alice.ID,
			Title:     "图片",
			CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		}
		if err := gdb.Create(&img).Error; err != nil {
			t.Fatalf("造数失败: %v", err)
		}
	}

	images, err := svc.Gallery.ListRecent()
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(images) != 10 {
		t.Fatalf("首页应返回 10 张, got %d", len(images))
	}
	if images[0].CreatedAt.Before(images[9].CreatedAt) {
		t.Error("首页应按时间倒序")
	}
}
