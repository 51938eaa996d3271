package service

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pic-share-server/internal/common"
	"pic-share-server/internal/config"
)

func setupMetadata(t *testing.T) (*MetadataService, string) {
	t.Helper()
	uploadDir := t.TempDir()
	return NewMetadataService(config.UploadConfig{Path: uploadDir}), uploadDir
}

func writeBlob(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}
}

// 测试内容：验证 PNG 的尺寸提取、单帧标记与空 EXIF 标签集。
func TestExtractPNG(t *testing.T) {
	svc, dir := setupMetadata(t)
	writeBlob(t, dir, "a.png", pngBytes(t, 7, 5))

	meta, err := svc.Extract("a.png", "png")
	if err != nil {
		t.Fatalf("提取失败: %v", err)
	}
	if meta.Width != 7 || meta.Height != 5 || meta.Size != [2]int{7, 5} {
		t.Errorf("尺寸不符: %+v", meta)
	}
	if meta.IsAnimated || meta.FrameCount != 1 {
		t.Errorf("PNG 应为单帧静态图: %+v", meta)
	}
	if len(meta.Tags) != 0 {
		t.Errorf("无 EXIF 时标签集应为空: %v", meta.Tags)
	}
}

// 测试内容：验证多帧 GIF 的帧数统计与动画标记。
func TestExtractAnimatedGIF(t *testing.T) {
	svc, dir := setupMetadata(t)
	writeBlob(t, dir, "anim.gif", gifBytes(t, 3))
	writeBlob(t, dir, "still.gif", gifBytes(t, 1))

	meta, err := svc.Extract("anim.gif", "gif")
	if err != nil {
		t.Fatalf("提取失败: %v", err)
	}
	if !meta.IsAnimated || meta.FrameCount != 3 {
		t.Errorf("多帧 GIF 元数据不符: %+v", meta)
	}
	if meta.Width != 4 || meta.Height != 4 {
		t.Errorf("GIF 尺寸不符: %+v", meta)
	}

	meta, err = svc.Extract("still.gif", "gif")
	if err != nil {
		t.Fatalf("提取失败: %v", err)
	}
	if meta.IsAnimated || meta.FrameCount != 1 {
		t.Errorf("单帧 GIF 不应标记为动画: %+v", meta)
	}
}

// 测试内容：验证 SVG 只报告格式，不报告像素尺寸与标签。
func TestExtractSVG(t *testing.T) {
	svc, dir := setupMetadata(t)
	writeBlob(t, dir, "v.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))

	meta, err := svc.Extract("v.svg", "svg")
	if err != nil {
		t.Fatalf("提取失败: %v", err)
	}
	if meta.Format != "svg" || meta.Width != 0 || meta.Height != 0 || len(meta.Tags) != 0 {
		t.Errorf("SVG 元数据不符: %+v", meta)
	}
}

// 测试内容：验证重复提取同一文件结果一致（幂等）。
func TestExtractIdempotent(t *testing.T) {
	svc, dir := setupMetadata(t)
	writeBlob(t, dir, "a.png", pngBytes(t, 3, 3))

	first, err := svc.Extract("a.png", "png")
	if err != nil {
		t.Fatalf("提取失败: %v", err)
	}
	second, err := svc.Extract("a.png", "png")
	if err != nil {
		t.Fatalf("再次提取失败: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("重复提取结果不一致: %+v != %+v", first, second)
	}
}

// 测试内容：验证损坏内容返回 unreadable、文件缺失返回 not_found、越界文件名被拒绝。
func TestExtractFailures(t *testing.T) {
	svc, dir := setupMetadata(t)
	writeBlob(t, dir, "broken.png", []byte("definitely not a png"))

	_, err := svc.Extract("broken.png", "png")
	if serviceErr, ok := common.AsServiceError(err); !ok || serviceErr.Code != common.ErrorCodeUnreadable {
		t.Errorf("损坏文件应返回 unreadable, got %v", err)
	}

	writeBlob(t, dir, "broken.gif", []byte("GIF89a truncated"))
	_, err = svc.Extract("broken.gif", "gif")
	if serviceErr, ok := common.AsServiceError(err); !ok || serviceErr.Code != common.ErrorCodeUnreadable {
		t.Errorf("损坏 GIF 应返回 unreadable, got %v", err)
	}

	_, err = svc.Extract("missing.png", "png")
	if serviceErr, ok := common.AsServiceError(err); !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Errorf("缺失文件应返回 not_found, got %v", err)
	}

	_, err = svc.Extract("../outside.png", "png")
	if serviceErr, ok := common.AsServiceError(err); !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Errorf("越界文件名应返回 not_found, got %v", err)
	}
}
