package service

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pic-share-server/internal/config"
	"pic-share-server/internal/model"
	"pic-share-server/internal/repository"
	"pic-share-server/internal/testutils"

	"gorm.io/gorm"
)

// setupServices 构建一套依赖内存数据库与临时上传目录的完整服务。
func setupServices(t *testing.T) (*AppService, *gorm.DB, string) {
	t.Helper()

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewImageRepository(gdb),
	)
	uploadDir := t.TempDir()
	svc := NewAppService(repos, config.UploadConfig{
		Path:      uploadDir,
		URLPrefix: "/imgs/",
		MaxSizeMB: 32,
	})
	return svc, gdb, uploadDir
}

func mustRegister(t *testing.T, svc *AppService, username string) *model.User {
	t.Helper()
	user, err := svc.Auth.RegisterUser(username, "Passw0rd!")
	if err != nil {
		t.Fatalf("注册用户 %s 失败: %v", username, err)
	}
	return user
}

// makeFileHeader 用 multipart 编码再解析的方式构造真实的 FileHeader。
func makeFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("构造表单失败: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("写入表单失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("解析表单失败: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("编码 PNG 失败: %v", err)
	}
	return buf.Bytes()
}

func gifBytes(t *testing.T, frames int) []byte {
	t.Helper()

	g := &gif.GIF{}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.White, color.Black})
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10)
	}
	buf := &bytes.Buffer{}
	if err := gif.EncodeAll(buf, g); err != nil {
		t.Fatalf("编码 GIF 失败: %v", err)
	}
	return buf.Bytes()
}
