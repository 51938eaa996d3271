package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pic-share-server/internal/config"
	"pic-share-server/internal/middleware"
	"pic-share-server/internal/repository"
	"pic-share-server/internal/service"
	"pic-share-server/internal/testutils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

type testApp struct {
	engine    *gin.Engine
	service   *service.AppService
	uploadDir string
}

// setupTestApp 构建带会话中间件与完整路由的测试应用。
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewImageRepository(gdb),
	)
	uploadDir := t.TempDir()
	uploadCfg := config.UploadConfig{Path: uploadDir, URLPrefix: "/imgs/", MaxSizeMB: 32}
	svc := service.NewAppService(repos, uploadCfg)
	h := NewHandler(svc)

	r := gin.New()
	store := cookie.NewStore([]byte("test_secret"))
	r.Use(sessions.Sessions("pic_share_session", store))

	r.GET("/", h.Index)
	r.GET("/gallery", h.Gallery)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)
	r.GET("/user/:id", h.GetProfile)
	r.POST("/user/:id", middleware.SessionAuth(), h.UpdateAbout)
	upload := r.Group("/upload", middleware.SessionAuth(), middleware.UploadBodyLimitMiddleware(uploadCfg))
	upload.GET("", h.UploadPage)
	upload.POST("", h.Upload)
	r.GET("/images/:filename", h.ShowImage)
	r.GET("/download/:filename", h.Download)

	return &testApp{engine: r, service: svc, uploadDir: uploadDir}
}

func (app *testApp) doJSON(t *testing.T, method, path, sessionCookie string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("解析响应失败: %v (body: %s)", err, w.Body.String())
	}
	return out
}

// registerAndLogin 注册并登录，返回会话 Cookie 与用户 ID。
func registerAndLogin(t *testing.T, app *testApp, username string) (string, string) {
	t.Helper()

	creds := map[string]string{"username": username, "password": "Passw0rd!"}
	if w := app.doJSON(t, http.MethodPost, "/register", "", creds); w.Code != http.StatusOK {
		t.Fatalf("注册失败: %d %s", w.Code, w.Body.String())
	}

	w := app.doJSON(t, http.MethodPost, "/login", "", creds)
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}

	var cookieHeader string
	for _, sc := range w.Result().Cookies() {
		if sc.Name == "pic_share_session" {
			cookieHeader = sc.Name + "=" + sc.Value
		}
	}
	if cookieHeader == "" {
		t.Fatal("登录响应未携带会话 Cookie")
	}

	userID, _ := decodeBody(t, w)["user_id"].(string)
	if userID == "" {
		t.Fatal("登录响应缺少 user_id")
	}
	return cookieHeader, userID
}

// uploadImage 以 multipart 表单上传一张 PNG，返回响应。
func uploadImage(t *testing.T, app *testApp, sessionCookie, title string) *httptest.ResponseRecorder {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	pngBuf := &bytes.Buffer{}
	if err := png.Encode(pngBuf, img); err != nil {
		t.Fatalf("编码 PNG 失败: %v", err)
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("title", title); err != nil {
		t.Fatalf("写入表单失败: %v", err)
	}
	part, err := mw.CreateFormFile("image", "upload.png")
	if err != nil {
		t.Fatalf("构造表单失败: %v", err)
	}
	if _, err := part.Write(pngBuf.Bytes()); err != nil {
		t.Fatalf("写入文件失败: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

func mustContain(t *testing.T, w *httptest.ResponseRecorder, substr string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), substr) {
		t.Errorf("响应应包含 %q, body: %s", substr, w.Body.String())
	}
}
