package consts

const (
	ApplicationName    = "Pic Share Server"
	ApplicationVersion = "1.0.0"
)

const (
	// GalleryPageSize 画廊每页固定条数
	GalleryPageSize = 12

	// RecentImageCount 首页展示的最新图片数量
	RecentImageCount = 10
)

const (
	// MaxTitleLength 图片标题最大长度
	MaxTitleLength = 100

	// MaxDescriptionLength 图片描述最大长度
	MaxDescriptionLength = 5000

	// MaxAboutLength 用户简介最大长度
	MaxAboutLength = 5000

	// MinUsernameLength 用户名最小长度
	MinUsernameLength = 3

	// MaxUsernameLength 用户名最大长度
	MaxUsernameLength = 80
)

// AllowedImageFormats 允许上传的图片格式白名单。
// 使用内容嗅探得到的格式做匹配，绝不信任客户端扩展名。
var AllowedImageFormats = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"tif":  true,
	"svg":  true,
}

const (
	// SessionUserKey 会话中保存的用户 ID 键名
	SessionUserKey = "user_id"
)
