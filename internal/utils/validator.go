package utils

import (
	"fmt"
	"pic-share-server/internal/consts"
	"regexp"
	"unicode/utf8"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	length := utf8.RuneCountInString(username)
	if length < consts.MinUsernameLength || length > consts.MaxUsernameLength {
		return false, fmt.Sprintf("用户名长度必须在 %d-%d 个字符之间", consts.MinUsernameLength, consts.MaxUsernameLength)
	}

	// 允许英文大小写、数字以及 '.'、'_'
	if !usernamePattern.MatchString(username) {
		return false, "用户名只能包含英文大小写、数字和 '.'、'_'"
	}

	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "密码最少8位"
	}

	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9[:punct:]]+$`, password); !matched {
		return false, "密码只能包含英文大小写、数字和符号"
	}

	return true, ""
}

// ValidateImageFields 校验上传表单的标题与描述。
func ValidateImageFields(title, description string) (bool, string) {
	if title == "" {
		return false, "请填写图片标题"
	}
	if utf8.RuneCountInString(title) > consts.MaxTitleLength {
		return false, fmt.Sprintf("标题不能超过 %d 个字符", consts.MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > consts.MaxDescriptionLength {
		return false, fmt.Sprintf("描述不能超过 %d 个字符", consts.MaxDescriptionLength)
	}
	return true, ""
}

// ValidateAbout 校验用户简介长度。
func ValidateAbout(about string) (bool, string) {
	if utf8.RuneCountInString(about) > consts.MaxAboutLength {
		return false, fmt.Sprintf("简介不能超过 %d 个字符", consts.MaxAboutLength)
	}
	return true, ""
}
