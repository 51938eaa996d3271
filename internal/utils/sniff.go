package utils

import (
	"bytes"

	"github.com/h2non/filetype"
)

// svg 是文本格式，魔数库无法识别，单独做前缀探测
var (
	xmlDeclPrefix = []byte("<?xml")
	svgTagPrefix  = []byte("<svg")
)

// DetectImageFormat 通过内容嗅探判断图片的真实格式，与文件名和扩展名无关。
// 识别失败（包括空流和截断流）时返回空串，永不报错。
func DetectImageFormat(head []byte) string {
	if len(head) == 0 {
		return ""
	}

	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		return kind.Extension
	}

	if sniffSVG(head) {
		return "svg"
	}

	return ""
}

func sniffSVG(head []byte) bool {
	trimmed := bytes.TrimLeft(head, " \t\r\n\xef\xbb\xbf")
	if bytes.HasPrefix(trimmed, svgTagPrefix) {
		return true
	}
	// 带 XML 声明的 svg：声明之后必须出现 <svg 标签
	if bytes.HasPrefix(trimmed, xmlDeclPrefix) && bytes.Contains(trimmed, svgTagPrefix) {
		return true
	}
	return false
}
