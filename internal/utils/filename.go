package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// DeriveFilename 由文件内容与秒级时间戳派生存储文件名。
// 名称不可被上传者控制，同时对不同内容的并发上传免碰撞。
func DeriveFilename(data []byte, now time.Time, format string) string {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte(strconv.FormatInt(now.Unix(), 10)))
	return hex.EncodeToString(h.Sum(nil)) + "." + format
}
