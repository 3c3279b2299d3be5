//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端（无键盘）方式运行
// 桌面端返回 false，设置 THUNDER_MOBILE_EMULATE=1 可在本地模拟移动端
func IsMobile() bool {
	return os.Getenv("THUNDER_MOBILE_EMULATE") == "1"
}
