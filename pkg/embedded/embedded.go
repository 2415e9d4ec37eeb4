// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 以 "data/" 开头的路径从嵌入的文件系统读取；其他路径（以及未初始化时）
// 直接读取磁盘，便于测试和用户自定义配置文件。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入的数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// isEmbeddedPath 判断路径是否应从嵌入文件系统读取
func isEmbeddedPath(path string) bool {
	return initialized && strings.HasPrefix(path, "data/")
}

// ReadFile 读取文件内容
// "data/" 路径优先读取嵌入资源，其余路径读取磁盘
func ReadFile(path string) ([]byte, error) {
	normalized := normalize(path)
	if isEmbeddedPath(normalized) {
		data, err := fs.ReadFile(dataFS, normalized)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded file %s: %w", normalized, err)
		}
		return data, nil
	}
	return os.ReadFile(path)
}

// Exists 检查文件是否存在（嵌入资源或磁盘）
func Exists(path string) bool {
	normalized := normalize(path)
	if isEmbeddedPath(normalized) {
		_, err := fs.Stat(dataFS, normalized)
		return err == nil
	}
	_, err := os.Stat(path)
	return err == nil
}

// Glob 匹配文件
// "data/" 模式匹配嵌入资源，其余模式匹配磁盘
func Glob(pattern string) ([]string, error) {
	normalized := normalize(pattern)
	if isEmbeddedPath(normalized) {
		return fs.Glob(dataFS, normalized)
	}
	return filepath.Glob(pattern)
}
