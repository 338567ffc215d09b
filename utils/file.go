package utils

import (
	"os"

	"golang.org/x/sys/unix"
)

// AvailableDiskSize 获取 dirPath 所在文件系统的可用空间大小，字节为单位
func AvailableDiskSize(dirPath string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(dirPath, &stat); err != nil {
		return 0, err
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

// FileSize 获取文件大小, 文件不存在时返回错误
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
