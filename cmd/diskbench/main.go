package main

import (
	"diskbench"
)

func main() {
	// 打开失败等错误已经输出到标准错误, 进程总是正常退出
	_, _ = diskbench.Run(diskbench.DefaultOptions)
}
