package diskbench

import (
	"io"

	"diskbench/fio"
)

type Options struct {
	// 测试文件路径, 运行结束后删除
	FilePath string

	// 写入的总字节数(名义大小), 吞吐量按这个大小计算
	TotalSize int64

	// 每次读写的字节数
	ChunkSize int

	// 文件 IO 类型
	IOType fio.FileIOType

	// 写入完成后是否在关闭前持久化到磁盘
	SyncWrites bool

	// 写入前是否检查磁盘可用空间
	CheckDiskSpace bool

	// 随机数种子, 为 0 时使用当前时间
	RandSeed int64

	// 结果输出, 为空时使用标准输出
	Stdout io.Writer

	// 错误诊断输出, 为空时使用标准错误输出
	Stderr io.Writer
}

const (
	MB = 1024 * 1024
	KB = 1024
)

var DefaultOptions = Options{
	FilePath:       "benchmark_test_file.bin",
	TotalSize:      1024 * MB,
	ChunkSize:      4 * KB,
	IOType:         fio.StandardFIO,
	SyncWrites:     false,
	CheckDiskSpace: true,
}
