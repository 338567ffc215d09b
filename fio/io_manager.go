package fio

import "errors"

const DataFilePerm = 0644

// ErrReadOnly 只读的 IO 管理器不支持写入
var ErrReadOnly = errors.New("the io manager is read only")

type FileIOType = byte

const (
	// StandardFIO 标准文件 IO
	StandardFIO FileIOType = iota

	// DirectIO 绕过页缓存的直接 IO, 要求缓冲区对齐
	DirectIO

	// MemoryMap 内存文件映射, 只用于读取, 写入仍然走标准文件 IO
	MemoryMap
)

type AccessMode = byte

const (
	// WriteMode 创建文件并清空已有内容, 只写
	WriteMode AccessMode = iota

	// ReadMode 只读打开已有文件
	ReadMode
)

// IOManager 抽象 IO 管理接口, 可以接入不同的 IO 类型, 目前支持标准文件 IO、直接 IO 和 MMap
type IOManager interface {
	// Read 从文件给定位置读取数据
	Read([]byte, int64) (int, error)

	// Write 写入字节数组到文件中
	Write([]byte) (int, error)

	// Sync 内存缓冲区的数据持久化到磁盘中
	Sync() error

	// Close 关闭文件
	Close() error

	// Size 获取到文件大小
	Size() (int64, error)
}

// NewIOManager 初始化 IOManager, 目前支持标准 FileIO、DirectIO 和 MMap(只读)
func NewIOManager(fileName string, ioType FileIOType, mode AccessMode) (IOManager, error) {
	switch ioType {
	case StandardFIO:
		return NewFileIOManager(fileName, mode)
	case DirectIO:
		return NewDirectIOManager(fileName, mode)
	case MemoryMap:
		if mode == WriteMode {
			return NewFileIOManager(fileName, mode)
		}
		return NewMMapIOManager(fileName)
	default:
		panic("unsupported io type")
	}
}

// ValidIOType 判断是否是支持的 IO 类型
func ValidIOType(ioType FileIOType) bool {
	return ioType <= MemoryMap
}

func openFlag(mode AccessMode) int {
	if mode == WriteMode {
		return osWriteFlag
	}
	return osReadFlag
}
