package fio

import "github.com/ncw/directio"

// BlockSize 直接 IO 要求的读写单位
const BlockSize = directio.BlockSize

// NewDirectIOManager 使用直接 IO 打开文件, 读写绕过操作系统页缓存
// 读写用的缓冲区必须由 AlignedBlock 分配, 长度为 BlockSize 的整数倍
func NewDirectIOManager(fileName string, mode AccessMode) (*FileIO, error) {
	fd, err := directio.OpenFile(fileName, openFlag(mode), DataFilePerm)
	if err != nil {
		return nil, err
	}
	return &FileIO{fd: fd}, nil
}

// AlignedBlock 分配满足直接 IO 对齐要求的缓冲区
func AlignedBlock(size int) []byte {
	return directio.AlignedBlock(size)
}
