package fio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignedBlock(t *testing.T) {
	block := AlignedBlock(BlockSize * 2)
	assert.Equal(t, BlockSize*2, len(block))
}

func TestDirectIO_WriteRead(t *testing.T) {
	dir, _ := os.MkdirTemp("", "diskbench-directio")
	defer os.RemoveAll(dir)
	path := dir + "/direct.bin"

	w, err := NewDirectIOManager(path, WriteMode)
	if err != nil {
		// tmpfs 等文件系统不支持 O_DIRECT
		t.Skipf("direct io not supported here: %v", err)
	}
	block := AlignedBlock(BlockSize)
	for i := range block {
		block[i] = byte(i)
	}
	n, err := w.Write(block)
	assert.Nil(t, err)
	assert.Equal(t, BlockSize, n)
	assert.Nil(t, w.Close())

	r, err := NewDirectIOManager(path, ReadMode)
	assert.Nil(t, err)
	defer r.Close()
	got := AlignedBlock(BlockSize)
	n, err = r.Read(got, 0)
	assert.Nil(t, err)
	assert.Equal(t, BlockSize, n)
	assert.Equal(t, block, got)
}
