package fio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMMap_Read(t *testing.T) {
	path := filepath.Join(os.TempDir(), "diskbench-mmap-0001.bin")
	defer destroyFile(path)

	// 文件为空
	assert.Nil(t, os.WriteFile(path, nil, DataFilePerm))
	mmapIO, err := NewMMapIOManager(path)
	assert.Nil(t, err)
	b1 := make([]byte, 10)
	n1, err := mmapIO.Read(b1, 0)
	assert.Equal(t, 0, n1)
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, mmapIO.Close())

	// 有文件的情况
	assert.Nil(t, os.WriteFile(path, []byte("aabbccdd"), DataFilePerm))
	mmapIO2, err := NewMMapIOManager(path)
	assert.Nil(t, err)
	defer mmapIO2.Close()

	size, err := mmapIO2.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(8), size)

	b2 := make([]byte, 4)
	n2, err := mmapIO2.Read(b2, 4)
	assert.Nil(t, err)
	assert.Equal(t, 4, n2)
	assert.Equal(t, []byte("ccdd"), b2)

	b3 := make([]byte, 4)
	n3, err := mmapIO2.Read(b3, 6)
	assert.Equal(t, 2, n3)
	assert.Equal(t, io.EOF, err)
}

func TestMMap_Write(t *testing.T) {
	path := filepath.Join(os.TempDir(), "diskbench-mmap-0002.bin")
	defer destroyFile(path)
	assert.Nil(t, os.WriteFile(path, []byte("aa"), DataFilePerm))

	mmapIO, err := NewMMapIOManager(path)
	assert.Nil(t, err)
	defer mmapIO.Close()

	n, err := mmapIO.Write([]byte("bb"))
	assert.Equal(t, 0, n)
	assert.Equal(t, ErrReadOnly, err)
	assert.Nil(t, mmapIO.Sync())
}
