package benchmark

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"diskbench"
	"diskbench/fio"
)

var dir string

func init() {
	// 初始化用于基准测试的目录
	dir, _ = os.MkdirTemp("", "diskbench-benchmark")
}

func benchmarkRun(b *testing.B, ioType fio.FileIOType, chunkSize int) {
	opts := diskbench.DefaultOptions
	opts.FilePath = filepath.Join(dir, "bench.bin")
	opts.TotalSize = 16 * diskbench.MB
	opts.ChunkSize = chunkSize
	opts.IOType = ioType
	opts.Stdout = io.Discard
	opts.Stderr = io.Discard

	b.SetBytes(opts.TotalSize * 2)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		res, err := diskbench.Run(opts)
		assert.Nil(b, err)
		b.ReportMetric(res.WriteThroughput, "write-MB/s")
		b.ReportMetric(res.ReadThroughput, "read-MB/s")
	}
}

func Benchmark_Run4K(b *testing.B) {
	benchmarkRun(b, fio.StandardFIO, 4*diskbench.KB)
}

func Benchmark_Run64K(b *testing.B) {
	benchmarkRun(b, fio.StandardFIO, 64*diskbench.KB)
}

func Benchmark_RunMMap(b *testing.B) {
	benchmarkRun(b, fio.MemoryMap, 64*diskbench.KB)
}
