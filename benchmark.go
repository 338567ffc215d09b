package diskbench

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"

	"diskbench/fio"
	"diskbench/utils"
)

const (
	lockFileSuffix = ".lock"
	separator      = "------------------------"
)

// Result 一次顺序读写测试的结果, 吞吐量按名义大小 TotalSize 计算
type Result struct {
	WriteDuration   time.Duration
	WriteThroughput float64 // MB/s
	ReadDuration    time.Duration
	ReadThroughput  float64 // MB/s

	WriteIterations int   // 写入调用次数
	ReadIterations  int   // 读满缓冲区的次数
	BytesWritten    int64 // 实际写入的字节数
	BytesRead       int64 // 实际读到的字节数
	Checksum        int64 // 所有读满缓冲区的字节按 int8 累加
}

// benchmark 一次运行的状态, 缓冲区只属于这一次运行
type benchmark struct {
	options Options
	buf     []byte
	stdout  io.Writer
	logger  *log.Logger
	result  *Result
}

// Run 按配置执行一次顺序写、顺序读测试, 打印耗时和吞吐量, 成功后删除测试文件
// 打开文件失败时向错误输出打印诊断信息并提前返回, 不会删除文件
func Run(options Options) (*Result, error) {
	bm := newBenchmark(options)

	// 对用户传入的配置项进行校验
	if err := checkOptions(options); err != nil {
		bm.logger.Printf("Error: invalid benchmark options: %v", err)
		return nil, err
	}

	// 判断测试文件是否正在被其他进程使用
	fileLock := flock.New(options.FilePath + lockFileSuffix)
	hold, err := fileLock.TryLock()
	if err != nil {
		bm.logger.Printf("Error: Could not open file for writing: %s", options.FilePath)
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenForWrite, options.FilePath, err)
	}
	if !hold {
		bm.logger.Printf("Error: benchmark file is in use: %s", options.FilePath)
		return nil, ErrBenchmarkIsRunning
	}
	defer func() {
		_ = fileLock.Unlock()
		_ = os.Remove(fileLock.Path())
	}()

	if options.CheckDiskSpace {
		if err := bm.checkDiskSpace(); err != nil {
			bm.logger.Printf("Error: %v", err)
			return nil, err
		}
	}

	bm.prepareBuffer()

	if err := bm.write(); err != nil {
		return nil, err
	}
	if err := bm.read(); err != nil {
		return nil, err
	}

	// 删除测试文件, 忽略错误
	_ = os.Remove(options.FilePath)

	return bm.result, nil
}

func newBenchmark(options Options) *benchmark {
	stdout, stderr := options.Stdout, options.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &benchmark{
		options: options,
		stdout:  stdout,
		logger:  log.New(stderr, "", log.LstdFlags),
		result:  &Result{},
	}
}

// prepareBuffer 分配 chunk 缓冲区并填充随机数据, 直接 IO 需要对齐的缓冲区
func (bm *benchmark) prepareBuffer() {
	if bm.options.IOType == fio.DirectIO {
		bm.buf = fio.AlignedBlock(bm.options.ChunkSize)
	} else {
		bm.buf = make([]byte, bm.options.ChunkSize)
	}
	utils.FillRandom(utils.NewRand(bm.options.RandSeed), bm.buf)

	total, chunk := bm.options.TotalSize, bm.options.ChunkSize
	if total%int64(chunk) != 0 {
		bm.logger.Printf("Warning: total size %s is not a multiple of chunk size %s, %s will be written",
			humanize.IBytes(uint64(total)), humanize.IBytes(uint64(chunk)),
			humanize.IBytes(uint64(utils.RoundUp(total, chunk))))
	}
}

// checkDiskSpace 判断目标目录所在磁盘的空间是否足够写入
// 获取不到磁盘信息时跳过检查, 由打开文件时报错
func (bm *benchmark) checkDiskSpace() error {
	path := bm.options.FilePath
	available, err := utils.AvailableDiskSize(filepath.Dir(path))
	if err != nil {
		return nil
	}
	// 已有的文件会被清空, 它占用的空间也可以使用
	if size, err := utils.FileSize(path); err == nil {
		available += uint64(size)
	}

	need := uint64(utils.RoundUp(bm.options.TotalSize, bm.options.ChunkSize))
	if need > available {
		return fmt.Errorf("%w: need %s, available %s", ErrNoEnoughSpace,
			humanize.IBytes(need), humanize.IBytes(available))
	}
	return nil
}

// write 顺序写阶段, 每次都写入整个 chunk, 直到计数达到 TotalSize
func (bm *benchmark) write() error {
	path, total := bm.options.FilePath, bm.options.TotalSize
	fmt.Fprintln(bm.stdout, separator)
	fmt.Fprintf(bm.stdout, "Benchmarking Disk Write Performance (%d MB, buffer %d KB)...\n",
		total/MB, bm.options.ChunkSize/KB)

	ioManager, err := fio.NewIOManager(path, bm.options.IOType, fio.WriteMode)
	if err != nil {
		bm.logger.Printf("Error: Could not open file for writing: %s", path)
		return fmt.Errorf("%w: %s: %v", ErrOpenForWrite, path, err)
	}

	start := time.Now()
	for written := int64(0); written < total; written += int64(len(bm.buf)) {
		n, err := ioManager.Write(bm.buf)
		bm.result.BytesWritten += int64(n)
		if n < len(bm.buf) {
			err = fmt.Errorf("%w: %d of %d bytes at offset %d: %v", ErrShortWrite, n, len(bm.buf), written, err)
		}
		if err != nil {
			_ = ioManager.Close()
			bm.logger.Printf("Error: Could not write file: %s: %v", path, err)
			return err
		}
		bm.result.WriteIterations++
	}

	if bm.options.SyncWrites {
		if err := ioManager.Sync(); err != nil {
			_ = ioManager.Close()
			bm.logger.Printf("Error: Could not sync file: %s: %v", path, err)
			return err
		}
	}
	if err := ioManager.Close(); err != nil {
		bm.logger.Printf("Error: Could not close file: %s: %v", path, err)
		return err
	}
	elapsed := time.Since(start)

	bm.result.WriteDuration = elapsed
	bm.result.WriteThroughput = utils.Throughput(total, elapsed)
	fmt.Fprintf(bm.stdout, "Write time: %.6g seconds, Speed: %.6g MB/s\n",
		elapsed.Seconds(), bm.result.WriteThroughput)
	return nil
}

// read 顺序读阶段, 读到不满一个 chunk 或者出错时结束
// 读满的缓冲区逐字节累加到校验和, 读出错和读到文件末尾一样处理
func (bm *benchmark) read() error {
	path, total := bm.options.FilePath, bm.options.TotalSize
	fmt.Fprintln(bm.stdout)
	fmt.Fprintf(bm.stdout, "Benchmarking Disk Read Performance (%d MB, buffer %d KB)...\n",
		total/MB, bm.options.ChunkSize/KB)

	ioManager, err := fio.NewIOManager(path, bm.options.IOType, fio.ReadMode)
	if err != nil {
		bm.logger.Printf("Error: Could not open file for reading: %s", path)
		return fmt.Errorf("%w: %s: %v", ErrOpenForRead, path, err)
	}

	start := time.Now()
	var offset int64
	for {
		n, err := ioManager.Read(bm.buf, offset)
		offset += int64(n)
		if n < len(bm.buf) || err != nil {
			if err != nil && !errors.Is(err, io.EOF) {
				bm.logger.Printf("Warning: read stopped at offset %d: %v", offset, err)
			}
			break
		}
		bm.result.Checksum += checksum(bm.buf)
		bm.result.ReadIterations++
	}
	_ = ioManager.Close()
	elapsed := time.Since(start)

	bm.result.BytesRead = offset
	bm.result.ReadDuration = elapsed
	bm.result.ReadThroughput = utils.Throughput(total, elapsed)
	fmt.Fprintf(bm.stdout, "Read time: %.6g seconds, Speed: %.6g MB/s\n",
		elapsed.Seconds(), bm.result.ReadThroughput)
	fmt.Fprintln(bm.stdout, separator)
	fmt.Fprintln(bm.stdout)
	return nil
}

// checksum 按有符号字节累加, 大于 127 的值贡献为负数
func checksum(buf []byte) int64 {
	var sum int64
	for _, b := range buf {
		sum += int64(int8(b))
	}
	return sum
}

func checkOptions(options Options) error {
	if options.FilePath == "" {
		return ErrFilePathIsEmpty
	}
	if options.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if options.TotalSize < 0 {
		return ErrInvalidTotalSize
	}
	if !fio.ValidIOType(options.IOType) {
		return ErrUnsupportedIOType
	}
	if options.IOType == fio.DirectIO && options.ChunkSize%fio.BlockSize != 0 {
		return ErrChunkSizeNotAligned
	}
	return nil
}
