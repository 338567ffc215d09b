package diskbench

import "errors"

var (
	ErrFilePathIsEmpty     = errors.New("the benchmark file path is empty")
	ErrInvalidChunkSize    = errors.New("chunk size must be greater than 0")
	ErrInvalidTotalSize    = errors.New("total size must not be negative")
	ErrUnsupportedIOType   = errors.New("unsupported io type")
	ErrChunkSizeNotAligned = errors.New("chunk size must be a multiple of the direct io block size")
	ErrBenchmarkIsRunning  = errors.New("the benchmark file is used by another process")
	ErrNoEnoughSpace       = errors.New("no enough disk space for benchmark")
	ErrOpenForWrite        = errors.New("could not open file for writing")
	ErrOpenForRead         = errors.New("could not open file for reading")
	ErrShortWrite          = errors.New("short write")
)
