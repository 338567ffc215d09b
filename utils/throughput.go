package utils

import "time"

const MB = 1024 * 1024

// Throughput 按名义大小计算吞吐量, 单位 MB/s (1 MB = 1024*1024 字节)
func Throughput(nominalBytes int64, elapsed time.Duration) float64 {
	return float64(nominalBytes) / MB / elapsed.Seconds()
}

// RoundUp 按 chunk 整块写入时实际落盘的字节数, 即 ceil(total/chunk)*chunk
func RoundUp(total int64, chunk int) int64 {
	return Iterations(total, chunk) * int64(chunk)
}

// Iterations 写入 total 字节需要的 chunk 次数
func Iterations(total int64, chunk int) int64 {
	c := int64(chunk)
	return (total + c - 1) / c
}
