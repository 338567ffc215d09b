package utils

import (
	"math/rand"
	"time"
)

// NewRand 创建本次运行独享的随机数生成器, seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// FillRandom 用 [0,255] 均匀分布的随机字节填满 buf
func FillRandom(r *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = byte(r.Intn(256))
	}
}
