package utils

import (
	crand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"time"
)

// GenerateID создает простой уникальный ID сессии (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := crand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// ResolveSeed возвращает seed как есть, а 0 заменяет на текущее время.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// NewRand создает единственный генератор симуляции.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}
