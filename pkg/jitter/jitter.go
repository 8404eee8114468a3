// Package jitter добавляет случайный разброс к интервалам повторных попыток,
// чтобы переподключения воркеров не происходили синхронно.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d с джиттером в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	randMutex.Lock()
	r := globalRand.Float64()
	randMutex.Unlock()

	return d + time.Duration(r*factor*float64(d))
}

// Backoff вычисляет экспоненциальную задержку для попытки attempt (с нуля),
// ограниченную max, без джиттера.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= max {
			return max
		}
	}

	return backoff
}

// ExponentialBackoff — Backoff с применённым джиттером.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return Duration(Backoff(base, max, attempt), factor)
}
