package clusterid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Clock supplies the current time in milliseconds since the Unix epoch.
// Values are not required to be monotonic.
type Clock interface {
	NowMs() uint64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) NowMs() uint64 {
	return uint64(time.Now().UnixMilli())
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() uint64

func (f ClockFunc) NowMs() uint64 {
	return f()
}

// RandomSource supplies n high-entropy bytes.
type RandomSource interface {
	Bytes(n int) ([]byte, error)
}

// CryptoRandom reads from crypto/rand. It is safe for concurrent use.
type CryptoRandom struct{}

func (CryptoRandom) Bytes(n int) ([]byte, error) {
	return readFull(rand.Reader, n)
}

// ReaderRandom adapts an io.Reader, such as a seeded reader in tests.
type ReaderRandom struct {
	R io.Reader
}

func (r ReaderRandom) Bytes(n int) ([]byte, error) {
	return readFull(r.R, n)
}

func readFull(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("failed to read %d random bytes: %w", n, err)
	}
	return b, nil
}
