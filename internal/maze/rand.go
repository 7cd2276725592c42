package maze

import (
	"math/rand"
	"os"
	"time"
)

// Source is the randomness the generator and decoy pass draw from.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewSeeded returns a deterministic source, mainly for tests.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSessionSource seeds a fresh source from the clock and the process id so
// that back-to-back runs do not produce the same maze.
func NewSessionSource() *rand.Rand {
	return NewSeeded(time.Now().UnixNano() ^ int64(os.Getpid()))
}
