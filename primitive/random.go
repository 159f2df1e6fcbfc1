package primitive

import (
	"io"
)

// RandomSource is the pseudo-random source leaves are drawn from.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
	Int64N(n int64) int64
	Float64() float64
}

type sourceReader struct {
	rnd RandomSource
}

// NewReader adapts a RandomSource to an io.Reader producing random bytes.
func NewReader(rnd RandomSource) io.Reader {
	return sourceReader{rnd: rnd}
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rnd.IntN(256))
	}

	return len(p), nil
}
