package rolling

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vealkind/kgram/src/stream"
)

var ErrInvalidWindowSize = errors.New("window size must be positive")

const (
	// Modular mode constants. The modulus keeps every intermediate value
	// well inside int64 range; distribution at this width is weak, which
	// is acceptable for a fingerprint but not for anything adversarial.
	ModularBase  = 256
	ModularPrime = 805306457

	// Unbounded mode base. No modulus is applied, so hash values grow
	// with k and are kept exact with big.Int arithmetic.
	UnboundedBase = 101
)

// Mode selects the arithmetic discipline of a Hasher.
type Mode int

const (
	// ModeModular reduces the hash modulo ModularPrime after every step.
	// Bounded width, possible collisions at the modulus.
	ModeModular Mode = iota
	// ModeUnbounded applies no modulus. Equal windows always hash equal
	// and distinct windows never collide, at the cost of big-integer
	// arithmetic.
	ModeUnbounded
)

func (m Mode) String() string {
	switch m {
	case ModeModular:
		return "modular"
	case ModeUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Triple is one emitted fingerprint: the hash of the current window and the
// positions of its first and last token, inclusive, in original stream
// coordinates.
type Triple struct {
	Hash  *big.Int
	Start int64
	End   int64
}

// accumulator maintains the running hash of the current window. roll removes
// the outgoing value's weighted contribution and folds the incoming value in:
//
//	h' = (h - out*rm_k) * base + in
//
// with rm_k = base^(k-1). During warm-up callers pass out = 0, which reduces
// the update to plain insertion, so warm-up and steady state share one code
// path.
type accumulator interface {
	roll(out, in int64)
	sum() *big.Int
}

type modAccumulator struct {
	hash int64
	rmk  int64
}

func newModAccumulator(k int) *modAccumulator {
	rmk := int64(1)
	for i := 0; i < k-1; i++ {
		rmk = rmk * ModularBase % ModularPrime
	}

	return &modAccumulator{rmk: rmk}
}

func (a *modAccumulator) roll(out, in int64) {
	h := a.hash - out%ModularPrime*a.rmk%ModularPrime
	h = (h%ModularPrime + ModularPrime) % ModularPrime
	a.hash = (h*ModularBase + in%ModularPrime) % ModularPrime
}

func (a *modAccumulator) sum() *big.Int {
	return big.NewInt(a.hash)
}

type bigAccumulator struct {
	hash *big.Int
	base *big.Int
	rmk  *big.Int
	tmp  *big.Int
}

func newBigAccumulator(k int) *bigAccumulator {
	base := big.NewInt(UnboundedBase)

	return &bigAccumulator{
		hash: new(big.Int),
		base: base,
		rmk:  new(big.Int).Exp(base, big.NewInt(int64(k-1)), nil),
		tmp:  new(big.Int),
	}
}

func (a *bigAccumulator) roll(out, in int64) {
	a.tmp.SetInt64(out)
	a.tmp.Mul(a.tmp, a.rmk)
	a.hash.Sub(a.hash, a.tmp)
	a.hash.Mul(a.hash, a.base)
	a.hash.Add(a.hash, a.tmp.SetInt64(in))
}

func (a *bigAccumulator) sum() *big.Int {
	return new(big.Int).Set(a.hash)
}

// Hasher pulls tokens from a single upstream source and emits one Triple per
// k-length window, advancing the window by one token per call. A Hasher owns
// its window and hash state exclusively and must be driven by exactly one
// reader; two hashers over the same text need two independent sources.
type Hasher struct {
	k   int
	src stream.Source
	acc accumulator

	// buf is a ring holding the current window once warmed up; head
	// indexes the oldest token.
	buf  []stream.Token
	head int

	exhausted bool
}

// New builds a Hasher over src with window size k. k must be at least 1.
func New(k int, src stream.Source, mode Mode) (*Hasher, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWindowSize, k)
	}

	var acc accumulator

	switch mode {
	case ModeModular:
		acc = newModAccumulator(k)
	case ModeUnbounded:
		acc = newBigAccumulator(k)
	default:
		return nil, fmt.Errorf("unknown hashing mode %d", mode)
	}

	return &Hasher{
		k:   k,
		src: src,
		acc: acc,
		buf: make([]stream.Token, 0, k),
	}, nil
}

// Advance emits the fingerprint of the next window, or false once the
// upstream is exhausted. Exhaustion is terminal and idempotent: the window is
// never partially advanced on a failed pull, and every later call keeps
// returning false. The first call absorbs the O(k) warm-up; every call after
// that is O(1).
func (h *Hasher) Advance() (Triple, bool) {
	if h.exhausted {
		return Triple{}, false
	}

	if len(h.buf) < h.k {
		for len(h.buf) < h.k {
			t, ok := h.src.Next()
			if !ok {
				h.exhausted = true
				return Triple{}, false
			}

			h.acc.roll(0, t.Value)
			h.buf = append(h.buf, t)
		}
	} else {
		t, ok := h.src.Next()
		if !ok {
			h.exhausted = true
			return Triple{}, false
		}

		h.acc.roll(h.buf[h.head].Value, t.Value)
		h.buf[h.head] = t
		h.head = (h.head + 1) % h.k
	}

	return Triple{
		Hash:  h.acc.sum(),
		Start: h.buf[h.head].Pos,
		End:   h.buf[(h.head+h.k-1)%h.k].Pos,
	}, true
}
