package ir

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/dshills/geocad/internal/dim"
)

// Hash is the content-addressed identity of an IR node. Two nodes that are
// structurally equal after canonicalization always produce the same Hash
// (spec property 1), and the EvaluationContext cache (internal/evalctx)
// keys its memoization table on Hash rather than on Node itself, since Node
// embeds slices and interface fields and is therefore not a comparable Go
// type suitable for direct map-key use.
//
// The derivation follows the same shape as the teacher's stage-seed
// derivation (github.com/dshills/dungo pkg/rng): SHA-256 over a
// deterministic byte encoding of every field in declaration order, with an
// explicit tag byte per variant so no two different Kinds can collide.
type Hash [32]byte

// hasher accumulates the deterministic byte encoding of one node's fields.
// All float64 values are quantized (dim.Quantize) before being written, so
// equal-ish shapes produce identical bytes regardless of float rounding.
type hasher struct {
	h []byte
}

func newHasher(tag byte) *hasher {
	return &hasher{h: []byte{tag}}
}

func (x *hasher) byte(b byte) *hasher {
	x.h = append(x.h, b)
	return x
}

func (x *hasher) int(v int) *hasher {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(v)))
	x.h = append(x.h, buf[:]...)
	return x
}

func (x *hasher) int64(v int64) *hasher {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	x.h = append(x.h, buf[:]...)
	return x
}

func (x *hasher) float(v float64) *hasher {
	return x.quantized(v)
}

func (x *hasher) quantized(v float64) *hasher {
	return x.int64(dim.Quantize(v))
}

func (x *hasher) bytes(b []byte) *hasher {
	x.int(len(b))
	x.h = append(x.h, b...)
	return x
}

func (x *hasher) str(s string) *hasher {
	return x.bytes([]byte(s))
}

func (x *hasher) hash(other Hash) *hasher {
	x.h = append(x.h, other[:]...)
	return x
}

func (x *hasher) sum() Hash {
	return sha256.Sum256(x.h)
}
