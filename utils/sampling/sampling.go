// Package sampling implements the sampling of bytes, integers and rationals
// from an arbitrary source of randomness.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/tuneinsight/biquat/utils/bignum"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read from r.
func RandUint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(fmt.Errorf("cannot RandUint64: %w", err))
	}
	return binary.LittleEndian.Uint64(b)
}

// RandInt generates a random Int in [0, max-1] read from r.
func RandInt(r io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(r, max); err != nil {
		panic(fmt.Errorf("cannot RandInt: %w", err))
	}
	return
}

// RandRat returns a random rational number (-1)^s * a / (b + 1) with s in {0, 1}
// and a, b in [0, max-1].
func RandRat(r io.Reader, max int64) *big.Rat {

	if max < 1 {
		panic(fmt.Errorf("cannot RandRat: max must be positive but is %d", max))
	}

	m := bignum.NewInt(max)

	num := RandInt(r, m)
	den := RandInt(r, m)
	den.Add(den, bignum.NewInt(1))

	if RandUint64(r)&1 == 1 {
		num.Neg(num)
	}

	return new(big.Rat).SetFrac(num, den)
}
