package bitfield_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/icza/bitio"
	gobitfield "github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"

	"github.com/xssnick/bitutils-go/bitfield"
)

// big-endian fields laid out back to back are an MSB-first bitstream, so
// sequential reads must agree with an independent stream reader
func TestBigEndianAgreesWithBitioStream(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	buf := make([]byte, 64)
	rnd.Read(buf)

	r := bitio.NewReader(bytes.NewReader(buf))
	off := uint(0)
	for off+32 <= uint(len(buf))*8 {
		n := uint(1 + rnd.Intn(32))

		want, err := r.ReadBits(byte(n))
		require.NoError(t, err)
		require.Equal(t, uint32(want), bitfield.Read(buf, off, n, bitfield.BigEndian),
			"off %d, sz %d", off, n)

		off += n
	}
}

// non-reversed single-bit addressing is the LSB-first convention bitvectors
// use
func TestSetBitAgreesWithBitvector(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))

	buf := make([]byte, 8)
	bv := gobitfield.Bitvector64(make([]byte, 8))

	for i := 0; i < 40; i++ {
		idx := uint(rnd.Intn(64))
		bitfield.SetBit(buf, idx, false)
		bv.SetBitAt(uint64(idx), true)
	}

	require.Equal(t, []byte(bv), buf)
	for i := uint(0); i < 64; i++ {
		require.Equal(t, bv.BitAt(uint64(i)), bitfield.HasBit(buf, i, false), "bit %d", i)
	}
}
