package bitstring

import (
	"encoding/hex"
	"fmt"

	"github.com/xssnick/bitutils-go/bitfield"
)

// BitString is a finished sequence of bit-packed fields. It is produced by
// a Builder or wrapped around existing bytes, and parsed with a Slice.
type BitString struct {
	order  bitfield.ByteOrder
	bitsSz uint
	data   []byte
}

// Wrap builds a BitString over a copy of existing bytes, so raw buffers
// produced elsewhere can be parsed with a Slice. bits must fit into data.
func Wrap(data []byte, bits uint, order bitfield.ByteOrder) (*BitString, error) {
	if bits > uint(len(data))*8 {
		return nil, ErrSmallSlice
	}

	// copy data
	cp := append([]byte{}, data[:(bits+7)/8]...)

	return &BitString{
		order:  order,
		bitsSz: bits,
		data:   cp,
	}, nil
}

func (s *BitString) Order() bitfield.ByteOrder {
	return s.order
}

func (s *BitString) BitsSize() uint {
	return s.bitsSz
}

// Data returns a copy of the underlying bytes.
func (s *BitString) Data() []byte {
	return append([]byte{}, s.data...)
}

func (s *BitString) BeginParse() *Slice {
	// copy data
	data := append([]byte{}, s.data...)

	return &Slice{
		order:  s.order,
		bitsSz: s.bitsSz,
		data:   data,
	}
}

func (s *BitString) ToBuilder() *Builder {
	data := make([]byte, DefaultCapacity/8)
	if len(s.data) > len(data) {
		data = make([]byte, len(s.data))
	}
	copy(data, s.data)

	return &Builder{
		order:  s.order,
		bitsSz: s.bitsSz,
		data:   data,
	}
}

func (s *BitString) Dump() string {
	return fmt.Sprintf("%d[%s]%s", s.bitsSz, s.order, hex.EncodeToString(s.data))
}

func (s *BitString) DumpBits() string {
	var val string
	for _, n := range s.data {
		val += fmt.Sprintf("%08b", n)
	}
	if sz := s.bitsSz % 8; sz != 0 {
		val = val[:len(val)-int(8-sz)]
	}
	return fmt.Sprintf("%d[%s]%s", s.bitsSz, s.order, val)
}
