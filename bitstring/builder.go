package bitstring

import (
	"math"

	"github.com/xssnick/bitutils-go/bitfield"
)

// DefaultCapacity is the builder capacity in bits when none is given.
const DefaultCapacity = 8192

// Builder appends bit fields one after another at a running cursor and
// produces an immutable BitString. All fields share the builder's byte
// order.
type Builder struct {
	order  bitfield.ByteOrder
	bitsSz uint
	data   []byte
}

func Begin(order bitfield.ByteOrder) *Builder {
	return BeginSized(order, DefaultCapacity)
}

func BeginSized(order bitfield.ByteOrder, capacityBits uint) *Builder {
	return &Builder{
		order: order,
		data:  make([]byte, (capacityBits+7)/8),
	}
}

func (b *Builder) MustStoreUInt(value uint32, sz uint) *Builder {
	err := b.StoreUInt(value, sz)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Builder) StoreUInt(value uint32, sz uint) error {
	if sz > bitfield.MaxBits {
		return ErrTooBigSize
	}
	if uint64(value) >= uint64(1)<<sz {
		return ErrTooBigValue
	}
	if b.bitsSz+sz > uint(len(b.data))*8 {
		return ErrNotFit
	}

	bitfield.Write(b.data, b.bitsSz, sz, b.order, value)
	b.bitsSz += sz
	return nil
}

func (b *Builder) MustStoreBoolBit(value bool) *Builder {
	err := b.StoreBoolBit(value)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Builder) StoreBoolBit(value bool) error {
	var i uint32
	if value {
		i = 1
	}
	return b.StoreUInt(i, 1)
}

func (b *Builder) MustStoreFloat32(value float32) *Builder {
	err := b.StoreFloat32(value)
	if err != nil {
		panic(err)
	}
	return b
}

// StoreFloat32 stores the IEEE-754 bit pattern of value as a 32-bit field.
func (b *Builder) StoreFloat32(value float32) error {
	return b.StoreUInt(math.Float32bits(value), 32)
}

func (b *Builder) MustStoreSlice(data []byte, bits uint) *Builder {
	err := b.StoreSlice(data, bits)
	if err != nil {
		panic(err)
	}
	return b
}

// StoreSlice appends the first bits bits of data. For little-endian
// builders each byte hands out its low bits first, for big-endian builders
// its high bits first.
func (b *Builder) StoreSlice(data []byte, bits uint) error {
	if bits > uint(len(data))*8 {
		return ErrSmallSlice
	}
	if b.bitsSz+bits > uint(len(b.data))*8 {
		return ErrNotFit
	}

	for i := 0; bits > 0; i++ {
		n := bits
		if n > 8 {
			n = 8
		}

		v := uint32(data[i])
		if n < 8 {
			if b.order == bitfield.BigEndian {
				v >>= 8 - n
			} else {
				v &= uint32(1)<<n - 1
			}
		}

		bitfield.Write(b.data, b.bitsSz, n, b.order, v)
		b.bitsSz += n
		bits -= n
	}
	return nil
}

// StorePadding appends bits zero bits.
func (b *Builder) StorePadding(bits uint) error {
	if b.bitsSz+bits > uint(len(b.data))*8 {
		return ErrNotFit
	}
	for bits > 0 {
		n := bits
		if n > bitfield.MaxBits {
			n = bitfield.MaxBits
		}
		bitfield.Write(b.data, b.bitsSz, n, b.order, 0)
		b.bitsSz += n
		bits -= n
	}
	return nil
}

func (b *Builder) Order() bitfield.ByteOrder {
	return b.order
}

func (b *Builder) BitsUsed() uint {
	return b.bitsSz
}

func (b *Builder) BitsLeft() uint {
	return uint(len(b.data))*8 - b.bitsSz
}

func (b *Builder) End() *BitString {
	// copy data
	data := append([]byte{}, b.data[:(b.bitsSz+7)/8]...)

	return &BitString{
		order:  b.order,
		bitsSz: b.bitsSz,
		data:   data,
	}
}
