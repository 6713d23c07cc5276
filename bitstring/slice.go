package bitstring

import (
	"math"

	"github.com/xssnick/bitutils-go/bitfield"
)

// Slice reads fields sequentially from a BitString. Load advances the
// cursor, Preload does not.
type Slice struct {
	order    bitfield.ByteOrder
	bitsSz   uint
	loadedSz uint
	data     []byte
}

func (s *Slice) MustLoadUInt(sz uint) uint32 {
	res, err := s.LoadUInt(sz)
	if err != nil {
		panic(err)
	}
	return res
}

func (s *Slice) LoadUInt(sz uint) (uint32, error) {
	res, err := s.PreloadUInt(sz)
	if err != nil {
		return 0, err
	}
	s.loadedSz += sz
	return res, nil
}

func (s *Slice) MustPreloadUInt(sz uint) uint32 {
	res, err := s.PreloadUInt(sz)
	if err != nil {
		panic(err)
	}
	return res
}

func (s *Slice) PreloadUInt(sz uint) (uint32, error) {
	if sz > bitfield.MaxBits {
		return 0, ErrTooBigSize
	}
	if s.bitsSz-s.loadedSz < sz {
		return 0, ErrNotEnoughData
	}
	return bitfield.Read(s.data, s.loadedSz, sz, s.order), nil
}

func (s *Slice) MustLoadBoolBit() bool {
	res, err := s.LoadBoolBit()
	if err != nil {
		panic(err)
	}
	return res
}

func (s *Slice) LoadBoolBit() (bool, error) {
	res, err := s.LoadUInt(1)
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func (s *Slice) MustLoadFloat32() float32 {
	res, err := s.LoadFloat32()
	if err != nil {
		panic(err)
	}
	return res
}

// LoadFloat32 reads a 32-bit field and reinterprets it as an IEEE-754
// float.
func (s *Slice) LoadFloat32() (float32, error) {
	res, err := s.LoadUInt(32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(res), nil
}

func (s *Slice) MustLoadSlice(bits uint) []byte {
	res, err := s.LoadSlice(bits)
	if err != nil {
		panic(err)
	}
	return res
}

// LoadSlice reads bits bits into a fresh byte slice, packed from the start
// with the same in-byte convention StoreSlice uses.
func (s *Slice) LoadSlice(bits uint) ([]byte, error) {
	if s.bitsSz-s.loadedSz < bits {
		return nil, ErrNotEnoughData
	}

	out := make([]byte, (bits+7)/8)
	for i := 0; bits > 0; i++ {
		n := bits
		if n > 8 {
			n = 8
		}

		v := bitfield.Read(s.data, s.loadedSz, n, s.order)
		if n < 8 && s.order == bitfield.BigEndian {
			v <<= 8 - n
		}
		out[i] = byte(v)

		s.loadedSz += n
		bits -= n
	}
	return out, nil
}

// SkipBits advances the cursor without reading.
func (s *Slice) SkipBits(bits uint) error {
	if s.bitsSz-s.loadedSz < bits {
		return ErrNotEnoughData
	}
	s.loadedSz += bits
	return nil
}

func (s *Slice) Order() bitfield.ByteOrder {
	return s.order
}

func (s *Slice) BitsLeft() uint {
	return s.bitsSz - s.loadedSz
}
