package bitfield

// ByteOrder describes how a field's bytes are packed inside the buffer.
// It is a property of the data format, not of the machine running the code:
// results are identical on any host architecture.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "BE"
	}
	return "LE"
}

// MaxBits is the widest field Read and Write handle in a single call.
const MaxBits = 32

// Read extracts bitSize bits starting at bitOffset and returns them
// right-justified in a uint32, with bits above bitSize set to zero.
// The caller can reinterpret the result as a more specific type, like a
// float bit pattern.
//
// Bit b of the buffer lives in byte b/8 at in-byte position b%8. For
// little-endian data the field's low bits come first, for big-endian data
// the bits are counted from the high end of each byte.
//
// Offsets outside the buffer are discarded: bits past the end contribute
// zero and no error is raised, so reading the tail of a truncated stream is
// safe. Sizes larger than 32 are clamped to 32. A zero bitSize returns 0
// and is otherwise unsupported.
func Read(data []byte, bitOffset, bitSize uint, order ByteOrder) uint32 {
	if bitSize > MaxBits {
		bitSize = MaxBits
	}
	if bitSize == 0 {
		return 0
	}

	begin, end := span(len(data), bitOffset, bitSize)
	v := load(data[begin:end], order)

	shift := shiftFor(bitOffset, bitSize, order)
	return uint32(v >> shift & (uint64(1)<<bitSize - 1))
}

// Write stores the low bitSize bits of value starting at bitOffset. Bits of
// the buffer outside [bitOffset, bitOffset+bitSize) are never altered, even
// though whole bytes shared with neighboring fields are rewritten. Bits of
// value above bitSize are ignored.
//
// Same clamping rules as Read: sizes above 32 are clamped, the byte range is
// truncated to the buffer and out-of-range bits are dropped silently.
func Write(data []byte, bitOffset, bitSize uint, order ByteOrder, value uint32) {
	if bitSize > MaxBits {
		bitSize = MaxBits
	}
	if bitSize == 0 {
		return
	}

	begin, end := span(len(data), bitOffset, bitSize)
	if begin == end {
		return
	}
	window := data[begin:end]

	shift := shiftFor(bitOffset, bitSize, order)
	mask := (uint64(1)<<bitSize - 1) << shift

	v := load(window, order)&^mask | uint64(value)<<shift&mask
	store(window, v, order)
}

// SetBit sets the bit at bitOffset to 1, like the x86 bts instruction.
// When reversed is true the in-byte bit numbering is inverted (position
// 7 - bitOffset%8), which matches big-endian bitmask layouts. If the target
// byte is outside the buffer the whole operation is a no-op.
func SetBit(data []byte, bitOffset uint, reversed bool) {
	byteOffset := bitOffset / 8
	if byteOffset >= uint(len(data)) {
		return
	}
	if reversed {
		bitOffset ^= 7
	}
	data[byteOffset] |= 1 << (bitOffset & 7)
}

// ClearBit clears the bit at bitOffset, with the same addressing and
// out-of-range policy as SetBit.
func ClearBit(data []byte, bitOffset uint, reversed bool) {
	byteOffset := bitOffset / 8
	if byteOffset >= uint(len(data)) {
		return
	}
	if reversed {
		bitOffset ^= 7
	}
	data[byteOffset] &= ^byte(1 << (bitOffset & 7))
}

// HasBit reports whether the bit at bitOffset is set, with the same
// addressing as SetBit. Out-of-range offsets report false.
func HasBit(data []byte, bitOffset uint, reversed bool) bool {
	byteOffset := bitOffset / 8
	if byteOffset >= uint(len(data)) {
		return false
	}
	if reversed {
		bitOffset ^= 7
	}
	return data[byteOffset]&(1<<(bitOffset&7)) > 0
}

// span returns the byte range [begin, end) covering the bit range, each
// endpoint clamped to the buffer length. A 32-bit field at an odd in-byte
// offset straddles at most 5 bytes.
func span(dataLen int, bitOffset, bitSize uint) (int, int) {
	begin := bitOffset / 8
	if begin > uint(dataLen) {
		begin = uint(dataLen)
	}
	end := (bitOffset + bitSize + 7) / 8
	if end > uint(dataLen) {
		end = uint(dataLen)
	}
	if end < begin {
		end = begin
	}
	return int(begin), int(end)
}

// shiftFor gives the in-byte shift that right-justifies the field once the
// span is assembled into a scratch word. Big-endian packing numbers bits
// from the high end of the byte, so the shift is counted from the opposite
// side; the unsigned negation is intentional, it is -(x) mod 8 without a
// branch.
func shiftFor(bitOffset, bitSize uint, order ByteOrder) uint {
	if order == BigEndian {
		return -(bitOffset + bitSize) & 7
	}
	return bitOffset & 7
}

// load assembles up to 8 bytes into a scratch word in the given order.
// Byte-by-byte shifting keeps the result independent of host endianness,
// there is no type punning anywhere.
func load(b []byte, order ByteOrder) uint64 {
	var v uint64
	if order == BigEndian {
		for _, x := range b {
			v = v<<8 | uint64(x)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// store writes the scratch word back over the span, low bytes first for
// little-endian data.
func store(b []byte, v uint64, order ByteOrder) {
	if order == BigEndian {
		for i := len(b) - 1; i >= 0; i-- {
			b[i] = byte(v)
			v >>= 8
		}
		return
	}
	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
}
