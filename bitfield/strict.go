package bitfield

import "errors"

var ErrTooBigSize = errors.New("bit size should fit into 32 bits")
var ErrZeroSize = errors.New("zero bit size")
var ErrNotEnoughData = errors.New("bit range exceeds buffer")

// ReadStrict is a fail-fast variant of Read: instead of clamping it returns
// an error when the size is 0 or above 32, or when any bit of the field
// falls outside the buffer.
func ReadStrict(data []byte, bitOffset, bitSize uint, order ByteOrder) (uint32, error) {
	if err := checkRange(len(data), bitOffset, bitSize); err != nil {
		return 0, err
	}
	return Read(data, bitOffset, bitSize, order), nil
}

// WriteStrict is a fail-fast variant of Write, with the same checks as
// ReadStrict. On error the buffer is left untouched.
func WriteStrict(data []byte, bitOffset, bitSize uint, order ByteOrder, value uint32) error {
	if err := checkRange(len(data), bitOffset, bitSize); err != nil {
		return err
	}
	Write(data, bitOffset, bitSize, order, value)
	return nil
}

func checkRange(dataLen int, bitOffset, bitSize uint) error {
	switch {
	case bitSize == 0:
		return ErrZeroSize
	case bitSize > MaxBits:
		return ErrTooBigSize
	case uint64(bitOffset)+uint64(bitSize) > uint64(dataLen)*8:
		return ErrNotEnoughData
	}
	return nil
}
