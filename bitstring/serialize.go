package bitstring

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/xssnick/bitutils-go/bitfield"
)

var ErrTooBigValue = errors.New("too big value")
var ErrTooBigSize = errors.New("too big size")
var ErrSmallSlice = errors.New("too small slice for this size")
var ErrNotFit = errors.New("data does not fit into builder capacity")
var ErrNotEnoughData = errors.New("not enough data in bit string")

var serializeMagic = []byte{0xB1, 0x75, 0x9C, 0x2E}

const (
	flagHasCRC    = 0b1000_0000
	flagBigEndian = 0b0000_0001
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// Serialize frames the bit string for storage or transfer: magic, flags,
// bit length, payload and a crc32 (Castagnoli) checksum.
func (s *BitString) Serialize() []byte {
	return s.SerializeWithFlags(true)
}

func (s *BitString) SerializeWithFlags(withCRC bool) []byte {
	flags := byte(0)
	if withCRC {
		flags |= flagHasCRC
	}
	if s.order == bitfield.BigEndian {
		flags |= flagBigEndian
	}

	data := make([]byte, 0, len(serializeMagic)+5+len(s.data)+4)
	data = append(data, serializeMagic...)
	data = append(data, flags)

	// len of data, in bits
	ln := make([]byte, 4)
	binary.LittleEndian.PutUint32(ln, uint32(s.bitsSz))
	data = append(data, ln...)

	data = append(data, s.data...)

	if withCRC {
		checksum := make([]byte, 4)
		binary.LittleEndian.PutUint32(checksum, crc32.Checksum(data, crcTable))

		data = append(data, checksum...)
	}

	return data
}

// Deserialize parses a frame produced by Serialize, verifying the checksum
// when the frame carries one.
func Deserialize(data []byte) (*BitString, error) {
	if len(data) < len(serializeMagic)+5 {
		return nil, errors.New("invalid data length")
	}
	if !bytes.Equal(data[:len(serializeMagic)], serializeMagic) {
		return nil, errors.New("invalid magic header")
	}

	flags := data[len(serializeMagic)]
	if flags&flagHasCRC != 0 {
		if len(data) < len(serializeMagic)+5+4 {
			return nil, errors.New("invalid data length")
		}

		checksum := binary.LittleEndian.Uint32(data[len(data)-4:])
		if crc32.Checksum(data[:len(data)-4], crcTable) != checksum {
			return nil, errors.New("checksum not matches")
		}
		data = data[:len(data)-4]
	}

	order := bitfield.LittleEndian
	if flags&flagBigEndian != 0 {
		order = bitfield.BigEndian
	}

	bits := uint(binary.LittleEndian.Uint32(data[len(serializeMagic)+1 : len(serializeMagic)+5]))
	payload := data[len(serializeMagic)+5:]
	if uint(len(payload)) != (bits+7)/8 {
		return nil, fmt.Errorf("failed to read payload, want %d bytes, has %d", (bits+7)/8, len(payload))
	}

	return &BitString{
		order:  order,
		bitsSz: bits,
		data:   append([]byte{}, payload...),
	}, nil
}
