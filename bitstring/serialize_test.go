package bitstring

import (
	"strings"
	"testing"

	"github.com/xssnick/bitutils-go/bitfield"
)

func TestSerialize_RoundTrip(t *testing.T) {
	for _, order := range []bitfield.ByteOrder{bitfield.LittleEndian, bitfield.BigEndian} {
		for _, withCRC := range []bool{true, false} {
			bs := Begin(order).
				MustStoreUInt(0x321, 12).
				MustStoreBoolBit(true).
				MustStoreUInt(0x7FFF, 15).
				End()

			parsed, err := Deserialize(bs.SerializeWithFlags(withCRC))
			if err != nil {
				t.Fatal(err)
			}

			if parsed.Order() != order || parsed.BitsSize() != bs.BitsSize() {
				t.Fatal("header diff")
			}
			if parsed.Dump() != bs.Dump() {
				t.Fatal("dump diff after serialize")
			}
		}
	}
}

func TestDeserialize_Corrupted(t *testing.T) {
	bs := Begin(bitfield.LittleEndian).MustStoreUInt(0xCAFE, 16).End()

	data := bs.Serialize()
	data[len(data)-5] ^= 0x01
	if _, err := Deserialize(data); err == nil || !strings.Contains(err.Error(), "checksum") {
		t.Fatalf("got %v, want checksum error", err)
	}

	data = bs.Serialize()
	data[0] ^= 0xFF
	if _, err := Deserialize(data); err == nil || !strings.Contains(err.Error(), "magic") {
		t.Fatalf("got %v, want magic error", err)
	}

	if _, err := Deserialize(data[:3]); err == nil {
		t.Fatal("want length error")
	}

	// bit length not matching the payload
	data = bs.SerializeWithFlags(false)
	if _, err := Deserialize(data[:len(data)-1]); err == nil {
		t.Fatal("want payload error")
	}
}
