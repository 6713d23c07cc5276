package bitstring

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xssnick/bitutils-go/bitfield"
)

func TestSlice_PreloadKeepsCursor(t *testing.T) {
	s := Begin(bitfield.LittleEndian).
		MustStoreUInt(0xA5, 8).
		MustStoreUInt(0x3C, 8).
		End().BeginParse()

	if v := s.MustPreloadUInt(8); v != 0xA5 {
		t.Fatalf("got %X, want A5", v)
	}
	if v := s.MustPreloadUInt(16); v != 0x3CA5 {
		t.Fatalf("got %X, want 3CA5", v)
	}
	if v := s.MustLoadUInt(8); v != 0xA5 {
		t.Fatalf("got %X, want A5", v)
	}
	if v := s.MustLoadUInt(8); v != 0x3C {
		t.Fatalf("got %X, want 3C", v)
	}
}

func TestSlice_Errors(t *testing.T) {
	s := Begin(bitfield.BigEndian).MustStoreUInt(0x3, 2).End().BeginParse()

	if _, err := s.LoadUInt(3); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("got %v, want ErrNotEnoughData", err)
	}
	if _, err := s.PreloadUInt(64); !errors.Is(err, ErrTooBigSize) {
		t.Fatalf("got %v, want ErrTooBigSize", err)
	}
	if err := s.SkipBits(3); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("got %v, want ErrNotEnoughData", err)
	}

	// failed loads must not advance
	if v := s.MustLoadUInt(2); v != 0x3 {
		t.Fatalf("got %X, want 3", v)
	}
}

func TestSlice_LoadSliceRoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xA0}

	for _, order := range []bitfield.ByteOrder{bitfield.LittleEndian, bitfield.BigEndian} {
		// unaligned start to force bit shifting on every byte
		s := Begin(order).
			MustStoreUInt(0x5, 3).
			MustStoreSlice(payload, 36).
			End().BeginParse()

		s.MustLoadUInt(3)
		got := s.MustLoadSlice(36)

		want := append([]byte{}, payload...)
		if order == bitfield.LittleEndian {
			want[4] &= 0x0F
		} else {
			want[4] &= 0xF0
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("%s: got %X, want %X", order, got, want)
		}
	}
}

func TestWrap(t *testing.T) {
	data := []byte{0x21, 0x43}

	bs, err := Wrap(data, 12, bitfield.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	if v := bs.BeginParse().MustLoadUInt(12); v != 0x321 {
		t.Fatalf("got %X, want 321", v)
	}

	if _, err = Wrap(data, 17, bitfield.LittleEndian); !errors.Is(err, ErrSmallSlice) {
		t.Fatalf("got %v, want ErrSmallSlice", err)
	}
}

func TestDump(t *testing.T) {
	bs := Begin(bitfield.BigEndian).MustStoreUInt(0x5, 3).End()

	if dump := bs.Dump(); dump != "3[BE]a0" {
		t.Fatalf("got %q", dump)
	}
	if dump := bs.DumpBits(); dump != "3[BE]101" {
		t.Fatalf("got %q", dump)
	}
}
