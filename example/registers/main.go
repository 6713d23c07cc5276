package main

import (
	"log"

	"github.com/xssnick/bitutils-go/bitfield"
	"github.com/xssnick/bitutils-go/bitstring"
	"github.com/xssnick/bitutils-go/layout"
)

// status register block of an imaginary ADC, bit-packed into 6 bytes
type adcStatus struct {
	Channel   uint8      `bit:"## 5"`
	Enabled   bool       `bit:"bool"`
	_         layout.Pad `bit:"pad 2"`
	Gain      float32    `bit:"f32"`
	Overflows uint16     `bit:"## 8"`
}

func main() {
	raw := make([]byte, 6)

	// registers live at fixed bit offsets, poke them field by field
	bitfield.Write(raw, 0, 5, bitfield.LittleEndian, 17)
	bitfield.SetBit(raw, 5, false) // enabled flag
	bitfield.Write(raw, 8, 32, bitfield.LittleEndian, 0x41480000) // gain = 12.5 as IEEE-754
	bitfield.Write(raw, 40, 8, bitfield.LittleEndian, 3)

	// or decode the whole block at once via the layout tags
	var status adcStatus
	err := layout.Unmarshal(raw, bitfield.LittleEndian, &status)
	if err != nil {
		log.Fatalln("unmarshal err:", err)
	}

	log.Printf("status from raw bytes %X: %+v", raw, status)
	log.Printf("layout fingerprint: %04X", layout.Fingerprint(status))

	// pack it back through a builder and frame it for storage
	b := bitstring.Begin(bitfield.LittleEndian)
	status.Overflows = 0
	err = layout.Store(b, &status)
	if err != nil {
		log.Fatalln("store err:", err)
	}

	frame := b.End().Serialize()
	log.Printf("framed snapshot: %X", frame)

	parsed, err := bitstring.Deserialize(frame)
	if err != nil {
		log.Fatalln("deserialize err:", err)
	}
	log.Println("snapshot:", parsed.DumpBits())
}
