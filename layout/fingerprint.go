package layout

import (
	"reflect"
	"strings"

	"github.com/sigurn/crc16"
)

var crc16table = crc16.MakeTable(crc16.CRC16_XMODEM)

// Fingerprint returns a short checksum of the bit layout described by v's
// struct tags. A writer and a reader of the same record can compare
// fingerprints to catch schema drift before touching the data. Untagged and
// ignored fields do not contribute.
func Fingerprint(v any) uint16 {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var desc []string
	for i := 0; i < t.NumField(); i++ {
		settings, ok := tagSettings(t.Field(i))
		if !ok {
			continue
		}
		desc = append(desc, t.Field(i).Name+":"+strings.Join(settings, " "))
	}

	return crc16.Checksum([]byte(strings.Join(desc, ",")), crc16table)
}
