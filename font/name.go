package font

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// nameIDFamily is the OpenType name table ID for the font family name.
const nameIDFamily = 1

// familyName extracts the family name from the raw name table of a
// TrueType/OpenType font. It looks for the Windows (platform 3,
// encoding 1) family record, tries a UTF-8 decode of the raw bytes
// first and falls back to UTF-16BE. Returns false if the table or
// record is missing or undecodable.
func familyName(data []byte) (string, bool) {
	table, ok := findTable(data, "name")
	if !ok || len(table) < 6 {
		return "", false
	}

	count := int(binary.BigEndian.Uint16(table[2:]))
	stringOffset := int(binary.BigEndian.Uint16(table[4:]))

	for i := 0; i < count; i++ {
		rec := 6 + i*12
		if rec+12 > len(table) {
			break
		}
		platformID := binary.BigEndian.Uint16(table[rec:])
		encodingID := binary.BigEndian.Uint16(table[rec+2:])
		nameID := binary.BigEndian.Uint16(table[rec+6:])
		length := int(binary.BigEndian.Uint16(table[rec+8:]))
		offset := int(binary.BigEndian.Uint16(table[rec+10:]))

		if nameID != nameIDFamily || platformID != 3 || encodingID != 1 {
			continue
		}

		start := stringOffset + offset
		end := start + length
		if start < 0 || end > len(table) {
			continue
		}
		raw := table[start:end]

		if utf8.Valid(raw) && isPlausibleUTF8Name(raw) {
			return string(raw), true
		}
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
		if err != nil || len(decoded) == 0 {
			continue
		}
		return string(decoded), true
	}

	return "", false
}

// isPlausibleUTF8Name rejects byte strings that happen to be valid
// UTF-8 but are really UTF-16BE. Windows-platform names are UTF-16BE,
// so ASCII names contain interleaved NUL bytes.
func isPlausibleUTF8Name(raw []byte) bool {
	for _, b := range raw {
		if b == 0 {
			return false
		}
	}
	return len(raw) > 0
}

// findTable locates a top-level sfnt table by tag in raw font data.
func findTable(data []byte, tag string) ([]byte, bool) {
	if len(data) < 12 {
		return nil, false
	}
	numTables := int(binary.BigEndian.Uint16(data[4:]))

	for i := 0; i < numTables; i++ {
		rec := 12 + i*16
		if rec+16 > len(data) {
			return nil, false
		}
		if string(data[rec:rec+4]) != tag {
			continue
		}
		offset := int(binary.BigEndian.Uint32(data[rec+8:]))
		length := int(binary.BigEndian.Uint32(data[rec+12:]))
		if offset < 0 || length < 0 || offset+length > len(data) {
			return nil, false
		}
		return data[offset : offset+length], true
	}
	return nil, false
}
