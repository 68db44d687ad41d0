package loader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/wgomg/wordfreq/internal/config"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var charmaps = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"macintosh":    charmap.Macintosh,
}

// bytes with no assigned character; x/text maps them to C1 controls
var undefinedBytes = map[string][]byte{
	"windows-1252": {0x81, 0x8D, 0x8F, 0x90, 0x9D},
}

// Decode tries encodings in order and returns the text produced by the first
// one that accepts data, along with that encoding's name.
func Decode(data []byte, encodings []string) (string, string, error) {
	var failures []string

	for _, name := range encodings {
		canonical, ok := config.CanonicalEncoding(name)
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: unsupported", name))
			continue
		}

		text, err := decodeAs(data, canonical)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", canonical, err))
			continue
		}
		return norm.NFC.String(text), canonical, nil
	}

	if len(failures) == 0 {
		return "", "", fmt.Errorf("%w: no encodings configured", ErrEncodingExhausted)
	}
	return "", "", fmt.Errorf("%w (%s)", ErrEncodingExhausted, strings.Join(failures, "; "))
}

func decodeAs(data []byte, name string) (string, error) {
	if name == "utf-8" {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid byte sequence at offset %d", invalidUTF8Offset(data))
		}
		return string(data), nil
	}

	cm, ok := charmaps[name]
	if !ok {
		return "", errors.New("unsupported")
	}

	for _, b := range undefinedBytes[name] {
		if i := bytes.IndexByte(data, b); i >= 0 {
			return "", fmt.Errorf("undefined byte 0x%02X at offset %d", b, i)
		}
	}

	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func invalidUTF8Offset(data []byte) int {
	offset := 0
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
		data = data[size:]
	}
	return offset
}
