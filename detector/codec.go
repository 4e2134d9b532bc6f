package detector

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var replacementChar = []byte(string(utf8.RuneError))

// Lookup resolves an IANA encoding name such as "ISO-8859-2" or
// "windows-1250". Matching is case-insensitive.
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %q", name)
	}
	if enc == nil {
		return nil, errors.Errorf("encoding %q is not supported", name)
	}
	return enc, nil
}

// Decode strictly decodes data as the named encoding and returns UTF-8 text.
// Any byte sequence that is invalid for the encoding makes Decode fail.
func Decode(name string, data []byte) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := decode(enc, data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return out, nil
}

func decode(enc encoding.Encoding, data []byte) ([]byte, error) {
	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return nil, errors.New("invalid UTF-8 sequence")
		}
		return data, nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	// x/text decoders substitute U+FFFD for bytes they cannot map. A U+FFFD
	// that was really encoded in data survives a round trip; a substituted
	// one does not.
	if bytes.Contains(out, replacementChar) {
		back, err := enc.NewEncoder().Bytes(out)
		if err != nil || !bytes.Equal(back, data) {
			return nil, errors.New("invalid byte sequence")
		}
	}
	return out, nil
}
