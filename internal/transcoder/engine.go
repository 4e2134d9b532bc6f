package transcoder

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/greatbody/charsetdetect/detector"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToUTF8 converts data from the named encoding to UTF-8. A leading UTF-8 BOM
// is removed.
func ToUTF8(data []byte, encName string) ([]byte, error) {
	enc, err := detector.Lookup(encName)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}

	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return nil, errors.Wrapf(err, "convert from %s", encName)
	}
	return bytes.TrimPrefix(out, utf8BOM), nil
}

// FromUTF8 converts UTF-8 data back to the named encoding.
func FromUTF8(data []byte, encName string) ([]byte, error) {
	enc, err := detector.Lookup(encName)
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewEncoder()))
	if err != nil {
		return nil, errors.Wrapf(err, "convert to %s", encName)
	}
	return out, nil
}

// NewReader returns a reader that converts r from the named encoding to UTF-8
// on the fly. A leading byte order mark is consumed and selects the matching
// Unicode decoder.
func NewReader(r io.Reader, encName string) (io.Reader, error) {
	enc, err := detector.Lookup(encName)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}
