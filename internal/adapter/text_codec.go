package adapter

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding label used when none is configured.
const DefaultEncoding = "utf8"

// TextCodec converts between raw file bytes and text.
type TextCodec interface {
	// Name returns the label the codec was looked up with.
	Name() string
	Decode(raw []byte) (string, error)
	Encode(text string) ([]byte, error)
}

// LabeledCodec is a TextCodec for any encoding known to the WHATWG
// encoding index (utf8, utf-16le, latin1, shift_jis, ...).
type LabeledCodec struct {
	label    string
	encoding encoding.Encoding
}

// NewTextCodec looks up the encoding registered under label.
func NewTextCodec(label string) (*LabeledCodec, error) {
	if label == "" {
		label = DefaultEncoding
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", label, err)
	}

	return &LabeledCodec{label: label, encoding: enc}, nil
}

// Name returns the label of the codec.
func (c *LabeledCodec) Name() string {
	return c.label
}

// Decode converts raw bytes to text. A leading byte order mark is dropped.
func (c *LabeledCodec) Decode(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(c.encoding.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.label, err)
	}

	return string(decoded), nil
}

// Encode converts text to bytes in the codec's encoding.
func (c *LabeledCodec) Encode(text string) ([]byte, error) {
	encoded, err := c.encoding.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.label, err)
	}

	return encoded, nil
}
