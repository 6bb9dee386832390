package certificate

import (
	"encoding/binary"
	"math"
)

// Builder assembles a certificate from tagged fields. Each field is encoded
// as fieldID (uint16 BE) | length (uint16 BE) | value, and fields appear in
// the order they were added.
type Builder struct {
	buf []byte
	err error
}

// NewBuilder creates an empty certificate builder.
func NewBuilder() *Builder {
	return &Builder{buf: make([]byte, 0, 256)}
}

// AddUint16 appends a field holding a big-endian uint16 value.
func (b *Builder) AddUint16(fieldID uint16, value uint16) *Builder {
	var encoded [2]byte
	binary.BigEndian.PutUint16(encoded[:], value)
	return b.AddBytes(fieldID, encoded[:])
}

// AddUint32 appends a field holding a big-endian uint32 value.
func (b *Builder) AddUint32(fieldID uint16, value uint32) *Builder {
	var encoded [4]byte
	binary.BigEndian.PutUint32(encoded[:], value)
	return b.AddBytes(fieldID, encoded[:])
}

// AddBytes appends a field holding an opaque value.
func (b *Builder) AddBytes(fieldID uint16, value []byte) *Builder {
	if b.err != nil {
		return b
	}
	if len(value) > math.MaxUint16 {
		b.err = ErrFieldTooLarge
		return b
	}

	var header [4]byte
	binary.BigEndian.PutUint16(header[:2], fieldID)
	binary.BigEndian.PutUint16(header[2:], uint16(len(value)))

	b.buf = append(b.buf, header[:]...)
	b.buf = append(b.buf, value...)

	return b
}

// Emit returns the encoded certificate, or the first error encountered while
// adding fields.
func (b *Builder) Emit() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	cert := make([]byte, len(b.buf))
	copy(cert, b.buf)

	return cert, nil
}
