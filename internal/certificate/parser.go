package certificate

import (
	"encoding/binary"
	"fmt"
)

// Parser reads tagged fields out of an encoded certificate. Lookups return
// the first occurrence of a field. The parser never needs external resolver
// hooks; it is a plain sequential field scanner.
type Parser struct {
	cert []byte
}

// NewParser creates a parser over an encoded certificate. The certificate is
// not copied; the parser returns subslices of it.
func NewParser(cert []byte) *Parser {
	return &Parser{cert: cert}
}

// Find returns the value of the first field with the given ID.
func (p *Parser) Find(fieldID uint16) ([]byte, error) {
	offset := 0

	for offset < len(p.cert) {
		if offset+4 > len(p.cert) {
			return nil, ErrTruncatedField
		}

		id := binary.BigEndian.Uint16(p.cert[offset:])
		size := int(binary.BigEndian.Uint16(p.cert[offset+2:]))
		offset += 4

		if offset+size > len(p.cert) {
			return nil, ErrTruncatedField
		}

		if id == fieldID {
			return p.cert[offset : offset+size], nil
		}
		offset += size
	}

	return nil, fmt.Errorf("%w: 0x%04x", ErrFieldNotFound, fieldID)
}

// FindUint32 returns the value of the first field with the given ID decoded
// as a big-endian uint32.
func (p *Parser) FindUint32(fieldID uint16) (uint32, error) {
	value, err := p.Find(fieldID)
	if err != nil {
		return 0, err
	}
	if len(value) != 4 {
		return 0, fmt.Errorf("%w: field 0x%04x holds %d bytes, want 4",
			ErrTruncatedField, fieldID, len(value))
	}

	return binary.BigEndian.Uint32(value), nil
}

// FindUint16 returns the value of the first field with the given ID decoded
// as a big-endian uint16.
func (p *Parser) FindUint16(fieldID uint16) (uint16, error) {
	value, err := p.Find(fieldID)
	if err != nil {
		return 0, err
	}
	if len(value) != 2 {
		return 0, fmt.Errorf("%w: field 0x%04x holds %d bytes, want 2",
			ErrTruncatedField, fieldID, len(value))
	}

	return binary.BigEndian.Uint16(value), nil
}
