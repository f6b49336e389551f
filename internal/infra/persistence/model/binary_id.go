package model

import (
	"database/sql/driver"

	"orderservice/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// BinaryIDSize is the fixed storage width of every identifier column.
const BinaryIDSize = 16

// BinaryID is the storage encoding of a 128-bit identifier: exactly 16 bytes in
// RFC 4122 byte order. All id comparisons bind a BinaryID so that SQLite and
// PostgreSQL both compare raw byte sequences.
type BinaryID [BinaryIDSize]byte

// EncodeID converts a domain identifier to its storage encoding.
func EncodeID(id uuid.UUID) BinaryID {
	return BinaryID(id)
}

// DecodeID converts a stored byte sequence back to a domain identifier.
func DecodeID(b []byte) (uuid.UUID, error) {
	if len(b) != BinaryIDSize {
		return uuid.Nil, errors.Errorf("binary id must be %d bytes, got %d", BinaryIDSize, len(b))
	}

	return uuid.FromBytes(b)
}

// UUID returns the domain identifier.
func (b BinaryID) UUID() uuid.UUID {
	return uuid.UUID(b)
}

// Bytes returns a copy of the encoded identifier.
func (b BinaryID) Bytes() []byte {
	out := make([]byte, BinaryIDSize)
	copy(out, b[:])

	return out
}

// Value implements driver.Valuer.
func (b BinaryID) Value() (driver.Value, error) {
	return b.Bytes(), nil
}

// Scan implements sql.Scanner.
func (b *BinaryID) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("cannot scan %T into BinaryID", src)
	}

	id, err := DecodeID(raw)
	if err != nil {
		return err
	}
	*b = EncodeID(id)

	return nil
}

// GormDataType implements schema.GormDataTypeInterface.
func (BinaryID) GormDataType() string {
	return "bytes"
}

// GormDBDataType picks the native binary column type per dialect.
func (BinaryID) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "bytea"
	}

	return "blob"
}
