package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryID_RoundTrip(t *testing.T) {
	for range 50 {
		id := uuid.New()

		encoded := EncodeID(id)
		decoded, err := DecodeID(encoded.Bytes())

		require.NoError(t, err)
		assert.Equal(t, id, decoded)
		assert.Equal(t, id, encoded.UUID())
		assert.Len(t, encoded.Bytes(), BinaryIDSize)
	}
}

func TestBinaryID_ValueAndScan(t *testing.T) {
	id := uuid.New()

	value, err := EncodeID(id).Value()
	require.NoError(t, err)

	raw, ok := value.([]byte)
	require.True(t, ok)
	assert.Equal(t, id[:], raw)

	var scanned BinaryID
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, id, scanned.UUID())

	var fromString BinaryID
	require.NoError(t, fromString.Scan(string(raw)))
	assert.Equal(t, id, fromString.UUID())
}

func TestBinaryID_ValueIsACopy(t *testing.T) {
	encoded := EncodeID(uuid.New())

	value, err := encoded.Value()
	require.NoError(t, err)

	raw := value.([]byte)
	raw[0] ^= 0xFF

	assert.NotEqual(t, raw[0], encoded[0])
}

func TestBinaryID_ScanRejectsInvalidInput(t *testing.T) {
	tests := map[string]any{
		"short slice": []byte{1, 2, 3},
		"long slice":  make([]byte, 17),
		"nil":         nil,
		"integer":     int64(7),
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			var id BinaryID
			assert.Error(t, id.Scan(src))
		})
	}
}

func TestBinaryID_Equality(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, EncodeID(id), EncodeID(id))
	assert.NotEqual(t, EncodeID(id), EncodeID(uuid.New()))
}
