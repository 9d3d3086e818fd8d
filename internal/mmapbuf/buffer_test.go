package mmapbuf

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	A uint16
	B uint32
	C uint64
}

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "buffer.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func openBuffer(t *testing.T, content []byte, order binary.ByteOrder, mode Mode) *Buffer {
	t.Helper()

	b, err := Open(writeTempFile(t, content), order, mode)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	return b
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), binary.LittleEndian, ReadOnly)
	assert.Error(t, err)
}

func TestReadRecordHonoursOrder(t *testing.T) {
	// 0x0102, 0x03040506, 0x0708090a0b0c0d0e in big-endian encoding.
	content := []byte{
		0x01, 0x02,
		0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
	}

	t.Run("big endian", func(t *testing.T) {
		b := openBuffer(t, content, binary.BigEndian, ReadOnly)

		var rec record
		require.NoError(t, b.ReadRecord(0, &rec))
		assert.Equal(t, record{A: 0x0102, B: 0x03040506, C: 0x0708090a0b0c0d0e}, rec)
	})

	t.Run("little endian", func(t *testing.T) {
		b := openBuffer(t, content, binary.LittleEndian, ReadOnly)

		var rec record
		require.NoError(t, b.ReadRecord(0, &rec))
		assert.Equal(t, record{A: 0x0201, B: 0x06050403, C: 0x0e0d0c0b0a090807}, rec)
	})
}

func TestReadRecordOutOfRange(t *testing.T) {
	b := openBuffer(t, make([]byte, 8), binary.LittleEndian, ReadOnly)

	var rec record
	err := b.ReadRecord(0, &rec)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	err = b.ReadRecord(100, &rec)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestSliceBounds(t *testing.T) {
	b := openBuffer(t, []byte{1, 2, 3, 4}, binary.LittleEndian, ReadOnly)

	got, err := b.Slice(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got)

	_, err = b.Slice(3, 2)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	// Offset arithmetic must not wrap around.
	_, err = b.Slice(^uint64(0), 2)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestWriteBytes(t *testing.T) {
	t.Run("read-only refuses", func(t *testing.T) {
		b := openBuffer(t, []byte{1, 2, 3, 4}, binary.LittleEndian, ReadOnly)

		err := b.WriteBytes([]byte{9}, 0)
		assert.ErrorIs(t, err, ErrNotMutable)
		assert.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())
	})

	t.Run("read-write lands in mapping", func(t *testing.T) {
		b := openBuffer(t, []byte{1, 2, 3, 4}, binary.LittleEndian, ReadWrite)

		require.NoError(t, b.WriteBytes([]byte{9, 8}, 1))
		assert.Equal(t, []byte{1, 9, 8, 4}, b.Bytes())
	})

	t.Run("bounds", func(t *testing.T) {
		b := openBuffer(t, []byte{1, 2, 3, 4}, binary.LittleEndian, ReadWrite)

		err := b.WriteBytes([]byte{9, 9}, 3)
		assert.ErrorIs(t, err, ErrInvalidOffset)
	})
}

func TestPersistTo(t *testing.T) {
	content := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	b := openBuffer(t, content, binary.LittleEndian, ReadWrite)

	require.NoError(t, b.WriteBytes([]byte{0xff}, 0))

	outPath := filepath.Join(t.TempDir(), "persisted.bin")
	require.NoError(t, b.PersistTo(outPath))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestPersistToReadOnly(t *testing.T) {
	b := openBuffer(t, []byte{1}, binary.LittleEndian, ReadOnly)

	err := b.PersistTo(filepath.Join(t.TempDir(), "persisted.bin"))
	assert.ErrorIs(t, err, ErrNotMutable)
}
