package elf

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynString(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	var entries []Dynamic

	it := f.Dynamics()
	for {
		d, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		entries = append(entries, d)
	}
	require.Len(t, entries, 3)

	t.Run("NEEDED resolves in dynstr", func(t *testing.T) {
		name, ok, err := f.DynString(entries[0])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "libm.so.6", name)
	})

	t.Run("SONAME resolves in dynstr", func(t *testing.T) {
		name, ok, err := f.DynString(entries[1])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "mylib.so", name)
	})

	t.Run("NULL has no name", func(t *testing.T) {
		name, ok, err := f.DynString(entries[2])
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("offset past dynstr", func(t *testing.T) {
		bad := Dynamic{class: Class64, d64: dyn64{Tag: int64(DynTagNeeded), Val: 9999}}
		_, _, err := f.DynString(bad)
		assert.ErrorIs(t, err, ErrInvalidNameOffset)
	})
}

func TestDynStringWithoutDynstr(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	// Simulate a file with no .dynstr; only name-bearing tags then error.
	f.dynstr = nil

	needed := Dynamic{class: Class64, d64: dyn64{Tag: int64(DynTagNeeded), Val: 1}}
	_, _, err := f.DynString(needed)
	assert.ErrorIs(t, err, ErrDynStringTableNotFound)

	null := Dynamic{class: Class64}
	_, ok, err := f.DynString(null)
	require.NoError(t, err)
	assert.False(t, ok)
}
