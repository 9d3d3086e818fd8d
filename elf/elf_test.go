package elf

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureSectionNames = []string{
	"", ".text", ".data", ".symtab", ".strtab", ".rela.text",
	".dynamic", ".dynstr", ".shstrtab",
}

func TestOpenDecodesHeader(t *testing.T) {
	for _, tc := range []struct {
		name    string
		class   Class
		order   binary.ByteOrder
		machine Machine
	}{
		{"64-bit little-endian", Class64, binary.LittleEndian, MachineX86_64},
		{"64-bit big-endian", Class64, binary.BigEndian, MachineX86_64},
		{"32-bit little-endian", Class32, binary.LittleEndian, Machine386},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := openFixture(t, tc.class, tc.order, ReadOnly)

			hdr := f.Header()
			assert.Equal(t, tc.class, hdr.Class())
			assert.Equal(t, TypeExec, hdr.Type())
			assert.Equal(t, tc.machine, hdr.Machine())
			assert.Equal(t, uint32(1), hdr.Version())
			assert.Equal(t, uint64(fixtureEntry), hdr.Entry())
			assert.Equal(t, uint16(2), hdr.ProgramHeaderCount())
			assert.Equal(t, uint16(9), hdr.SectionHeaderCount())
			assert.Equal(t, uint16(8), hdr.StringTableIndex())
			assert.Equal(t, tc.order, f.ByteOrder())
		})
	}
}

func TestOpenRejectsNonELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-elf")
	require.NoError(t, os.WriteFile(path, []byte("\x7fBAD----------------"), 0o644))

	_, err := Open(path, ReadOnly)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestOpenRejectsBadIdent(t *testing.T) {
	tamper := func(t *testing.T, index int, value byte) string {
		t.Helper()

		img := buildFixture(Class64, binary.LittleEndian)
		img[index] = value

		path := filepath.Join(t.TempDir(), "tampered.elf")
		require.NoError(t, os.WriteFile(path, img, 0o644))

		return path
	}

	t.Run("class", func(t *testing.T) {
		_, err := Open(tamper(t, identClass, 9), ReadOnly)
		require.ErrorIs(t, err, ErrInvalidClass)
	})

	t.Run("endian", func(t *testing.T) {
		_, err := Open(tamper(t, identData, 9), ReadOnly)
		require.ErrorIs(t, err, ErrInvalidEndian)
	})
}

func TestSectionLookups(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	t.Run("by index in canonical order", func(t *testing.T) {
		for i, want := range fixtureSectionNames {
			sec, err := f.SectionByIndex(i)
			require.NoError(t, err)
			assert.Equal(t, i, sec.Index())

			name, err := f.SectionName(sec)
			require.NoError(t, err)
			assert.Equal(t, want, name)
		}
	})

	t.Run("shstrndx names itself", func(t *testing.T) {
		sec, err := f.SectionByIndex(int(f.Header().StringTableIndex()))
		require.NoError(t, err)

		name, err := f.SectionName(sec)
		require.NoError(t, err)
		assert.Equal(t, ".shstrtab", name)
	})

	t.Run("by name", func(t *testing.T) {
		sec, err := f.SectionByName(".text")
		require.NoError(t, err)
		assert.Equal(t, 1, sec.Index())
		assert.Equal(t, SectionTypeProgBits, sec.Type())
		assert.Equal(t, SectionFlagAlloc|SectionFlagExecInstr, sec.Flags())
		assert.Equal(t, uint64(fixtureTextSize), sec.Size())
	})

	t.Run("by type returns first match", func(t *testing.T) {
		sec, err := f.SectionByType(SectionTypeStrtab)
		require.NoError(t, err)
		assert.Equal(t, 4, sec.Index())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.SectionByName(".does-not-exist")
		assert.ErrorIs(t, err, ErrSectionNotFound)

		_, err = f.SectionByType(SectionTypeNote)
		assert.ErrorIs(t, err, ErrSectionNotFound)

		_, err = f.SectionByIndex(99)
		assert.ErrorIs(t, err, ErrInvalidSectionIndex)
	})

	t.Run("name offsets stay within shstrtab", func(t *testing.T) {
		it := f.Sections()
		for {
			sec, err := it.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			assert.Less(t, uint64(sec.NameOffset()), uint64(len(f.shstrtab)))
		}
	})
}

func TestSectionData(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	data, err := f.SectionDataByName(".text")
	require.NoError(t, err)
	require.Len(t, data, fixtureTextSize)
	assert.Equal(t, byte(0x90), data[0])

	nullSec, err := f.SectionByIndex(0)
	require.NoError(t, err)

	_, err = f.SectionData(nullSec)
	assert.ErrorIs(t, err, ErrEmptySection)
}

func TestSymbolNames(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	var names []string
	var syms []Symbol

	it := f.Symbols()
	for {
		sym, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		name, err := f.SymbolName(sym)
		require.NoError(t, err)

		names = append(names, name)
		syms = append(syms, sym)
	}

	// Name offset 1 resolves in both tables; the .dynstr string wins.
	require.Equal(t, []string{"", "main", "helper", "libm.so.6"}, names)

	assert.Equal(t, SymBindGlobal, syms[1].Bind())
	assert.Equal(t, SymTypeFunc, syms[1].Type())
	assert.Equal(t, uint64(fixtureEntry), syms[1].Value())
	assert.Equal(t, uint16(1), syms[1].SectionIndex())

	assert.Equal(t, SymBindLocal, syms[2].Bind())
	assert.Equal(t, SymTypeObject, syms[2].Type())
	assert.Equal(t, SymVisibilityHidden, syms[2].Visibility())

	assert.Equal(t, SymBindWeak, syms[3].Bind())
}

func TestSymbolNameUnknownOffset(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	stray := Symbol{class: Class64, s64: sym64{Name: 9999}}
	_, err := f.SymbolName(stray)
	assert.ErrorIs(t, err, ErrSymbolNameNotFound)
}

func TestModifySectionDataReadOnly(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	sec, err := f.SectionByName(".text")
	require.NoError(t, err)

	before, err := f.SectionData(sec)
	require.NoError(t, err)
	original := append([]byte(nil), before...)

	err = f.ModifySectionData(sec, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrNotMutable)

	after, err := f.SectionData(sec)
	require.NoError(t, err)
	assert.Equal(t, original, after, "failed write must leave the buffer unchanged")
}

func TestModifySectionDataBounds(t *testing.T) {
	path := writeFixture(t, Class64, binary.LittleEndian)

	f, err := Open(path, ReadWrite)
	require.NoError(t, err)
	defer f.Close()

	sec, err := f.SectionByName(".text")
	require.NoError(t, err)

	// The payload must be strictly smaller than the section.
	err = f.ModifySectionData(sec, make([]byte, fixtureTextSize))
	assert.ErrorIs(t, err, ErrOversizedWrite)

	nullSec, err := f.SectionByIndex(0)
	require.NoError(t, err)
	err = f.ModifySectionData(nullSec, []byte{1})
	assert.ErrorIs(t, err, ErrEmptySection)
}

func TestBoundedWriteAndPersist(t *testing.T) {
	path := writeFixture(t, Class64, binary.LittleEndian)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := Open(path, ReadWrite)
	require.NoError(t, err)
	defer f.Close()

	sec, err := f.SectionByName(".text")
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0xcc}, 57)
	require.NoError(t, f.ModifySectionData(sec, payload))

	outPath := filepath.Join(t.TempDir(), "patched.elf")
	require.NoError(t, f.Persist(outPath))

	patched, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Len(t, patched, len(original))

	off := int(sec.Offset())
	assert.Equal(t, payload, patched[off:off+len(payload)])

	// Every byte outside the payload window must match the input image.
	expected := append([]byte(nil), original...)
	copy(expected[off:], payload)
	assert.Empty(t, cmp.Diff(expected, patched))
}

func TestPersistRoundTrip(t *testing.T) {
	path := writeFixture(t, Class64, binary.LittleEndian)

	f, err := Open(path, ReadWrite)
	require.NoError(t, err)
	defer f.Close()

	copyPath := filepath.Join(t.TempDir(), "copy.elf")
	require.NoError(t, f.Persist(copyPath))

	g, err := Open(copyPath, ReadOnly)
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, f.Header(), g.Header())
	assert.Equal(t, len(f.sections), len(g.sections))
	assert.Equal(t, f.shstrtab, g.shstrtab)
}

func TestPersistRequiresWritableMapping(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	err := f.Persist(filepath.Join(t.TempDir(), "copy.elf"))
	assert.ErrorIs(t, err, ErrNotMutable)
}

// drainAccessors flattens every class-agnostic accessor into one comparable
// stream.
func drainAccessors(t *testing.T, f *File) []uint64 {
	t.Helper()

	var out []uint64

	hdr := f.Header()
	out = append(out, uint64(hdr.Type()), uint64(hdr.Machine()), hdr.Entry(),
		uint64(hdr.ProgramHeaderCount()), uint64(hdr.SectionHeaderCount()),
		uint64(hdr.StringTableIndex()))

	progs := f.Programs()
	for {
		p, err := progs.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, uint64(p.Type()), uint64(p.Flags()), p.Offset(),
			p.VirtualAddress(), p.FileSize(), p.MemSize(), p.Align())
	}

	syms := f.Symbols()
	for {
		s, err := syms.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, uint64(s.NameOffset()), s.Value(), s.Size(),
			uint64(s.Bind()), uint64(s.Type()), uint64(s.SectionIndex()))
	}

	dyns := f.Dynamics()
	for {
		d, err := dyns.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, uint64(d.Tag()), d.Value())
	}

	relocs := f.Relocations()
	for {
		r, err := relocs.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, r.Offset(), uint64(r.SymbolIndex()), uint64(r.TypeRaw()))
	}

	return out
}

func TestEndianInvariance(t *testing.T) {
	le := openFixture(t, Class64, binary.LittleEndian, ReadOnly)
	be := openFixture(t, Class64, binary.BigEndian, ReadOnly)

	assert.Empty(t, cmp.Diff(drainAccessors(t, le), drainAccessors(t, be)))
}

func TestAccessorIdempotence(t *testing.T) {
	f := openFixture(t, Class64, binary.LittleEndian, ReadOnly)

	assert.Equal(t, f.Header(), f.Header())

	first, err := f.SectionDataByName(".data")
	require.NoError(t, err)
	second, err := f.SectionDataByName(".data")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, drainAccessors(t, f), drainAccessors(t, f))
}
