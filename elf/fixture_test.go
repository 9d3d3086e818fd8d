package elf

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/elfscope/elfscope/internal/align"
)

// The test fixtures are synthetic ELF images assembled byte-by-byte, so
// every header field and table offset is known exactly. The same semantic
// content is emitted for any class/order combination, which is what the
// endian-invariance tests rely on.

const (
	fixtureEntry    = 0x1000
	fixtureBase     = 0x400000
	fixtureTextSize = 64
	fixtureDataSize = 16

	// Offsets into the fixture .strtab. The table is padded so that the
	// real names sit past the end of .dynstr and can only resolve there.
	strtabOffMain   = 21
	strtabOffHelper = 26

	// Offset 1 resolves in both .strtab (as "") and .dynstr (as the
	// NEEDED library name); the cache keeps the .dynstr string.
	strtabOffCollide = 1

	dynstrOffLibm  = 1
	dynstrOffMylib = 11
)

type fixtureLayout struct {
	phoff    uint64
	textOff  uint64
	dataOff  uint64
	symOff   uint64
	strOff   uint64
	relOff   uint64
	dynOff   uint64
	dynstrOff uint64
	shstrOff uint64
	shoff    uint64

	symEntSize uint64
	relEntSize uint64
	dynEntSize uint64

	strtab   []byte
	dynstr   []byte
	shstrtab []byte
	shnames  map[string]uint32
}

type fixtureWriter struct {
	buf   bytes.Buffer
	order binary.ByteOrder
	class Class
}

func (w *fixtureWriter) u8(v uint8)   { w.buf.WriteByte(v) }
func (w *fixtureWriter) u16(v uint16) { _ = binary.Write(&w.buf, w.order, v) }
func (w *fixtureWriter) u32(v uint32) { _ = binary.Write(&w.buf, w.order, v) }
func (w *fixtureWriter) u64(v uint64) { _ = binary.Write(&w.buf, w.order, v) }

// word writes a class-sized address/offset/size field.
func (w *fixtureWriter) word(v uint64) {
	if w.class == Class32 {
		w.u32(uint32(v))
	} else {
		w.u64(v)
	}
}

func (w *fixtureWriter) padTo(off uint64) {
	for uint64(w.buf.Len()) < off {
		w.buf.WriteByte(0)
	}
}

func fixtureSizes(class Class) (ehsize, phentsize, shentsize uint64) {
	if class == Class32 {
		return 52, 32, 40
	}

	return 64, 56, 64
}

func buildShstrtab(names []string) ([]byte, map[string]uint32) {
	var blob bytes.Buffer
	offsets := make(map[string]uint32)

	blob.WriteByte(0)
	for _, name := range names {
		offsets[name] = uint32(blob.Len())
		blob.WriteString(name)
		blob.WriteByte(0)
	}

	return blob.Bytes(), offsets
}

func fixtureLayoutFor(class Class) fixtureLayout {
	ehsize, phentsize, _ := fixtureSizes(class)

	l := fixtureLayout{
		symEntSize: 24,
		relEntSize: 24, // rela
		dynEntSize: 16,
	}
	if class == Class32 {
		l.symEntSize = 16
		l.relEntSize = 8 // rel, no addend
		l.dynEntSize = 8
	}

	l.strtab = make([]byte, strtabOffMain)
	l.strtab = append(l.strtab, "main\x00helper\x00"...)
	l.dynstr = []byte("\x00libm.so.6\x00mylib.so\x00")
	l.shstrtab, l.shnames = buildShstrtab([]string{
		".text", ".data", ".symtab", ".strtab", ".rela.text",
		".dynamic", ".dynstr", ".shstrtab",
	})

	l.phoff = ehsize
	l.textOff = align.Address(l.phoff+2*phentsize, 8)
	l.dataOff = align.Address(l.textOff+fixtureTextSize, 8)
	l.symOff = align.Address(l.dataOff+fixtureDataSize, 8)
	l.strOff = align.Address(l.symOff+4*l.symEntSize, 8)
	l.relOff = align.Address(l.strOff+uint64(len(l.strtab)), 8)
	l.dynOff = align.Address(l.relOff+2*l.relEntSize, 8)
	l.dynstrOff = align.Address(l.dynOff+3*l.dynEntSize, 8)
	l.shstrOff = align.Address(l.dynstrOff+uint64(len(l.dynstr)), 8)
	l.shoff = align.Address(l.shstrOff+uint64(len(l.shstrtab)), 8)

	return l
}

// buildFixture assembles a complete object image for the given class and
// order: a PHDR and a LOAD segment, .text/.data, a four-entry .symtab, two
// relocations against .text (RELA for class 64, REL for class 32), and a
// three-entry .dynamic with NEEDED and SONAME strings in .dynstr.
func buildFixture(class Class, order binary.ByteOrder) []byte {
	l := fixtureLayoutFor(class)
	ehsize, phentsize, shentsize := fixtureSizes(class)

	w := &fixtureWriter{order: order, class: class}

	// e_ident
	w.buf.Write([]byte{0x7f, 'E', 'L', 'F'})
	w.u8(byte(class))
	if order == binary.BigEndian {
		w.u8(2)
	} else {
		w.u8(1)
	}
	w.u8(1) // EI_VERSION
	w.u8(0) // EI_OSABI
	w.u8(0) // EI_ABIVERSION
	w.padTo(identSize)

	machine := MachineX86_64
	if class == Class32 {
		machine = Machine386
	}

	w.u16(uint16(TypeExec))
	w.u16(uint16(machine))
	w.u32(1)
	w.word(fixtureEntry)
	w.word(l.phoff)
	w.word(l.shoff)
	w.u32(0)
	w.u16(uint16(ehsize))
	w.u16(uint16(phentsize))
	w.u16(2)
	w.u16(uint16(shentsize))
	w.u16(9)
	w.u16(8)

	writePhdr := func(typ SegmentType, flags SegmentFlags, off, vaddr, filesz, memsz, alignment uint64) {
		w.u32(uint32(typ))
		if class == Class64 {
			w.u32(uint32(flags))
		}
		w.word(off)
		w.word(vaddr)
		w.word(vaddr)
		w.word(filesz)
		w.word(memsz)
		if class == Class32 {
			w.u32(uint32(flags))
		}
		w.word(alignment)
	}

	w.padTo(l.phoff)
	writePhdr(SegmentTypePhdr, SegmentFlagRead, l.phoff, fixtureBase+l.phoff, 2*phentsize, 2*phentsize, 8)
	writePhdr(SegmentTypeLoad, SegmentFlagRead|SegmentFlagExecute, 0, fixtureBase, 0x2000, 0x2000, 0x1000)

	w.padTo(l.textOff)
	for i := 0; i < fixtureTextSize; i++ {
		w.u8(0x90)
	}

	w.padTo(l.dataOff)
	for i := 0; i < fixtureDataSize; i++ {
		w.u8(byte(i))
	}

	writeSym := func(name uint32, value, size uint64, info, other uint8, shndx uint16) {
		w.u32(name)
		if class == Class32 {
			w.word(value)
			w.word(size)
			w.u8(info)
			w.u8(other)
			w.u16(shndx)
		} else {
			w.u8(info)
			w.u8(other)
			w.u16(shndx)
			w.u64(value)
			w.u64(size)
		}
	}

	w.padTo(l.symOff)
	writeSym(0, 0, 0, 0, 0, 0)
	writeSym(strtabOffMain, fixtureEntry, 16, byte(SymBindGlobal)<<4|byte(SymTypeFunc), 0, 1)
	writeSym(strtabOffHelper, 0x2000, 8, byte(SymBindLocal)<<4|byte(SymTypeObject), byte(SymVisibilityHidden), 2)
	writeSym(strtabOffCollide, 0x1040, 0, byte(SymBindWeak)<<4|byte(SymTypeNoType), 0, 1)

	w.padTo(l.strOff)
	w.buf.Write(l.strtab)

	// Relocations against .text, linked to .symtab. The class-32 image
	// uses REL entries, the class-64 image RELA.
	writeReloc := func(off uint64, sym, typ uint32, addend int64) {
		if class == Class32 {
			w.u32(uint32(off))
			w.u32(sym<<8 | typ&0xff)
		} else {
			w.u64(off)
			w.u64(uint64(sym)<<32 | uint64(typ))
			w.u64(uint64(addend))
		}
	}

	relType1, relType2 := uint32(RX8664PC32), uint32(RX866464)
	if class == Class32 {
		relType1, relType2 = uint32(R386PC32), uint32(R38632)
	}

	w.padTo(l.relOff)
	writeReloc(fixtureEntry+4, 1, relType1, -4)
	writeReloc(fixtureEntry+16, 2, relType2, 0)

	writeDyn := func(tag DynTag, val uint64) {
		if class == Class32 {
			w.u32(uint32(tag))
			w.u32(uint32(val))
		} else {
			w.u64(uint64(tag))
			w.u64(val)
		}
	}

	w.padTo(l.dynOff)
	writeDyn(DynTagNeeded, dynstrOffLibm)
	writeDyn(DynTagSoname, dynstrOffMylib)
	writeDyn(DynTagNull, 0)

	w.padTo(l.dynstrOff)
	w.buf.Write(l.dynstr)

	w.padTo(l.shstrOff)
	w.buf.Write(l.shstrtab)

	writeShdr := func(name uint32, typ SectionType, flags SectionFlags, addr, off, size uint64, link, info uint32, alignment, entsize uint64) {
		w.u32(name)
		w.u32(uint32(typ))
		w.word(uint64(flags))
		w.word(addr)
		w.word(off)
		w.word(size)
		w.u32(link)
		w.u32(info)
		w.word(alignment)
		w.word(entsize)
	}

	relaType := SectionTypeRela
	if class == Class32 {
		relaType = SectionTypeRel
	}

	w.padTo(l.shoff)
	writeShdr(0, SectionTypeNull, 0, 0, 0, 0, 0, 0, 0, 0)
	writeShdr(l.shnames[".text"], SectionTypeProgBits, SectionFlagAlloc|SectionFlagExecInstr, fixtureEntry, l.textOff, fixtureTextSize, 0, 0, 16, 0)
	writeShdr(l.shnames[".data"], SectionTypeProgBits, SectionFlagAlloc|SectionFlagWrite, 0x2000, l.dataOff, fixtureDataSize, 0, 0, 8, 0)
	writeShdr(l.shnames[".symtab"], SectionTypeSymtab, 0, 0, l.symOff, 4*l.symEntSize, 4, 1, 8, l.symEntSize)
	writeShdr(l.shnames[".strtab"], SectionTypeStrtab, 0, 0, l.strOff, uint64(len(l.strtab)), 0, 0, 1, 0)
	writeShdr(l.shnames[".rela.text"], relaType, SectionFlagInfoLink, 0, l.relOff, 2*l.relEntSize, 3, 1, 8, l.relEntSize)
	writeShdr(l.shnames[".dynamic"], SectionTypeDynamic, SectionFlagAlloc|SectionFlagWrite, 0x3000, l.dynOff, 3*l.dynEntSize, 7, 0, 8, l.dynEntSize)
	writeShdr(l.shnames[".dynstr"], SectionTypeStrtab, SectionFlagAlloc, 0x3100, l.dynstrOff, uint64(len(l.dynstr)), 0, 0, 1, 0)
	writeShdr(l.shnames[".shstrtab"], SectionTypeStrtab, 0, 0, l.shstrOff, uint64(len(l.shstrtab)), 0, 0, 1, 0)

	return w.buf.Bytes()
}

// writeFixture drops a fixture image into the test's temp dir and returns
// its path.
func writeFixture(t *testing.T, class Class, order binary.ByteOrder) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.elf")
	if err := os.WriteFile(path, buildFixture(class, order), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	return path
}

// openFixture opens a freshly written fixture and registers cleanup.
func openFixture(t *testing.T, class Class, order binary.ByteOrder, mode Mode) *File {
	t.Helper()

	f, err := Open(writeFixture(t, class, order), mode)
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}

	t.Cleanup(func() { _ = f.Close() })

	return f
}
