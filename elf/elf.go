// Package elf reads and lightly edits ELF object files. A [File] maps the
// whole object into memory and exposes typed views over its headers,
// sections, symbols, dynamic entries, and relocations, hiding the 32/64-bit
// class and byte order of the underlying file.
//
// Returned byte slices alias the mapping and are invalidated by
// [File.Close]. A File must not be used from more than one goroutine at a
// time; multiple read-only Files over the same path are fine.
package elf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/elfscope/elfscope/internal/mmapbuf"
)

// Mode selects whether the file may be edited in place.
type Mode int

const (
	ReadOnly Mode = iota
	ReadWrite
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// File is an open ELF object. Create one with [Open] and release it with
// [File.Close].
type File struct {
	buf *mmapbuf.Buffer
	hdr Header

	// Decoded section headers in section-header-table order; the slice
	// index is the section index.
	sections []*Section

	// Contents of the three well-known string tables. Any of them may be
	// nil when the file does not carry the table.
	shstrtab []byte
	strtab   []byte
	dynstr   []byte

	// Symbol names keyed by name offset, pre-resolved against .strtab and
	// then .dynstr. When an offset resolves in both, the .dynstr string
	// wins.
	symNames map[uint32]string
}

// Open maps the file at path and decodes its headers. In [ReadWrite] mode
// the mapping is writable and [File.ModifySectionData] becomes available.
func Open(path string, mode Mode) (*File, error) {
	ident, err := readIdent(path)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(ident[:4], elfMagic) {
		return nil, ErrBadMagic
	}

	var order binary.ByteOrder
	switch ident[identData] {
	case 1:
		order = binary.LittleEndian
	case 2:
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("EI_DATA is %d: %w", ident[identData], ErrInvalidEndian)
	}

	class := Class(ident[identClass])
	if class != Class32 && class != Class64 {
		return nil, fmt.Errorf("EI_CLASS is %d: %w", ident[identClass], ErrInvalidClass)
	}

	bufMode := mmapbuf.ReadOnly
	if mode == ReadWrite {
		bufMode = mmapbuf.ReadWrite
	}

	buf, err := mmapbuf.Open(path, order, bufMode)
	if err != nil {
		return nil, err
	}

	f := &File{buf: buf}
	if err := f.init(class, ident); err != nil {
		_ = buf.Close()
		return nil, err
	}

	return f, nil
}

func readIdent(path string) ([identSize]byte, error) {
	var ident [identSize]byte

	in, err := os.Open(path)
	if err != nil {
		return ident, fmt.Errorf("failed to open '%s': %w", path, err)
	}
	defer in.Close()

	if _, err := io.ReadFull(in, ident[:]); err != nil {
		return ident, fmt.Errorf("failed to read ident of '%s': %w", path, err)
	}

	return ident, nil
}

func (f *File) init(class Class, ident [identSize]byte) error {
	f.hdr = Header{class: class, ident: ident}

	var err error
	if class == Class32 {
		err = f.buf.ReadRecord(identSize, &f.hdr.h32)
	} else {
		err = f.buf.ReadRecord(identSize, &f.hdr.h64)
	}
	if err != nil {
		return fmt.Errorf("failed to decode file header: %w", err)
	}

	if err := f.loadSections(); err != nil {
		return err
	}

	f.resolveStringTables()
	f.cacheSymbolNames()

	slog.Debug("opened ELF file",
		"class", f.hdr.Class(),
		"machine", f.hdr.Machine(),
		"sections", len(f.sections),
		"cachedSymbolNames", len(f.symNames),
	)

	return nil
}

func (f *File) loadSections() error {
	shoff := f.hdr.SectionHeaderOffset()
	entsize := uint64(f.hdr.SectionHeaderEntrySize())
	count := int(f.hdr.SectionHeaderCount())

	f.sections = make([]*Section, 0, count)

	for i := 0; i < count; i++ {
		sec := &Section{class: f.hdr.class, index: i}

		var err error
		if f.hdr.class == Class32 {
			err = f.buf.ReadRecord(shoff+uint64(i)*entsize, &sec.s32)
		} else {
			err = f.buf.ReadRecord(shoff+uint64(i)*entsize, &sec.s64)
		}
		if err != nil {
			return fmt.Errorf("failed to decode section header %d: %w", i, err)
		}

		f.sections = append(f.sections, sec)
	}

	return nil
}

// resolveStringTables locates .shstrtab by header index and .strtab/.dynstr
// by name. A missing table is recorded as nil, not an error; operations that
// need the table fail later instead.
func (f *File) resolveStringTables() {
	shstrndx := int(f.hdr.StringTableIndex())
	if shstrndx > 0 && shstrndx < len(f.sections) {
		if data, err := f.SectionData(f.sections[shstrndx]); err == nil {
			f.shstrtab = data
		}
	}

	for _, name := range []string{".strtab", ".dynstr"} {
		sec, err := f.SectionByName(name)
		if err != nil {
			continue
		}

		data, err := f.SectionData(sec)
		if err != nil {
			continue
		}

		if name == ".strtab" {
			f.strtab = data
		} else {
			f.dynstr = data
		}
	}
}

// cacheSymbolNames walks every symbol table and resolves each symbol's name
// offset against .strtab and then .dynstr. Distinct symbols sharing an
// offset legally collapse to one entry, since the name is a pure function of
// the offset and the table bytes.
func (f *File) cacheSymbolNames() {
	f.symNames = make(map[uint32]string)

	for _, sec := range f.sections {
		if sec.Type() != SectionTypeSymtab && sec.Type() != SectionTypeDynsym {
			continue
		}

		count, err := sec.EntryCount()
		if err != nil {
			continue
		}

		for i := uint64(0); i < count; i++ {
			sym, err := f.symbolAt(sec.Offset() + i*sec.EntrySize())
			if err != nil {
				continue
			}

			off := sym.NameOffset()
			if f.strtab != nil {
				if name, err := readCString(f.strtab, uint64(off)); err == nil {
					f.symNames[off] = name
				}
			}
			if f.dynstr != nil {
				if name, err := readCString(f.dynstr, uint64(off)); err == nil {
					f.symNames[off] = name
				}
			}
		}
	}
}

func (f *File) symbolAt(off uint64) (Symbol, error) {
	sym := Symbol{class: f.hdr.class}

	var err error
	if f.hdr.class == Class32 {
		err = f.buf.ReadRecord(off, &sym.s32)
	} else {
		err = f.buf.ReadRecord(off, &sym.s64)
	}
	if err != nil {
		return Symbol{}, fmt.Errorf("failed to decode symbol at %d: %w", off, err)
	}

	return sym, nil
}

// Header returns a copy of the decoded file header.
func (f *File) Header() Header {
	return f.hdr
}

// Class returns the file's 32/64-bit class.
func (f *File) Class() Class {
	return f.hdr.Class()
}

// ByteOrder returns the file's declared byte order.
func (f *File) ByteOrder() binary.ByteOrder {
	return f.buf.Order()
}

// Machine returns the file's target architecture.
func (f *File) Machine() Machine {
	return f.hdr.Machine()
}

// SectionByIndex returns the section at the given zero-based index in the
// section-header table.
func (f *File) SectionByIndex(index int) (*Section, error) {
	if index < 0 || index >= len(f.sections) {
		return nil, fmt.Errorf("index %d of %d sections: %w", index, len(f.sections), ErrInvalidSectionIndex)
	}

	return f.sections[index], nil
}

// SectionByName returns the first section whose name matches, in
// section-header-table order.
func (f *File) SectionByName(name string) (*Section, error) {
	for _, sec := range f.sections {
		secName, err := f.SectionName(sec)
		if err != nil {
			continue
		}

		if secName == name {
			return sec, nil
		}
	}

	return nil, fmt.Errorf("no section named '%s': %w", name, ErrSectionNotFound)
}

// SectionByType returns the first section of the given type, in
// section-header-table order.
func (f *File) SectionByType(typ SectionType) (*Section, error) {
	for _, sec := range f.sections {
		if sec.Type() == typ {
			return sec, nil
		}
	}

	return nil, fmt.Errorf("no section of type %s: %w", typ, ErrSectionNotFound)
}

// SectionName reads the section's name from .shstrtab.
func (f *File) SectionName(s *Section) (string, error) {
	if f.shstrtab == nil {
		return "", ErrNoSectionStringTable
	}

	return readCString(f.shstrtab, uint64(s.NameOffset()))
}

// SectionData returns the section's bytes. The slice aliases the mapping
// and is invalidated by [File.Close].
func (f *File) SectionData(s *Section) ([]byte, error) {
	if s.Size() == 0 {
		return nil, fmt.Errorf("section %d: %w", s.index, ErrEmptySection)
	}

	return f.buf.Slice(s.Offset(), s.Size())
}

// SectionDataByName combines [File.SectionByName] and [File.SectionData].
func (f *File) SectionDataByName(name string) ([]byte, error) {
	sec, err := f.SectionByName(name)
	if err != nil {
		return nil, err
	}

	return f.SectionData(sec)
}

// ModifySectionData overwrites the start of the section's content with b.
// The payload must be strictly smaller than the section, so the write can
// never spill into a following section; nothing is resized or relocated.
func (f *File) ModifySectionData(s *Section, b []byte) error {
	if s.Size() == 0 {
		return fmt.Errorf("section %d: %w", s.index, ErrEmptySection)
	}

	if uint64(len(b)) >= s.Size() {
		return fmt.Errorf("%d bytes into section of %d: %w", len(b), s.Size(), ErrOversizedWrite)
	}

	return f.buf.WriteBytes(b, s.Offset())
}

// Persist writes the buffer's current contents to a new file at path. The
// original file is never modified. The file must be open in [ReadWrite]
// mode.
func (f *File) Persist(path string) error {
	return f.buf.PersistTo(path)
}

// SymbolName returns the pre-cached name for the symbol's name offset. A
// zero offset names the empty string in any well-formed string table.
func (f *File) SymbolName(sym Symbol) (string, error) {
	name, ok := f.symNames[sym.NameOffset()]
	if !ok {
		return "", fmt.Errorf("name offset %d: %w", sym.NameOffset(), ErrSymbolNameNotFound)
	}

	return name, nil
}

// DynString resolves the string a dynamic entry's value points at. For tags
// whose value is not a .dynstr offset (anything outside NEEDED, SONAME,
// RPATH, RUNPATH, AUXILIARY, FILTER, CONFIG, DEPAUDIT, AUDIT) it returns
// ok=false and no error. It fails with [ErrDynStringTableNotFound] only when
// the tag is name-bearing and the file has no .dynstr.
func (f *File) DynString(d Dynamic) (name string, ok bool, err error) {
	if !dynTagHasName(d.Tag()) {
		return "", false, nil
	}

	if f.dynstr == nil {
		return "", false, fmt.Errorf("tag %s: %w", d.Tag(), ErrDynStringTableNotFound)
	}

	name, err = readCString(f.dynstr, d.Value())
	if err != nil {
		return "", false, err
	}

	return name, true, nil
}

// LinkedSymbol chases a relocation to the symbol it refers to: the
// relocation section's link field names the symbol table, and the
// relocation's packed symbol index selects the entry within it.
func (f *File) LinkedSymbol(r Relocation, relocSectionIndex int) (Symbol, error) {
	relocSec, err := f.SectionByIndex(relocSectionIndex)
	if err != nil {
		return Symbol{}, err
	}

	link := int(relocSec.Link())
	if link >= len(f.sections) {
		return Symbol{}, fmt.Errorf("link %d of %d sections: %w", link, len(f.sections), ErrInvalidLinkIndex)
	}

	linked := f.sections[link]
	if linked.Type() != SectionTypeSymtab && linked.Type() != SectionTypeDynsym {
		return Symbol{}, fmt.Errorf("section %d has type %s: %w", link, linked.Type(), ErrInvalidLinkedSection)
	}

	count, err := linked.EntryCount()
	if err != nil {
		return Symbol{}, err
	}

	index := uint64(r.SymbolIndex())
	if index >= count {
		return Symbol{}, fmt.Errorf("symbol %d of %d: %w", index, count, ErrInvalidOffset)
	}

	return f.symbolAt(linked.Offset() + index*linked.EntrySize())
}

// Close releases the caches, unmaps the buffer, and closes the file handle.
// Slices previously returned by the File must not be used afterwards.
func (f *File) Close() error {
	f.symNames = nil
	f.sections = nil
	f.shstrtab = nil
	f.strtab = nil
	f.dynstr = nil

	return f.buf.Close()
}
