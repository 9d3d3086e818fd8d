package elf

// On-disk relocation layouts, with and without addend.
type rel32 struct {
	Offset uint32
	Info   uint32
}

type rela32 struct {
	Offset uint32
	Info   uint32
	Addend int32
}

type rel64 struct {
	Offset uint64
	Info   uint64
}

type rela64 struct {
	Offset uint64
	Info   uint64
	Addend int64
}

// Relocation is one decoded relocation entry, from either a REL or a RELA
// section. The class tag is retained because symbol index and type occupy
// different bit ranges of the info field in each class (24/8 bits for class
// 32, 32/32 bits for class 64).
type Relocation struct {
	class  Class
	rela   bool
	offset uint64
	info   uint64
	addend int64
}

// HasAddend reports whether the entry came from a RELA section.
func (r Relocation) HasAddend() bool {
	return r.rela
}

// Offset returns the location the relocation applies to.
func (r Relocation) Offset() uint64 {
	return r.offset
}

// Info returns the raw packed info field.
func (r Relocation) Info() uint64 {
	return r.info
}

// Addend returns the explicit addend. ok is false for REL entries, which
// carry none.
func (r Relocation) Addend() (addend int64, ok bool) {
	if !r.rela {
		return 0, false
	}

	return r.addend, true
}

// SymbolIndex returns the index into the linked symbol table packed into the
// info field.
func (r Relocation) SymbolIndex() uint32 {
	if r.class == Class32 {
		return uint32(r.info >> 8)
	}

	return uint32(r.info >> 32)
}

// TypeRaw returns the numeric relocation type packed into the info field,
// before any catalog lookup.
func (r Relocation) TypeRaw() uint32 {
	if r.class == Class32 {
		return uint32(r.info & 0xff)
	}

	return uint32(r.info & 0xffffffff)
}

// Type maps the raw relocation type through the catalog of the given
// machine. It fails with [ErrUnknownRelocationArch] when the machine has no
// catalog and [ErrUnknownRelocationCode] when the numeric type is not in it.
func (r Relocation) Type(m Machine) (RelocType, error) {
	return relocTypeFor(m, r.TypeRaw())
}
