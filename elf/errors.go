package elf

import (
	"errors"

	"github.com/elfscope/elfscope/internal/mmapbuf"
)

var (
	// ErrBadMagic means the file does not start with \x7fELF.
	ErrBadMagic = errors.New("file does not carry the ELF magic")

	// ErrInvalidClass means the EI_CLASS ident byte is neither 32- nor
	// 64-bit.
	ErrInvalidClass = errors.New("unrecognised ELF class")

	// ErrInvalidEndian means the EI_DATA ident byte is neither little- nor
	// big-endian.
	ErrInvalidEndian = errors.New("unrecognised ELF data encoding")

	// ErrInvalidOffset is returned when a decode would read past the end of
	// the mapped file.
	ErrInvalidOffset = mmapbuf.ErrInvalidOffset

	// ErrNotMutable is returned by mutating operations on a file opened
	// read-only.
	ErrNotMutable = mmapbuf.ErrNotMutable

	// ErrSectionNotFound is returned by section lookups with no match.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidSectionIndex is returned when a section index is outside
	// the section-header table.
	ErrInvalidSectionIndex = errors.New("section index out of range")

	// ErrEmptySection is returned when section content is requested for a
	// zero-sized section.
	ErrEmptySection = errors.New("section has no content")

	// ErrNoSectionStringTable means the file has no usable .shstrtab.
	ErrNoSectionStringTable = errors.New("no section name string table")

	// ErrDynStringTableNotFound means a dynamic entry carries a string
	// offset but the file has no .dynstr.
	ErrDynStringTableNotFound = errors.New("no dynamic string table")

	// ErrInvalidNameOffset means a name offset lies outside its string
	// table.
	ErrInvalidNameOffset = errors.New("name offset out of string table range")

	// ErrSymbolNameNotFound means no string table resolved the symbol's
	// name offset.
	ErrSymbolNameNotFound = errors.New("symbol name not found")

	// ErrZeroEntrySize is returned when entries are requested from a
	// section whose entry size is zero.
	ErrZeroEntrySize = errors.New("section has zero entry size")

	// ErrInvalidLinkIndex means a relocation section's link field does not
	// name a valid section.
	ErrInvalidLinkIndex = errors.New("relocation link index out of range")

	// ErrInvalidLinkedSection means a relocation section's link names a
	// section that is not a symbol table.
	ErrInvalidLinkedSection = errors.New("linked section is not a symbol table")

	// ErrUnknownRelocationArch means no relocation-type catalog exists for
	// the machine.
	ErrUnknownRelocationArch = errors.New("no relocation catalog for machine")

	// ErrUnknownRelocationCode means the relocation's numeric type is not
	// in the machine's catalog.
	ErrUnknownRelocationCode = errors.New("relocation type not in machine catalog")

	// ErrOversizedWrite is returned when a section overwrite payload is not
	// strictly smaller than the section.
	ErrOversizedWrite = errors.New("payload does not fit inside section")
)
