package elf

// On-disk section header layouts.
type sect32 struct {
	Name      uint32
	Type      uint32
	Flags     uint32
	Addr      uint32
	Offset    uint32
	Size      uint32
	Link      uint32
	Info      uint32
	Addralign uint32
	Entsize   uint32
}

type sect64 struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// Section is one decoded section header together with its index in the
// section-header table.
type Section struct {
	class Class
	s32   sect32
	s64   sect64

	// Index of the section as it appears in the ELF file.
	index int
}

// Index returns the section's zero-based position in the section-header
// table.
func (s *Section) Index() int {
	return s.index
}

// NameOffset returns the offset of the section's name in .shstrtab.
func (s *Section) NameOffset() uint32 {
	if s.class == Class32 {
		return s.s32.Name
	}

	return s.s64.Name
}

// Type returns the section type.
func (s *Section) Type() SectionType {
	if s.class == Class32 {
		return SectionType(s.s32.Type)
	}

	return SectionType(s.s64.Type)
}

// Flags returns the section flags, widened to 64 bits.
func (s *Section) Flags() SectionFlags {
	if s.class == Class32 {
		return SectionFlags(s.s32.Flags)
	}

	return SectionFlags(s.s64.Flags)
}

// Addr returns the section's virtual address.
func (s *Section) Addr() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Addr)
	}

	return s.s64.Addr
}

// Offset returns the section's file offset.
func (s *Section) Offset() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Offset)
	}

	return s.s64.Offset
}

// Size returns the section's size in bytes.
func (s *Section) Size() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Size)
	}

	return s.s64.Size
}

// Link returns the index of the related section, e.g. the symbol table a
// relocation section refers to.
func (s *Section) Link() uint32 {
	if s.class == Class32 {
		return s.s32.Link
	}

	return s.s64.Link
}

// Info holds extra section-type-specific information.
func (s *Section) Info() uint32 {
	if s.class == Class32 {
		return s.s32.Info
	}

	return s.s64.Info
}

// Addralign returns the section's alignment requirement.
func (s *Section) Addralign() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Addralign)
	}

	return s.s64.Addralign
}

// EntrySize returns the fixed stride of records in the section, or zero if
// the section is not an array of entries.
func (s *Section) EntrySize() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Entsize)
	}

	return s.s64.Entsize
}

// EntryCount returns the number of fixed-stride entries in the section.
func (s *Section) EntryCount() (uint64, error) {
	if s.EntrySize() == 0 {
		return 0, ErrZeroEntrySize
	}

	return s.Size() / s.EntrySize(), nil
}
