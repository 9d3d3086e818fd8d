package elf

// On-disk symbol layouts. The field order differs between classes.
type sym32 struct {
	Name  uint32
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16
}

type sym64 struct {
	Name  uint32
	Info  uint8
	Other uint8
	Shndx uint16
	Value uint64
	Size  uint64
}

// Symbol is one decoded symbol table entry.
type Symbol struct {
	class Class
	s32   sym32
	s64   sym64
}

// NameOffset returns the offset of the symbol's name in its string table.
func (s Symbol) NameOffset() uint32 {
	if s.class == Class32 {
		return s.s32.Name
	}

	return s.s64.Name
}

// Value returns the symbol's value, usually an address.
func (s Symbol) Value() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Value)
	}

	return s.s64.Value
}

// Size returns the symbol's size in bytes.
func (s Symbol) Size() uint64 {
	if s.class == Class32 {
		return uint64(s.s32.Size)
	}

	return s.s64.Size
}

// Info returns the packed bind/type byte.
func (s Symbol) Info() byte {
	if s.class == Class32 {
		return s.s32.Info
	}

	return s.s64.Info
}

// Bind returns the symbol binding, the high nibble of the info byte.
func (s Symbol) Bind() SymBind {
	return SymBind(s.Info() >> 4)
}

// Type returns the symbol type, the low nibble of the info byte.
func (s Symbol) Type() SymType {
	return SymType(s.Info() & 0x0f)
}

// Visibility returns the symbol visibility from the other byte.
func (s Symbol) Visibility() SymVisibility {
	if s.class == Class32 {
		return SymVisibility(s.s32.Other & 0x03)
	}

	return SymVisibility(s.s64.Other & 0x03)
}

// SectionIndex returns the index of the section the symbol is defined
// relative to, or one of the special [SectionIndexUndef], [SectionIndexAbs],
// [SectionIndexCommon] values.
func (s Symbol) SectionIndex() uint16 {
	if s.class == Class32 {
		return s.s32.Shndx
	}

	return s.s64.Shndx
}
