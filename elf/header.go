package elf

import "encoding/binary"

// identSize is the length of the e_ident prefix of the file header.
const identSize = 16

// Byte indices into e_ident.
const (
	identClass      = 4
	identData       = 5
	identVersion    = 6
	identOSABI      = 7
	identABIVersion = 8
)

// On-disk file header layouts, minus the 16-byte ident prefix. Field order
// matches the gABI; only the entry/offset widths differ between classes.
type header32 struct {
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint32
	Phoff     uint32
	Shoff     uint32
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

type header64 struct {
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// Header is the decoded ELF file header. It wraps the class-specific on-disk
// layout; accessors widen fields to class-independent types.
type Header struct {
	class Class
	ident [identSize]byte
	h32   header32
	h64   header64
}

// Class returns the file's 32/64-bit class.
func (h Header) Class() Class {
	return h.class
}

// OSABI returns the operating system / ABI ident byte.
func (h Header) OSABI() OSABI {
	return OSABI(h.ident[identOSABI])
}

// ABIVersion returns the ABI version ident byte.
func (h Header) ABIVersion() byte {
	return h.ident[identABIVersion]
}

// ByteOrder returns the byte order declared by the EI_DATA ident byte.
func (h Header) ByteOrder() binary.ByteOrder {
	if h.ident[identData] == 2 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Type returns the object file type.
func (h Header) Type() Type {
	if h.class == Class32 {
		return Type(h.h32.Type)
	}

	return Type(h.h64.Type)
}

// Machine returns the target architecture.
func (h Header) Machine() Machine {
	if h.class == Class32 {
		return Machine(h.h32.Machine)
	}

	return Machine(h.h64.Machine)
}

// Version returns the object file version.
func (h Header) Version() uint32 {
	if h.class == Class32 {
		return h.h32.Version
	}

	return h.h64.Version
}

// Entry returns the program entry point address.
func (h Header) Entry() uint64 {
	if h.class == Class32 {
		return uint64(h.h32.Entry)
	}

	return h.h64.Entry
}

// Flags returns the processor-specific flags.
func (h Header) Flags() uint32 {
	if h.class == Class32 {
		return h.h32.Flags
	}

	return h.h64.Flags
}

// HeaderSize returns the size of the file header on disk.
func (h Header) HeaderSize() uint16 {
	if h.class == Class32 {
		return h.h32.Ehsize
	}

	return h.h64.Ehsize
}

// ProgramHeaderOffset returns the file offset of the program-header table.
func (h Header) ProgramHeaderOffset() uint64 {
	if h.class == Class32 {
		return uint64(h.h32.Phoff)
	}

	return h.h64.Phoff
}

// ProgramHeaderEntrySize returns the stride of the program-header table.
func (h Header) ProgramHeaderEntrySize() uint16 {
	if h.class == Class32 {
		return h.h32.Phentsize
	}

	return h.h64.Phentsize
}

// ProgramHeaderCount returns the number of program headers.
func (h Header) ProgramHeaderCount() uint16 {
	if h.class == Class32 {
		return h.h32.Phnum
	}

	return h.h64.Phnum
}

// SectionHeaderOffset returns the file offset of the section-header table.
func (h Header) SectionHeaderOffset() uint64 {
	if h.class == Class32 {
		return uint64(h.h32.Shoff)
	}

	return h.h64.Shoff
}

// SectionHeaderEntrySize returns the stride of the section-header table.
func (h Header) SectionHeaderEntrySize() uint16 {
	if h.class == Class32 {
		return h.h32.Shentsize
	}

	return h.h64.Shentsize
}

// SectionHeaderCount returns the number of section headers.
func (h Header) SectionHeaderCount() uint16 {
	if h.class == Class32 {
		return h.h32.Shnum
	}

	return h.h64.Shnum
}

// StringTableIndex returns the section index of the section name string
// table.
func (h Header) StringTableIndex() uint16 {
	if h.class == Class32 {
		return h.h32.Shstrndx
	}

	return h.h64.Shstrndx
}
