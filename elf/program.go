package elf

// On-disk program header layouts. Note the flags field sits in a different
// position in each class.
type prog32 struct {
	Type   uint32
	Offset uint32
	Vaddr  uint32
	Paddr  uint32
	Filesz uint32
	Memsz  uint32
	Flags  uint32
	Align  uint32
}

type prog64 struct {
	Type   uint32
	Flags  uint32
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// ProgramHeader describes one load-time segment.
type ProgramHeader struct {
	class Class
	p32   prog32
	p64   prog64
}

// Type returns the segment type.
func (p ProgramHeader) Type() SegmentType {
	if p.class == Class32 {
		return SegmentType(p.p32.Type)
	}

	return SegmentType(p.p64.Type)
}

// Flags returns the segment permission flags.
func (p ProgramHeader) Flags() SegmentFlags {
	if p.class == Class32 {
		return SegmentFlags(p.p32.Flags)
	}

	return SegmentFlags(p.p64.Flags)
}

// Offset returns the segment's file offset.
func (p ProgramHeader) Offset() uint64 {
	if p.class == Class32 {
		return uint64(p.p32.Offset)
	}

	return p.p64.Offset
}

// VirtualAddress returns the segment's load address.
func (p ProgramHeader) VirtualAddress() uint64 {
	if p.class == Class32 {
		return uint64(p.p32.Vaddr)
	}

	return p.p64.Vaddr
}

// PhysicalAddress returns the segment's physical address, where relevant.
func (p ProgramHeader) PhysicalAddress() uint64 {
	if p.class == Class32 {
		return uint64(p.p32.Paddr)
	}

	return p.p64.Paddr
}

// FileSize returns the number of bytes the segment occupies in the file.
func (p ProgramHeader) FileSize() uint64 {
	if p.class == Class32 {
		return uint64(p.p32.Filesz)
	}

	return p.p64.Filesz
}

// MemSize returns the number of bytes the segment occupies in memory.
func (p ProgramHeader) MemSize() uint64 {
	if p.class == Class32 {
		return uint64(p.p32.Memsz)
	}

	return p.p64.Memsz
}

// Align returns the segment's alignment requirement.
func (p ProgramHeader) Align() uint64 {
	if p.class == Class32 {
		return uint64(p.p32.Align)
	}

	return p.p64.Align
}
