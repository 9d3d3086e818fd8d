package elf

import (
	"fmt"
	"io"
)

// ProgramIter is a forward-only cursor over the program-header table. Next
// returns [io.EOF] once the table is exhausted; Reset rewinds to the start.
type ProgramIter struct {
	f     *File
	index int
}

// Programs returns an iterator over the program-header table.
func (f *File) Programs() *ProgramIter {
	return &ProgramIter{f: f}
}

// Len returns the total number of program headers.
func (it *ProgramIter) Len() int {
	return int(it.f.hdr.ProgramHeaderCount())
}

// Next decodes and returns the next program header.
func (it *ProgramIter) Next() (ProgramHeader, error) {
	if it.index >= it.Len() {
		return ProgramHeader{}, io.EOF
	}

	off := it.f.hdr.ProgramHeaderOffset() + uint64(it.index)*uint64(it.f.hdr.ProgramHeaderEntrySize())
	it.index++

	p := ProgramHeader{class: it.f.hdr.class}

	var err error
	if it.f.hdr.class == Class32 {
		err = it.f.buf.ReadRecord(off, &p.p32)
	} else {
		err = it.f.buf.ReadRecord(off, &p.p64)
	}
	if err != nil {
		return ProgramHeader{}, fmt.Errorf("failed to decode program header %d: %w", it.index-1, err)
	}

	return p, nil
}

// Reset rewinds the iterator; a full drain afterwards yields the same
// sequence again.
func (it *ProgramIter) Reset() {
	it.index = 0
}

// SectionIter is a forward-only cursor over the section cache, in
// section-header-table order.
type SectionIter struct {
	f     *File
	index int
}

// Sections returns an iterator over the section-header table.
func (f *File) Sections() *SectionIter {
	return &SectionIter{f: f}
}

// Len returns the total number of sections.
func (it *SectionIter) Len() int {
	return len(it.f.sections)
}

// Next returns the next cached section view.
func (it *SectionIter) Next() (*Section, error) {
	if it.index >= len(it.f.sections) {
		return nil, io.EOF
	}

	sec := it.f.sections[it.index]
	it.index++

	return sec, nil
}

// Reset rewinds the iterator.
func (it *SectionIter) Reset() {
	it.index = 0
}

// tableIter walks the fixed-stride entries of every section whose type is in
// the filter set, visiting sections in section-header-table order and
// entries in ascending file-offset order. Sections with a zero entry size
// are skipped.
type tableIter struct {
	f      *File
	filter []SectionType

	sectionPos int
	entryPos   uint64
	total      uint64

	// Table index of the section the most recently yielded entry came
	// from, -1 before the first yield. Callers chasing relocation links
	// read this mid-traversal.
	current int
}

func newTableIter(f *File, filter []SectionType) tableIter {
	it := tableIter{f: f, filter: filter, current: -1}
	it.total = it.countEntries()

	return it
}

func (it *tableIter) matches(sec *Section) bool {
	if sec.EntrySize() == 0 {
		return false
	}

	for _, typ := range it.filter {
		if sec.Type() == typ {
			return true
		}
	}

	return false
}

func (it *tableIter) countEntries() uint64 {
	total := uint64(0)

	for _, sec := range it.f.sections {
		if it.matches(sec) {
			total += sec.Size() / sec.EntrySize()
		}
	}

	return total
}

// next advances to the next yieldable entry and returns its section and
// file offset, or false when exhausted.
func (it *tableIter) next() (*Section, uint64, bool) {
	for it.sectionPos < len(it.f.sections) {
		sec := it.f.sections[it.sectionPos]
		if !it.matches(sec) {
			it.sectionPos++
			it.entryPos = 0
			continue
		}

		if it.entryPos >= sec.Size()/sec.EntrySize() {
			it.sectionPos++
			it.entryPos = 0
			continue
		}

		off := sec.Offset() + it.entryPos*sec.EntrySize()
		it.entryPos++
		it.current = sec.index

		return sec, off, true
	}

	return nil, 0, false
}

// SectionIndex returns the section-header-table index of the section the
// most recently yielded entry came from, or -1 before the first yield.
func (it *tableIter) SectionIndex() int {
	return it.current
}

// Len returns the total number of entries the iterator will yield over a
// full traversal.
func (it *tableIter) Len() uint64 {
	return it.total
}

// Reset rewinds the iterator. The total is kept from construction, so a
// drained iterator reports the same Len after Reset.
func (it *tableIter) Reset() {
	it.sectionPos = 0
	it.entryPos = 0
	it.current = -1
}

// SymbolIter yields every entry of every SYMTAB and DYNSYM section.
type SymbolIter struct {
	tableIter
}

// Symbols returns an iterator over all symbol table entries.
func (f *File) Symbols() *SymbolIter {
	return &SymbolIter{newTableIter(f, []SectionType{SectionTypeSymtab, SectionTypeDynsym})}
}

// Next decodes and returns the next symbol, or [io.EOF] when exhausted.
func (it *SymbolIter) Next() (Symbol, error) {
	_, off, ok := it.next()
	if !ok {
		return Symbol{}, io.EOF
	}

	return it.f.symbolAt(off)
}

// DynamicIter yields every entry of every DYNAMIC section.
type DynamicIter struct {
	tableIter
}

// Dynamics returns an iterator over all dynamic entries.
func (f *File) Dynamics() *DynamicIter {
	return &DynamicIter{newTableIter(f, []SectionType{SectionTypeDynamic})}
}

// Next decodes and returns the next dynamic entry, or [io.EOF] when
// exhausted.
func (it *DynamicIter) Next() (Dynamic, error) {
	_, off, ok := it.next()
	if !ok {
		return Dynamic{}, io.EOF
	}

	d := Dynamic{class: it.f.hdr.class}

	var err error
	if it.f.hdr.class == Class32 {
		err = it.f.buf.ReadRecord(off, &d.d32)
	} else {
		err = it.f.buf.ReadRecord(off, &d.d64)
	}
	if err != nil {
		return Dynamic{}, fmt.Errorf("failed to decode dynamic entry at %d: %w", off, err)
	}

	return d, nil
}

// RelocIter yields every entry of every REL and RELA section, decoding each
// through the arm matching its section's type.
type RelocIter struct {
	tableIter
}

// Relocations returns an iterator over all relocation entries.
func (f *File) Relocations() *RelocIter {
	return &RelocIter{newTableIter(f, []SectionType{SectionTypeRel, SectionTypeRela})}
}

// Next decodes and returns the next relocation, or [io.EOF] when exhausted.
func (it *RelocIter) Next() (Relocation, error) {
	sec, off, ok := it.next()
	if !ok {
		return Relocation{}, io.EOF
	}

	return it.f.relocationAt(off, sec.Type() == SectionTypeRela)
}

func (f *File) relocationAt(off uint64, hasAddend bool) (Relocation, error) {
	r := Relocation{class: f.hdr.class, rela: hasAddend}

	var err error
	switch {
	case f.hdr.class == Class32 && hasAddend:
		var raw rela32
		if err = f.buf.ReadRecord(off, &raw); err == nil {
			r.offset, r.info, r.addend = uint64(raw.Offset), uint64(raw.Info), int64(raw.Addend)
		}
	case f.hdr.class == Class32:
		var raw rel32
		if err = f.buf.ReadRecord(off, &raw); err == nil {
			r.offset, r.info = uint64(raw.Offset), uint64(raw.Info)
		}
	case hasAddend:
		var raw rela64
		if err = f.buf.ReadRecord(off, &raw); err == nil {
			r.offset, r.info, r.addend = raw.Offset, raw.Info, raw.Addend
		}
	default:
		var raw rel64
		if err = f.buf.ReadRecord(off, &raw); err == nil {
			r.offset, r.info = raw.Offset, raw.Info
		}
	}
	if err != nil {
		return Relocation{}, fmt.Errorf("failed to decode relocation at %d: %w", off, err)
	}

	return r, nil
}
