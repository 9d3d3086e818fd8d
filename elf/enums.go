package elf

import (
	"fmt"
	"strings"
)

// Class selects the 32- or 64-bit on-disk record widths.
type Class byte

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(c))
	}
}

// Type is the object file type from the file header.
type Type uint16

const (
	TypeNone Type = 0
	TypeRel  Type = 1
	TypeExec Type = 2
	TypeDyn  Type = 3
	TypeCore Type = 4
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "NONE"
	case TypeRel:
		return "REL"
	case TypeExec:
		return "EXEC"
	case TypeDyn:
		return "DYN"
	case TypeCore:
		return "CORE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
	}
}

// Machine is the target architecture from the file header.
type Machine uint16

const (
	MachineNone        Machine = 0
	MachineM32         Machine = 1
	MachineSPARC       Machine = 2
	Machine386         Machine = 3
	Machine68K         Machine = 4
	Machine88K         Machine = 5
	MachineMIPS        Machine = 8
	MachinePARISC      Machine = 15
	MachineSPARC32Plus Machine = 18
	MachinePPC         Machine = 20
	MachinePPC64       Machine = 21
	MachineS390        Machine = 22
	MachineARM         Machine = 40
	MachineSuperH      Machine = 42
	MachineSPARCV9     Machine = 43
	MachineIA64        Machine = 50
	MachineX86_64      Machine = 62
	MachineAlpha       Machine = 0x9026
	MachineAArch64     Machine = 183
	MachineRISCV       Machine = 243
	MachineBPF         Machine = 247
	MachineLoongArch   Machine = 258
)

var machineNames = map[Machine]string{
	MachineNone:        "NONE",
	MachineM32:         "M32",
	MachineSPARC:       "SPARC",
	Machine386:         "386",
	Machine68K:         "68K",
	Machine88K:         "88K",
	MachineMIPS:        "MIPS",
	MachinePARISC:      "PARISC",
	MachineSPARC32Plus: "SPARC32PLUS",
	MachinePPC:         "PPC",
	MachinePPC64:       "PPC64",
	MachineS390:        "S390",
	MachineARM:         "ARM",
	MachineSuperH:      "SH",
	MachineSPARCV9:     "SPARCV9",
	MachineIA64:        "IA64",
	MachineX86_64:      "X86_64",
	MachineAlpha:       "ALPHA",
	MachineAArch64:     "AARCH64",
	MachineRISCV:       "RISCV",
	MachineBPF:         "BPF",
	MachineLoongArch:   "LOONGARCH",
}

func (m Machine) String() string {
	if name, ok := machineNames[m]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", uint16(m))
}

// SegmentType is a program header's type field.
type SegmentType uint32

const (
	SegmentTypeNull    SegmentType = 0
	SegmentTypeLoad    SegmentType = 1
	SegmentTypeDynamic SegmentType = 2
	SegmentTypeInterp  SegmentType = 3
	SegmentTypeNote    SegmentType = 4
	SegmentTypeShlib   SegmentType = 5
	SegmentTypePhdr    SegmentType = 6
	SegmentTypeTLS     SegmentType = 7

	SegmentTypeGNUEHFrame SegmentType = 0x6474e550
	SegmentTypeGNUStack   SegmentType = 0x6474e551
	SegmentTypeGNURelro   SegmentType = 0x6474e552
	SegmentTypeGNUProperty SegmentType = 0x6474e553
)

var segmentTypeNames = map[SegmentType]string{
	SegmentTypeNull:        "NULL",
	SegmentTypeLoad:        "LOAD",
	SegmentTypeDynamic:     "DYNAMIC",
	SegmentTypeInterp:      "INTERP",
	SegmentTypeNote:        "NOTE",
	SegmentTypeShlib:       "SHLIB",
	SegmentTypePhdr:        "PHDR",
	SegmentTypeTLS:         "TLS",
	SegmentTypeGNUEHFrame:  "GNU_EH_FRAME",
	SegmentTypeGNUStack:    "GNU_STACK",
	SegmentTypeGNURelro:    "GNU_RELRO",
	SegmentTypeGNUProperty: "GNU_PROPERTY",
}

func (t SegmentType) String() string {
	if name, ok := segmentTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(0x%x)", uint32(t))
}

// SegmentFlags is a program header's flags field.
type SegmentFlags uint32

const (
	SegmentFlagExecute SegmentFlags = 0x1
	SegmentFlagWrite   SegmentFlags = 0x2
	SegmentFlagRead    SegmentFlags = 0x4
)

// String renders the flags readelf-style, e.g. "RWE" or "R E".
func (f SegmentFlags) String() string {
	var sb strings.Builder

	for _, flag := range []struct {
		bit SegmentFlags
		r   byte
	}{
		{SegmentFlagRead, 'R'},
		{SegmentFlagWrite, 'W'},
		{SegmentFlagExecute, 'E'},
	} {
		if f&flag.bit != 0 {
			sb.WriteByte(flag.r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// SectionType is a section header's type field.
type SectionType uint32

const (
	SectionTypeNull          SectionType = 0
	SectionTypeProgBits      SectionType = 1
	SectionTypeSymtab        SectionType = 2
	SectionTypeStrtab        SectionType = 3
	SectionTypeRela          SectionType = 4
	SectionTypeHash          SectionType = 5
	SectionTypeDynamic       SectionType = 6
	SectionTypeNote          SectionType = 7
	SectionTypeNobits        SectionType = 8
	SectionTypeRel           SectionType = 9
	SectionTypeShlib         SectionType = 10
	SectionTypeDynsym        SectionType = 11
	SectionTypeInitArray     SectionType = 14
	SectionTypeFiniArray     SectionType = 15
	SectionTypePreinitArray  SectionType = 16
	SectionTypeGroup         SectionType = 17
	SectionTypeSymtabShndx   SectionType = 18
	SectionTypeRelr          SectionType = 19
	SectionTypeGNUAttributes SectionType = 0x6ffffff5
	SectionTypeGNUHash       SectionType = 0x6ffffff6
	SectionTypeGNULiblist    SectionType = 0x6ffffff7
	SectionTypeGNUVerdef     SectionType = 0x6ffffffd
	SectionTypeGNUVerneed    SectionType = 0x6ffffffe
	SectionTypeGNUVersym     SectionType = 0x6fffffff
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeNull:          "NULL",
	SectionTypeProgBits:      "PROGBITS",
	SectionTypeSymtab:        "SYMTAB",
	SectionTypeStrtab:        "STRTAB",
	SectionTypeRela:          "RELA",
	SectionTypeHash:          "HASH",
	SectionTypeDynamic:       "DYNAMIC",
	SectionTypeNote:          "NOTE",
	SectionTypeNobits:        "NOBITS",
	SectionTypeRel:           "REL",
	SectionTypeShlib:         "SHLIB",
	SectionTypeDynsym:        "DYNSYM",
	SectionTypeInitArray:     "INIT_ARRAY",
	SectionTypeFiniArray:     "FINI_ARRAY",
	SectionTypePreinitArray:  "PREINIT_ARRAY",
	SectionTypeGroup:         "GROUP",
	SectionTypeSymtabShndx:   "SYMTAB_SHNDX",
	SectionTypeRelr:          "RELR",
	SectionTypeGNUAttributes: "GNU_ATTRIBUTES",
	SectionTypeGNUHash:       "GNU_HASH",
	SectionTypeGNULiblist:    "GNU_LIBLIST",
	SectionTypeGNUVerdef:     "VERDEF",
	SectionTypeGNUVerneed:    "VERNEED",
	SectionTypeGNUVersym:     "VERSYM",
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(0x%x)", uint32(t))
}

// SectionFlags is a section header's flags field, widened to 64 bits for
// both classes.
type SectionFlags uint64

const (
	SectionFlagWrite          SectionFlags = 0x1
	SectionFlagAlloc          SectionFlags = 0x2
	SectionFlagExecInstr      SectionFlags = 0x4
	SectionFlagMerge          SectionFlags = 0x10
	SectionFlagStrings        SectionFlags = 0x20
	SectionFlagInfoLink       SectionFlags = 0x40
	SectionFlagLinkOrder      SectionFlags = 0x80
	SectionFlagOSNonConforming SectionFlags = 0x100
	SectionFlagGroup          SectionFlags = 0x200
	SectionFlagTLS            SectionFlags = 0x400
	SectionFlagCompressed     SectionFlags = 0x800
)

var sectionFlagNames = []struct {
	bit  SectionFlags
	name string
}{
	{SectionFlagWrite, "WRITE"},
	{SectionFlagAlloc, "ALLOC"},
	{SectionFlagExecInstr, "EXECINSTR"},
	{SectionFlagMerge, "MERGE"},
	{SectionFlagStrings, "STRINGS"},
	{SectionFlagInfoLink, "INFO_LINK"},
	{SectionFlagLinkOrder, "LINK_ORDER"},
	{SectionFlagOSNonConforming, "OS_NONCONFORMING"},
	{SectionFlagGroup, "GROUP"},
	{SectionFlagTLS, "TLS"},
	{SectionFlagCompressed, "COMPRESSED"},
}

// Split decomposes the flags into their individual known bits. Bits with no
// catalog entry are dropped.
func (f SectionFlags) Split() []SectionFlags {
	var flags []SectionFlags

	for _, known := range sectionFlagNames {
		if f&known.bit != 0 {
			flags = append(flags, known.bit)
		}
	}

	return flags
}

func (f SectionFlags) String() string {
	if f == 0 {
		return ""
	}

	var names []string
	rest := f

	for _, known := range sectionFlagNames {
		if f&known.bit != 0 {
			names = append(names, known.name)
			rest &^= known.bit
		}
	}

	if rest != 0 {
		names = append(names, fmt.Sprintf("UNKNOWN(0x%x)", uint64(rest)))
	}

	return strings.Join(names, "+")
}

// SymBind is the binding half of a symbol's info field.
type SymBind byte

const (
	SymBindLocal  SymBind = 0
	SymBindGlobal SymBind = 1
	SymBindWeak   SymBind = 2
)

func (b SymBind) String() string {
	switch b {
	case SymBindLocal:
		return "LOCAL"
	case SymBindGlobal:
		return "GLOBAL"
	case SymBindWeak:
		return "WEAK"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(b))
	}
}

// SymType is the type half of a symbol's info field.
type SymType byte

const (
	SymTypeNoType  SymType = 0
	SymTypeObject  SymType = 1
	SymTypeFunc    SymType = 2
	SymTypeSection SymType = 3
	SymTypeFile    SymType = 4
	SymTypeCommon  SymType = 5
	SymTypeTLS     SymType = 6
	SymTypeGNUIFunc SymType = 10
)

func (t SymType) String() string {
	switch t {
	case SymTypeNoType:
		return "NOTYPE"
	case SymTypeObject:
		return "OBJECT"
	case SymTypeFunc:
		return "FUNC"
	case SymTypeSection:
		return "SECTION"
	case SymTypeFile:
		return "FILE"
	case SymTypeCommon:
		return "COMMON"
	case SymTypeTLS:
		return "TLS"
	case SymTypeGNUIFunc:
		return "GNU_IFUNC"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(t))
	}
}

// SymVisibility is a symbol's other field.
type SymVisibility byte

const (
	SymVisibilityDefault   SymVisibility = 0
	SymVisibilityInternal  SymVisibility = 1
	SymVisibilityHidden    SymVisibility = 2
	SymVisibilityProtected SymVisibility = 3
)

func (v SymVisibility) String() string {
	switch v {
	case SymVisibilityDefault:
		return "DEFAULT"
	case SymVisibilityInternal:
		return "INTERNAL"
	case SymVisibilityHidden:
		return "HIDDEN"
	case SymVisibilityProtected:
		return "PROTECTED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(v))
	}
}

// Special section indices that do not name real sections.
const (
	SectionIndexUndef  uint16 = 0
	SectionIndexAbs    uint16 = 0xfff1
	SectionIndexCommon uint16 = 0xfff2
)

// DynTag is a dynamic entry's tag field, widened to 64 bits for both
// classes.
type DynTag int64

const (
	DynTagNull            DynTag = 0
	DynTagNeeded          DynTag = 1
	DynTagPLTRelSize      DynTag = 2
	DynTagPLTGOT          DynTag = 3
	DynTagHash            DynTag = 4
	DynTagStrtab          DynTag = 5
	DynTagSymtab          DynTag = 6
	DynTagRela            DynTag = 7
	DynTagRelaSize        DynTag = 8
	DynTagRelaEnt         DynTag = 9
	DynTagStrSize         DynTag = 10
	DynTagSymEnt          DynTag = 11
	DynTagInit            DynTag = 12
	DynTagFini            DynTag = 13
	DynTagSoname          DynTag = 14
	DynTagRpath           DynTag = 15
	DynTagSymbolic        DynTag = 16
	DynTagRel             DynTag = 17
	DynTagRelSize         DynTag = 18
	DynTagRelEnt          DynTag = 19
	DynTagPLTRel          DynTag = 20
	DynTagDebug           DynTag = 21
	DynTagTextRel         DynTag = 22
	DynTagJmpRel          DynTag = 23
	DynTagBindNow         DynTag = 24
	DynTagInitArray       DynTag = 25
	DynTagFiniArray       DynTag = 26
	DynTagInitArraySize   DynTag = 27
	DynTagFiniArraySize   DynTag = 28
	DynTagRunpath         DynTag = 29
	DynTagFlags           DynTag = 30
	DynTagPreinitArray    DynTag = 32
	DynTagPreinitArraySize DynTag = 33
	DynTagSymtabShndx     DynTag = 34
	DynTagRelrSize        DynTag = 35
	DynTagRelr            DynTag = 36
	DynTagRelrEnt         DynTag = 37

	DynTagGNUHash    DynTag = 0x6ffffef5
	DynTagVerSym     DynTag = 0x6ffffff0
	DynTagRelaCount  DynTag = 0x6ffffff9
	DynTagRelCount   DynTag = 0x6ffffffa
	DynTagFlags1     DynTag = 0x6ffffffb
	DynTagVerDef     DynTag = 0x6ffffffc
	DynTagVerDefNum  DynTag = 0x6ffffffd
	DynTagVerNeed    DynTag = 0x6ffffffe
	DynTagVerNeedNum DynTag = 0x6fffffff

	DynTagAuxiliary DynTag = 0x7ffffffd
	DynTagUsed      DynTag = 0x7ffffffe
	DynTagFilter    DynTag = 0x7fffffff

	DynTagConfig   DynTag = 0x6ffffefa
	DynTagDepAudit DynTag = 0x6ffffefb
	DynTagAudit    DynTag = 0x6ffffefc
)

var dynTagNames = map[DynTag]string{
	DynTagNull:             "NULL",
	DynTagNeeded:           "NEEDED",
	DynTagPLTRelSize:       "PLTRELSZ",
	DynTagPLTGOT:           "PLTGOT",
	DynTagHash:             "HASH",
	DynTagStrtab:           "STRTAB",
	DynTagSymtab:           "SYMTAB",
	DynTagRela:             "RELA",
	DynTagRelaSize:         "RELASZ",
	DynTagRelaEnt:          "RELAENT",
	DynTagStrSize:          "STRSZ",
	DynTagSymEnt:           "SYMENT",
	DynTagInit:             "INIT",
	DynTagFini:             "FINI",
	DynTagSoname:           "SONAME",
	DynTagRpath:            "RPATH",
	DynTagSymbolic:         "SYMBOLIC",
	DynTagRel:              "REL",
	DynTagRelSize:          "RELSZ",
	DynTagRelEnt:           "RELENT",
	DynTagPLTRel:           "PLTREL",
	DynTagDebug:            "DEBUG",
	DynTagTextRel:          "TEXTREL",
	DynTagJmpRel:           "JMPREL",
	DynTagBindNow:          "BIND_NOW",
	DynTagInitArray:        "INIT_ARRAY",
	DynTagFiniArray:        "FINI_ARRAY",
	DynTagInitArraySize:    "INIT_ARRAYSZ",
	DynTagFiniArraySize:    "FINI_ARRAYSZ",
	DynTagRunpath:          "RUNPATH",
	DynTagFlags:            "FLAGS",
	DynTagPreinitArray:     "PREINIT_ARRAY",
	DynTagPreinitArraySize: "PREINIT_ARRAYSZ",
	DynTagSymtabShndx:      "SYMTAB_SHNDX",
	DynTagRelrSize:         "RELRSZ",
	DynTagRelr:             "RELR",
	DynTagRelrEnt:          "RELRENT",
	DynTagGNUHash:          "GNU_HASH",
	DynTagVerSym:           "VERSYM",
	DynTagRelaCount:        "RELACOUNT",
	DynTagRelCount:         "RELCOUNT",
	DynTagFlags1:           "FLAGS_1",
	DynTagVerDef:           "VERDEF",
	DynTagVerDefNum:        "VERDEFNUM",
	DynTagVerNeed:          "VERNEED",
	DynTagVerNeedNum:       "VERNEEDNUM",
	DynTagAuxiliary:        "AUXILIARY",
	DynTagUsed:             "USED",
	DynTagFilter:           "FILTER",
	DynTagConfig:           "CONFIG",
	DynTagDepAudit:         "DEPAUDIT",
	DynTagAudit:            "AUDIT",
}

func (t DynTag) String() string {
	if name, ok := dynTagNames[t]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(0x%x)", int64(t))
}

// OSABI is the operating system / ABI ident byte.
type OSABI byte

const (
	OSABINone    OSABI = 0
	OSABIHPUX    OSABI = 1
	OSABINetBSD  OSABI = 2
	OSABILinux   OSABI = 3
	OSABISolaris OSABI = 6
	OSABIAIX     OSABI = 7
	OSABIIrix    OSABI = 8
	OSABIFreeBSD OSABI = 9
	OSABIOpenBSD OSABI = 12
)

var osabiNames = map[OSABI]string{
	OSABINone:    "SYSV",
	OSABIHPUX:    "HPUX",
	OSABINetBSD:  "NETBSD",
	OSABILinux:   "LINUX",
	OSABISolaris: "SOLARIS",
	OSABIAIX:     "AIX",
	OSABIIrix:    "IRIX",
	OSABIFreeBSD: "FREEBSD",
	OSABIOpenBSD: "OPENBSD",
}

func (o OSABI) String() string {
	if name, ok := osabiNames[o]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", byte(o))
}
