package elf

import "fmt"

// RelocType is a machine-specific relocation type. Concrete values are the
// per-architecture types below; the machine tag travels with the value so
// callers can print or switch on it without carrying the header around.
type RelocType interface {
	fmt.Stringer

	// Raw returns the numeric code as extracted from r_info.
	Raw() uint32

	// Machine returns the architecture the code belongs to.
	Machine() Machine
}

// relocTypeFor maps a raw relocation code into the catalog of the given
// machine. Machines without a catalog and codes outside the catalog both
// error; this is the one place where an unknown numeric value is not folded
// to a sentinel.
func relocTypeFor(m Machine, raw uint32) (RelocType, error) {
	switch m {
	case MachineX86_64:
		return lookupReloc(RelocX86_64(raw), relocNamesX86_64)
	case Machine386:
		return lookupReloc(Reloc386(raw), relocNames386)
	case MachineAArch64:
		return lookupReloc(RelocAArch64(raw), relocNamesAArch64)
	case MachineARM:
		return lookupReloc(RelocARM(raw), relocNamesARM)
	case MachineRISCV:
		return lookupReloc(RelocRISCV(raw), relocNamesRISCV)
	case MachineMIPS:
		return lookupReloc(RelocMIPS(raw), relocNamesMIPS)
	case MachineSPARC, MachineSPARC32Plus, MachineSPARCV9:
		return lookupReloc(RelocSPARC(raw), relocNamesSPARC)
	case MachinePPC:
		return lookupReloc(RelocPPC(raw), relocNamesPPC)
	case MachinePPC64:
		return lookupReloc(RelocPPC64(raw), relocNamesPPC64)
	case MachineS390:
		return lookupReloc(RelocS390(raw), relocNamesS390)
	case MachineAlpha:
		return lookupReloc(RelocAlpha(raw), relocNamesAlpha)
	case MachineLoongArch:
		return lookupReloc(RelocLoongArch(raw), relocNamesLoongArch)
	default:
		return nil, fmt.Errorf("machine %s: %w", m, ErrUnknownRelocationArch)
	}
}

func lookupReloc[T interface {
	comparable
	RelocType
}](typ T, names map[T]string) (RelocType, error) {
	if _, ok := names[typ]; !ok {
		return nil, fmt.Errorf("type %d on %s: %w", typ.Raw(), typ.Machine(), ErrUnknownRelocationCode)
	}

	return typ, nil
}

// RelocX86_64 is an x86-64 relocation type.
type RelocX86_64 uint32

const (
	RX8664None          RelocX86_64 = 0
	RX866464            RelocX86_64 = 1
	RX8664PC32          RelocX86_64 = 2
	RX8664GOT32         RelocX86_64 = 3
	RX8664PLT32         RelocX86_64 = 4
	RX8664Copy          RelocX86_64 = 5
	RX8664GlobDat       RelocX86_64 = 6
	RX8664JmpSlot       RelocX86_64 = 7
	RX8664Relative      RelocX86_64 = 8
	RX8664GOTPCRel      RelocX86_64 = 9
	RX866432            RelocX86_64 = 10
	RX866432S           RelocX86_64 = 11
	RX866416            RelocX86_64 = 12
	RX8664PC16          RelocX86_64 = 13
	RX86648             RelocX86_64 = 14
	RX8664PC8           RelocX86_64 = 15
	RX8664DTPMod64      RelocX86_64 = 16
	RX8664DTPOff64      RelocX86_64 = 17
	RX8664TPOff64       RelocX86_64 = 18
	RX8664TLSGD         RelocX86_64 = 19
	RX8664TLSLD         RelocX86_64 = 20
	RX8664DTPOff32      RelocX86_64 = 21
	RX8664GOTTPOff      RelocX86_64 = 22
	RX8664TPOff32       RelocX86_64 = 23
	RX8664PC64          RelocX86_64 = 24
	RX8664GOTOff64      RelocX86_64 = 25
	RX8664GOTPC32       RelocX86_64 = 26
	RX8664Size32        RelocX86_64 = 32
	RX8664Size64        RelocX86_64 = 33
	RX8664GOTPC32TLSDesc RelocX86_64 = 34
	RX8664TLSDescCall   RelocX86_64 = 35
	RX8664TLSDesc       RelocX86_64 = 36
	RX8664IRelative     RelocX86_64 = 37
	RX8664Relative64    RelocX86_64 = 38
	RX8664GOTPCRelX     RelocX86_64 = 41
	RX8664RexGOTPCRelX  RelocX86_64 = 42
)

var relocNamesX86_64 = map[RelocX86_64]string{
	RX8664None:           "R_X86_64_NONE",
	RX866464:             "R_X86_64_64",
	RX8664PC32:           "R_X86_64_PC32",
	RX8664GOT32:          "R_X86_64_GOT32",
	RX8664PLT32:          "R_X86_64_PLT32",
	RX8664Copy:           "R_X86_64_COPY",
	RX8664GlobDat:        "R_X86_64_GLOB_DAT",
	RX8664JmpSlot:        "R_X86_64_JUMP_SLOT",
	RX8664Relative:       "R_X86_64_RELATIVE",
	RX8664GOTPCRel:       "R_X86_64_GOTPCREL",
	RX866432:             "R_X86_64_32",
	RX866432S:            "R_X86_64_32S",
	RX866416:             "R_X86_64_16",
	RX8664PC16:           "R_X86_64_PC16",
	RX86648:              "R_X86_64_8",
	RX8664PC8:            "R_X86_64_PC8",
	RX8664DTPMod64:       "R_X86_64_DTPMOD64",
	RX8664DTPOff64:       "R_X86_64_DTPOFF64",
	RX8664TPOff64:        "R_X86_64_TPOFF64",
	RX8664TLSGD:          "R_X86_64_TLSGD",
	RX8664TLSLD:          "R_X86_64_TLSLD",
	RX8664DTPOff32:       "R_X86_64_DTPOFF32",
	RX8664GOTTPOff:       "R_X86_64_GOTTPOFF",
	RX8664TPOff32:        "R_X86_64_TPOFF32",
	RX8664PC64:           "R_X86_64_PC64",
	RX8664GOTOff64:       "R_X86_64_GOTOFF64",
	RX8664GOTPC32:        "R_X86_64_GOTPC32",
	RX8664Size32:         "R_X86_64_SIZE32",
	RX8664Size64:         "R_X86_64_SIZE64",
	RX8664GOTPC32TLSDesc: "R_X86_64_GOTPC32_TLSDESC",
	RX8664TLSDescCall:    "R_X86_64_TLSDESC_CALL",
	RX8664TLSDesc:        "R_X86_64_TLSDESC",
	RX8664IRelative:      "R_X86_64_IRELATIVE",
	RX8664Relative64:     "R_X86_64_RELATIVE64",
	RX8664GOTPCRelX:      "R_X86_64_GOTPCRELX",
	RX8664RexGOTPCRelX:   "R_X86_64_REX_GOTPCRELX",
}

func (r RelocX86_64) Raw() uint32 { return uint32(r) }
func (RelocX86_64) Machine() Machine { return MachineX86_64 }
func (r RelocX86_64) String() string { return relocString(r, relocNamesX86_64) }

// Reloc386 is an i386 relocation type.
type Reloc386 uint32

const (
	R386None     Reloc386 = 0
	R38632       Reloc386 = 1
	R386PC32     Reloc386 = 2
	R386GOT32    Reloc386 = 3
	R386PLT32    Reloc386 = 4
	R386Copy     Reloc386 = 5
	R386GlobDat  Reloc386 = 6
	R386JmpSlot  Reloc386 = 7
	R386Relative Reloc386 = 8
	R386GOTOff   Reloc386 = 9
	R386GOTPC    Reloc386 = 10
	R386TLSTPOff Reloc386 = 14
	R386TLSIE    Reloc386 = 15
	R386TLSGOTIE Reloc386 = 16
	R386TLSLE    Reloc386 = 17
	R386TLSGD    Reloc386 = 18
	R386TLSLDM   Reloc386 = 19
	R38616       Reloc386 = 20
	R386PC16     Reloc386 = 21
	R3868        Reloc386 = 22
	R386PC8      Reloc386 = 23
	R386Size32   Reloc386 = 38
	R386IRelative Reloc386 = 42
	R386GOT32X   Reloc386 = 43
)

var relocNames386 = map[Reloc386]string{
	R386None:      "R_386_NONE",
	R38632:        "R_386_32",
	R386PC32:      "R_386_PC32",
	R386GOT32:     "R_386_GOT32",
	R386PLT32:     "R_386_PLT32",
	R386Copy:      "R_386_COPY",
	R386GlobDat:   "R_386_GLOB_DAT",
	R386JmpSlot:   "R_386_JMP_SLOT",
	R386Relative:  "R_386_RELATIVE",
	R386GOTOff:    "R_386_GOTOFF",
	R386GOTPC:     "R_386_GOTPC",
	R386TLSTPOff:  "R_386_TLS_TPOFF",
	R386TLSIE:     "R_386_TLS_IE",
	R386TLSGOTIE:  "R_386_TLS_GOTIE",
	R386TLSLE:     "R_386_TLS_LE",
	R386TLSGD:     "R_386_TLS_GD",
	R386TLSLDM:    "R_386_TLS_LDM",
	R38616:        "R_386_16",
	R386PC16:      "R_386_PC16",
	R3868:         "R_386_8",
	R386PC8:       "R_386_PC8",
	R386Size32:    "R_386_SIZE32",
	R386IRelative: "R_386_IRELATIVE",
	R386GOT32X:    "R_386_GOT32X",
}

func (r Reloc386) Raw() uint32 { return uint32(r) }
func (Reloc386) Machine() Machine { return Machine386 }
func (r Reloc386) String() string { return relocString(r, relocNames386) }

// RelocAArch64 is an AArch64 relocation type.
type RelocAArch64 uint32

const (
	RAArch64None      RelocAArch64 = 0
	RAArch64Abs64     RelocAArch64 = 257
	RAArch64Abs32     RelocAArch64 = 258
	RAArch64Abs16     RelocAArch64 = 259
	RAArch64PRel64    RelocAArch64 = 260
	RAArch64PRel32    RelocAArch64 = 261
	RAArch64PRel16    RelocAArch64 = 262
	RAArch64Call26    RelocAArch64 = 283
	RAArch64Jump26    RelocAArch64 = 282
	RAArch64AdrPrelPgHi21 RelocAArch64 = 275
	RAArch64AddAbsLo12NC  RelocAArch64 = 277
	RAArch64LdSt64AbsLo12NC RelocAArch64 = 286
	RAArch64Copy      RelocAArch64 = 1024
	RAArch64GlobDat   RelocAArch64 = 1025
	RAArch64JumpSlot  RelocAArch64 = 1026
	RAArch64Relative  RelocAArch64 = 1027
	RAArch64TLSDtpMod64 RelocAArch64 = 1028
	RAArch64TLSDtpRel64 RelocAArch64 = 1029
	RAArch64TLSTpRel64  RelocAArch64 = 1030
	RAArch64TLSDesc   RelocAArch64 = 1031
	RAArch64IRelative RelocAArch64 = 1032
)

var relocNamesAArch64 = map[RelocAArch64]string{
	RAArch64None:            "R_AARCH64_NONE",
	RAArch64Abs64:           "R_AARCH64_ABS64",
	RAArch64Abs32:           "R_AARCH64_ABS32",
	RAArch64Abs16:           "R_AARCH64_ABS16",
	RAArch64PRel64:          "R_AARCH64_PREL64",
	RAArch64PRel32:          "R_AARCH64_PREL32",
	RAArch64PRel16:          "R_AARCH64_PREL16",
	RAArch64Call26:          "R_AARCH64_CALL26",
	RAArch64Jump26:          "R_AARCH64_JUMP26",
	RAArch64AdrPrelPgHi21:   "R_AARCH64_ADR_PREL_PG_HI21",
	RAArch64AddAbsLo12NC:    "R_AARCH64_ADD_ABS_LO12_NC",
	RAArch64LdSt64AbsLo12NC: "R_AARCH64_LDST64_ABS_LO12_NC",
	RAArch64Copy:            "R_AARCH64_COPY",
	RAArch64GlobDat:         "R_AARCH64_GLOB_DAT",
	RAArch64JumpSlot:        "R_AARCH64_JUMP_SLOT",
	RAArch64Relative:        "R_AARCH64_RELATIVE",
	RAArch64TLSDtpMod64:     "R_AARCH64_TLS_DTPMOD64",
	RAArch64TLSDtpRel64:     "R_AARCH64_TLS_DTPREL64",
	RAArch64TLSTpRel64:      "R_AARCH64_TLS_TPREL64",
	RAArch64TLSDesc:         "R_AARCH64_TLSDESC",
	RAArch64IRelative:       "R_AARCH64_IRELATIVE",
}

func (r RelocAArch64) Raw() uint32 { return uint32(r) }
func (RelocAArch64) Machine() Machine { return MachineAArch64 }
func (r RelocAArch64) String() string { return relocString(r, relocNamesAArch64) }

// RelocARM is a 32-bit ARM relocation type.
type RelocARM uint32

const (
	RARMNone     RelocARM = 0
	RARMPC24     RelocARM = 1
	RARMAbs32    RelocARM = 2
	RARMRel32    RelocARM = 3
	RARMAbs16    RelocARM = 5
	RARMAbs12    RelocARM = 6
	RARMAbs8     RelocARM = 8
	RARMThmCall  RelocARM = 10
	RARMCopy     RelocARM = 20
	RARMGlobDat  RelocARM = 21
	RARMJumpSlot RelocARM = 22
	RARMRelative RelocARM = 23
	RARMGOTOff   RelocARM = 24
	RARMGOTPC    RelocARM = 25
	RARMGOT32    RelocARM = 26
	RARMPLT32    RelocARM = 27
	RARMCall     RelocARM = 28
	RARMJump24   RelocARM = 29
	RARMTarget1  RelocARM = 38
	RARMV4BX     RelocARM = 40
	RARMPrel31   RelocARM = 42
	RARMMovwAbsNC RelocARM = 43
	RARMMovtAbs  RelocARM = 44
	RARMTLSGD32  RelocARM = 104
	RARMTLSLDM32 RelocARM = 105
	RARMTLSIE32  RelocARM = 107
	RARMTLSLE32  RelocARM = 108
	RARMIRelative RelocARM = 160
)

var relocNamesARM = map[RelocARM]string{
	RARMNone:      "R_ARM_NONE",
	RARMPC24:      "R_ARM_PC24",
	RARMAbs32:     "R_ARM_ABS32",
	RARMRel32:     "R_ARM_REL32",
	RARMAbs16:     "R_ARM_ABS16",
	RARMAbs12:     "R_ARM_ABS12",
	RARMAbs8:      "R_ARM_ABS8",
	RARMThmCall:   "R_ARM_THM_CALL",
	RARMCopy:      "R_ARM_COPY",
	RARMGlobDat:   "R_ARM_GLOB_DAT",
	RARMJumpSlot:  "R_ARM_JUMP_SLOT",
	RARMRelative:  "R_ARM_RELATIVE",
	RARMGOTOff:    "R_ARM_GOTOFF32",
	RARMGOTPC:     "R_ARM_BASE_PREL",
	RARMGOT32:     "R_ARM_GOT_BREL",
	RARMPLT32:     "R_ARM_PLT32",
	RARMCall:      "R_ARM_CALL",
	RARMJump24:    "R_ARM_JUMP24",
	RARMTarget1:   "R_ARM_TARGET1",
	RARMV4BX:      "R_ARM_V4BX",
	RARMPrel31:    "R_ARM_PREL31",
	RARMMovwAbsNC: "R_ARM_MOVW_ABS_NC",
	RARMMovtAbs:   "R_ARM_MOVT_ABS",
	RARMTLSGD32:   "R_ARM_TLS_GD32",
	RARMTLSLDM32:  "R_ARM_TLS_LDM32",
	RARMTLSIE32:   "R_ARM_TLS_IE32",
	RARMTLSLE32:   "R_ARM_TLS_LE32",
	RARMIRelative: "R_ARM_IRELATIVE",
}

func (r RelocARM) Raw() uint32 { return uint32(r) }
func (RelocARM) Machine() Machine { return MachineARM }
func (r RelocARM) String() string { return relocString(r, relocNamesARM) }

// RelocRISCV is a RISC-V relocation type.
type RelocRISCV uint32

const (
	RRISCVNone      RelocRISCV = 0
	RRISCV32        RelocRISCV = 1
	RRISCV64        RelocRISCV = 2
	RRISCVRelative  RelocRISCV = 3
	RRISCVCopy      RelocRISCV = 4
	RRISCVJumpSlot  RelocRISCV = 5
	RRISCVTLSDtpMod32 RelocRISCV = 6
	RRISCVTLSDtpMod64 RelocRISCV = 7
	RRISCVTLSDtpRel32 RelocRISCV = 8
	RRISCVTLSDtpRel64 RelocRISCV = 9
	RRISCVTLSTpRel32  RelocRISCV = 10
	RRISCVTLSTpRel64  RelocRISCV = 11
	RRISCVBranch    RelocRISCV = 16
	RRISCVJAL       RelocRISCV = 17
	RRISCVCall      RelocRISCV = 18
	RRISCVCallPLT   RelocRISCV = 19
	RRISCVGOTHi20   RelocRISCV = 20
	RRISCVTLSGOTHi20 RelocRISCV = 21
	RRISCVPCRelHi20 RelocRISCV = 23
	RRISCVPCRelLo12I RelocRISCV = 24
	RRISCVPCRelLo12S RelocRISCV = 25
	RRISCVHi20      RelocRISCV = 26
	RRISCVLo12I     RelocRISCV = 27
	RRISCVLo12S     RelocRISCV = 28
	RRISCVAdd32     RelocRISCV = 35
	RRISCVAdd64     RelocRISCV = 36
	RRISCVSub32     RelocRISCV = 39
	RRISCVSub64     RelocRISCV = 40
	RRISCVRVCBranch RelocRISCV = 44
	RRISCVRVCJump   RelocRISCV = 45
	RRISCVRelax     RelocRISCV = 51
	RRISCVIRelative RelocRISCV = 58
)

var relocNamesRISCV = map[RelocRISCV]string{
	RRISCVNone:        "R_RISCV_NONE",
	RRISCV32:          "R_RISCV_32",
	RRISCV64:          "R_RISCV_64",
	RRISCVRelative:    "R_RISCV_RELATIVE",
	RRISCVCopy:        "R_RISCV_COPY",
	RRISCVJumpSlot:    "R_RISCV_JUMP_SLOT",
	RRISCVTLSDtpMod32: "R_RISCV_TLS_DTPMOD32",
	RRISCVTLSDtpMod64: "R_RISCV_TLS_DTPMOD64",
	RRISCVTLSDtpRel32: "R_RISCV_TLS_DTPREL32",
	RRISCVTLSDtpRel64: "R_RISCV_TLS_DTPREL64",
	RRISCVTLSTpRel32:  "R_RISCV_TLS_TPREL32",
	RRISCVTLSTpRel64:  "R_RISCV_TLS_TPREL64",
	RRISCVBranch:      "R_RISCV_BRANCH",
	RRISCVJAL:         "R_RISCV_JAL",
	RRISCVCall:        "R_RISCV_CALL",
	RRISCVCallPLT:     "R_RISCV_CALL_PLT",
	RRISCVGOTHi20:     "R_RISCV_GOT_HI20",
	RRISCVTLSGOTHi20:  "R_RISCV_TLS_GOT_HI20",
	RRISCVPCRelHi20:   "R_RISCV_PCREL_HI20",
	RRISCVPCRelLo12I:  "R_RISCV_PCREL_LO12_I",
	RRISCVPCRelLo12S:  "R_RISCV_PCREL_LO12_S",
	RRISCVHi20:        "R_RISCV_HI20",
	RRISCVLo12I:       "R_RISCV_LO12_I",
	RRISCVLo12S:       "R_RISCV_LO12_S",
	RRISCVAdd32:       "R_RISCV_ADD32",
	RRISCVAdd64:       "R_RISCV_ADD64",
	RRISCVSub32:       "R_RISCV_SUB32",
	RRISCVSub64:       "R_RISCV_SUB64",
	RRISCVRVCBranch:   "R_RISCV_RVC_BRANCH",
	RRISCVRVCJump:     "R_RISCV_RVC_JUMP",
	RRISCVRelax:       "R_RISCV_RELAX",
	RRISCVIRelative:   "R_RISCV_IRELATIVE",
}

func (r RelocRISCV) Raw() uint32 { return uint32(r) }
func (RelocRISCV) Machine() Machine { return MachineRISCV }
func (r RelocRISCV) String() string { return relocString(r, relocNamesRISCV) }

// RelocMIPS is a MIPS relocation type.
type RelocMIPS uint32

const (
	RMIPSNone     RelocMIPS = 0
	RMIPS16       RelocMIPS = 1
	RMIPS32       RelocMIPS = 2
	RMIPSRel32    RelocMIPS = 3
	RMIPS26       RelocMIPS = 4
	RMIPSHi16     RelocMIPS = 5
	RMIPSLo16     RelocMIPS = 6
	RMIPSGPRel16  RelocMIPS = 7
	RMIPSLiteral  RelocMIPS = 8
	RMIPSGOT16    RelocMIPS = 9
	RMIPSPC16     RelocMIPS = 10
	RMIPSCall16   RelocMIPS = 11
	RMIPSGPRel32  RelocMIPS = 12
	RMIPS64       RelocMIPS = 18
	RMIPSGOTDisp  RelocMIPS = 19
	RMIPSGOTPage  RelocMIPS = 20
	RMIPSGOTOfst  RelocMIPS = 21
	RMIPSGOTHi16  RelocMIPS = 22
	RMIPSGOTLo16  RelocMIPS = 23
	RMIPSSub      RelocMIPS = 24
	RMIPSCallHi16 RelocMIPS = 30
	RMIPSCallLo16 RelocMIPS = 31
	RMIPSJalr     RelocMIPS = 37
	RMIPSTLSDtpMod32 RelocMIPS = 38
	RMIPSTLSDtpRel32 RelocMIPS = 39
	RMIPSTLSTpRel32  RelocMIPS = 47
)

var relocNamesMIPS = map[RelocMIPS]string{
	RMIPSNone:        "R_MIPS_NONE",
	RMIPS16:          "R_MIPS_16",
	RMIPS32:          "R_MIPS_32",
	RMIPSRel32:       "R_MIPS_REL32",
	RMIPS26:          "R_MIPS_26",
	RMIPSHi16:        "R_MIPS_HI16",
	RMIPSLo16:        "R_MIPS_LO16",
	RMIPSGPRel16:     "R_MIPS_GPREL16",
	RMIPSLiteral:     "R_MIPS_LITERAL",
	RMIPSGOT16:       "R_MIPS_GOT16",
	RMIPSPC16:        "R_MIPS_PC16",
	RMIPSCall16:      "R_MIPS_CALL16",
	RMIPSGPRel32:     "R_MIPS_GPREL32",
	RMIPS64:          "R_MIPS_64",
	RMIPSGOTDisp:     "R_MIPS_GOT_DISP",
	RMIPSGOTPage:     "R_MIPS_GOT_PAGE",
	RMIPSGOTOfst:     "R_MIPS_GOT_OFST",
	RMIPSGOTHi16:     "R_MIPS_GOT_HI16",
	RMIPSGOTLo16:     "R_MIPS_GOT_LO16",
	RMIPSSub:         "R_MIPS_SUB",
	RMIPSCallHi16:    "R_MIPS_CALL_HI16",
	RMIPSCallLo16:    "R_MIPS_CALL_LO16",
	RMIPSJalr:        "R_MIPS_JALR",
	RMIPSTLSDtpMod32: "R_MIPS_TLS_DTPMOD32",
	RMIPSTLSDtpRel32: "R_MIPS_TLS_DTPREL32",
	RMIPSTLSTpRel32:  "R_MIPS_TLS_TPREL32",
}

func (r RelocMIPS) Raw() uint32 { return uint32(r) }
func (RelocMIPS) Machine() Machine { return MachineMIPS }
func (r RelocMIPS) String() string { return relocString(r, relocNamesMIPS) }

// RelocSPARC is a SPARC relocation type, shared across the 32-bit, v8+, and
// v9 machine codes.
type RelocSPARC uint32

const (
	RSPARCNone     RelocSPARC = 0
	RSPARC8        RelocSPARC = 1
	RSPARC16       RelocSPARC = 2
	RSPARC32       RelocSPARC = 3
	RSPARCDisp8    RelocSPARC = 4
	RSPARCDisp16   RelocSPARC = 5
	RSPARCDisp32   RelocSPARC = 6
	RSPARCWDisp30  RelocSPARC = 7
	RSPARCWDisp22  RelocSPARC = 8
	RSPARCHi22     RelocSPARC = 9
	RSPARC22       RelocSPARC = 10
	RSPARC13       RelocSPARC = 11
	RSPARCLo10     RelocSPARC = 12
	RSPARCGOT10    RelocSPARC = 13
	RSPARCGOT13    RelocSPARC = 14
	RSPARCGOT22    RelocSPARC = 15
	RSPARCPC10     RelocSPARC = 16
	RSPARCPC22     RelocSPARC = 17
	RSPARCWPLT30   RelocSPARC = 18
	RSPARCCopy     RelocSPARC = 19
	RSPARCGlobDat  RelocSPARC = 20
	RSPARCJmpSlot  RelocSPARC = 21
	RSPARCRelative RelocSPARC = 22
	RSPARCUA32     RelocSPARC = 23
	RSPARC64       RelocSPARC = 32
	RSPARCOlo10    RelocSPARC = 33
	RSPARCHH22     RelocSPARC = 34
	RSPARCHM10     RelocSPARC = 35
	RSPARCLM22     RelocSPARC = 36
	RSPARCDisp64   RelocSPARC = 46
	RSPARCUA64     RelocSPARC = 54
	RSPARCUA16     RelocSPARC = 55
)

var relocNamesSPARC = map[RelocSPARC]string{
	RSPARCNone:     "R_SPARC_NONE",
	RSPARC8:        "R_SPARC_8",
	RSPARC16:       "R_SPARC_16",
	RSPARC32:       "R_SPARC_32",
	RSPARCDisp8:    "R_SPARC_DISP8",
	RSPARCDisp16:   "R_SPARC_DISP16",
	RSPARCDisp32:   "R_SPARC_DISP32",
	RSPARCWDisp30:  "R_SPARC_WDISP30",
	RSPARCWDisp22:  "R_SPARC_WDISP22",
	RSPARCHi22:     "R_SPARC_HI22",
	RSPARC22:       "R_SPARC_22",
	RSPARC13:       "R_SPARC_13",
	RSPARCLo10:     "R_SPARC_LO10",
	RSPARCGOT10:    "R_SPARC_GOT10",
	RSPARCGOT13:    "R_SPARC_GOT13",
	RSPARCGOT22:    "R_SPARC_GOT22",
	RSPARCPC10:     "R_SPARC_PC10",
	RSPARCPC22:     "R_SPARC_PC22",
	RSPARCWPLT30:   "R_SPARC_WPLT30",
	RSPARCCopy:     "R_SPARC_COPY",
	RSPARCGlobDat:  "R_SPARC_GLOB_DAT",
	RSPARCJmpSlot:  "R_SPARC_JMP_SLOT",
	RSPARCRelative: "R_SPARC_RELATIVE",
	RSPARCUA32:     "R_SPARC_UA32",
	RSPARC64:       "R_SPARC_64",
	RSPARCOlo10:    "R_SPARC_OLO10",
	RSPARCHH22:     "R_SPARC_HH22",
	RSPARCHM10:     "R_SPARC_HM10",
	RSPARCLM22:     "R_SPARC_LM22",
	RSPARCDisp64:   "R_SPARC_DISP64",
	RSPARCUA64:     "R_SPARC_UA64",
	RSPARCUA16:     "R_SPARC_UA16",
}

func (r RelocSPARC) Raw() uint32 { return uint32(r) }
func (RelocSPARC) Machine() Machine { return MachineSPARC }
func (r RelocSPARC) String() string { return relocString(r, relocNamesSPARC) }

// RelocPPC is a 32-bit PowerPC relocation type.
type RelocPPC uint32

const (
	RPPCNone     RelocPPC = 0
	RPPCAddr32   RelocPPC = 1
	RPPCAddr24   RelocPPC = 2
	RPPCAddr16   RelocPPC = 3
	RPPCAddr16Lo RelocPPC = 4
	RPPCAddr16Hi RelocPPC = 5
	RPPCAddr16Ha RelocPPC = 6
	RPPCAddr14   RelocPPC = 7
	RPPCRel24    RelocPPC = 10
	RPPCRel14    RelocPPC = 11
	RPPCGOT16    RelocPPC = 14
	RPPCCopy     RelocPPC = 19
	RPPCGlobDat  RelocPPC = 20
	RPPCJmpSlot  RelocPPC = 21
	RPPCRelative RelocPPC = 22
	RPPCRel32    RelocPPC = 26
	RPPCPLTRel24 RelocPPC = 18
	RPPCTLS      RelocPPC = 67
	RPPCDtpMod32 RelocPPC = 68
	RPPCTpRel16  RelocPPC = 69
	RPPCTpRel32  RelocPPC = 73
	RPPCDtpRel32 RelocPPC = 78
)

var relocNamesPPC = map[RelocPPC]string{
	RPPCNone:     "R_PPC_NONE",
	RPPCAddr32:   "R_PPC_ADDR32",
	RPPCAddr24:   "R_PPC_ADDR24",
	RPPCAddr16:   "R_PPC_ADDR16",
	RPPCAddr16Lo: "R_PPC_ADDR16_LO",
	RPPCAddr16Hi: "R_PPC_ADDR16_HI",
	RPPCAddr16Ha: "R_PPC_ADDR16_HA",
	RPPCAddr14:   "R_PPC_ADDR14",
	RPPCRel24:    "R_PPC_REL24",
	RPPCRel14:    "R_PPC_REL14",
	RPPCGOT16:    "R_PPC_GOT16",
	RPPCCopy:     "R_PPC_COPY",
	RPPCGlobDat:  "R_PPC_GLOB_DAT",
	RPPCJmpSlot:  "R_PPC_JMP_SLOT",
	RPPCRelative: "R_PPC_RELATIVE",
	RPPCRel32:    "R_PPC_REL32",
	RPPCPLTRel24: "R_PPC_PLTREL24",
	RPPCTLS:      "R_PPC_TLS",
	RPPCDtpMod32: "R_PPC_DTPMOD32",
	RPPCTpRel16:  "R_PPC_TPREL16",
	RPPCTpRel32:  "R_PPC_TPREL32",
	RPPCDtpRel32: "R_PPC_DTPREL32",
}

func (r RelocPPC) Raw() uint32 { return uint32(r) }
func (RelocPPC) Machine() Machine { return MachinePPC }
func (r RelocPPC) String() string { return relocString(r, relocNamesPPC) }

// RelocPPC64 is a 64-bit PowerPC relocation type.
type RelocPPC64 uint32

const (
	RPPC64None       RelocPPC64 = 0
	RPPC64Addr32     RelocPPC64 = 1
	RPPC64Addr16     RelocPPC64 = 3
	RPPC64Addr16Lo   RelocPPC64 = 4
	RPPC64Addr16Hi   RelocPPC64 = 5
	RPPC64Addr16Ha   RelocPPC64 = 6
	RPPC64Rel24      RelocPPC64 = 10
	RPPC64Copy       RelocPPC64 = 19
	RPPC64GlobDat    RelocPPC64 = 20
	RPPC64JmpSlot    RelocPPC64 = 21
	RPPC64Relative   RelocPPC64 = 22
	RPPC64Rel32      RelocPPC64 = 26
	RPPC64Addr64     RelocPPC64 = 38
	RPPC64Addr16Higher RelocPPC64 = 39
	RPPC64Addr16Highest RelocPPC64 = 41
	RPPC64Rel64      RelocPPC64 = 44
	RPPC64TOC16      RelocPPC64 = 47
	RPPC64TOC16Lo    RelocPPC64 = 48
	RPPC64TOC16Ha    RelocPPC64 = 50
	RPPC64TOC        RelocPPC64 = 51
	RPPC64DtpMod64   RelocPPC64 = 68
	RPPC64TpRel64    RelocPPC64 = 73
	RPPC64DtpRel64   RelocPPC64 = 78
	RPPC64TOC16LoDS  RelocPPC64 = 64
	RPPC64IRelative  RelocPPC64 = 248
)

var relocNamesPPC64 = map[RelocPPC64]string{
	RPPC64None:          "R_PPC64_NONE",
	RPPC64Addr32:        "R_PPC64_ADDR32",
	RPPC64Addr16:        "R_PPC64_ADDR16",
	RPPC64Addr16Lo:      "R_PPC64_ADDR16_LO",
	RPPC64Addr16Hi:      "R_PPC64_ADDR16_HI",
	RPPC64Addr16Ha:      "R_PPC64_ADDR16_HA",
	RPPC64Rel24:         "R_PPC64_REL24",
	RPPC64Copy:          "R_PPC64_COPY",
	RPPC64GlobDat:       "R_PPC64_GLOB_DAT",
	RPPC64JmpSlot:       "R_PPC64_JMP_SLOT",
	RPPC64Relative:      "R_PPC64_RELATIVE",
	RPPC64Rel32:         "R_PPC64_REL32",
	RPPC64Addr64:        "R_PPC64_ADDR64",
	RPPC64Addr16Higher:  "R_PPC64_ADDR16_HIGHER",
	RPPC64Addr16Highest: "R_PPC64_ADDR16_HIGHEST",
	RPPC64Rel64:         "R_PPC64_REL64",
	RPPC64TOC16:         "R_PPC64_TOC16",
	RPPC64TOC16Lo:       "R_PPC64_TOC16_LO",
	RPPC64TOC16Ha:       "R_PPC64_TOC16_HA",
	RPPC64TOC:           "R_PPC64_TOC",
	RPPC64DtpMod64:      "R_PPC64_DTPMOD64",
	RPPC64TpRel64:       "R_PPC64_TPREL64",
	RPPC64DtpRel64:      "R_PPC64_DTPREL64",
	RPPC64TOC16LoDS:     "R_PPC64_TOC16_LO_DS",
	RPPC64IRelative:     "R_PPC64_IRELATIVE",
}

func (r RelocPPC64) Raw() uint32 { return uint32(r) }
func (RelocPPC64) Machine() Machine { return MachinePPC64 }
func (r RelocPPC64) String() string { return relocString(r, relocNamesPPC64) }

// RelocS390 is an s390/s390x relocation type.
type RelocS390 uint32

const (
	RS390None     RelocS390 = 0
	RS3908        RelocS390 = 1
	RS39012       RelocS390 = 2
	RS39016       RelocS390 = 3
	RS39032       RelocS390 = 4
	RS390PC32     RelocS390 = 5
	RS390GOT12    RelocS390 = 6
	RS390GOT32    RelocS390 = 7
	RS390PLT32    RelocS390 = 8
	RS390Copy     RelocS390 = 9
	RS390GlobDat  RelocS390 = 10
	RS390JmpSlot  RelocS390 = 11
	RS390Relative RelocS390 = 12
	RS390GOTOff   RelocS390 = 13
	RS390GOTPC    RelocS390 = 14
	RS390GOT16    RelocS390 = 15
	RS390PC16     RelocS390 = 16
	RS390PC16DBL  RelocS390 = 17
	RS390PLT16DBL RelocS390 = 18
	RS390PC32DBL  RelocS390 = 19
	RS390PLT32DBL RelocS390 = 20
	RS390GOTPCDBL RelocS390 = 21
	RS39064       RelocS390 = 22
	RS390PC64     RelocS390 = 23
	RS390GOT64    RelocS390 = 24
	RS390PLT64    RelocS390 = 25
	RS390GOTEnt   RelocS390 = 26
	RS390TLSLoad  RelocS390 = 37
	RS390IRelative RelocS390 = 61
)

var relocNamesS390 = map[RelocS390]string{
	RS390None:      "R_390_NONE",
	RS3908:         "R_390_8",
	RS39012:        "R_390_12",
	RS39016:        "R_390_16",
	RS39032:        "R_390_32",
	RS390PC32:      "R_390_PC32",
	RS390GOT12:     "R_390_GOT12",
	RS390GOT32:     "R_390_GOT32",
	RS390PLT32:     "R_390_PLT32",
	RS390Copy:      "R_390_COPY",
	RS390GlobDat:   "R_390_GLOB_DAT",
	RS390JmpSlot:   "R_390_JMP_SLOT",
	RS390Relative:  "R_390_RELATIVE",
	RS390GOTOff:    "R_390_GOTOFF",
	RS390GOTPC:     "R_390_GOTPC",
	RS390GOT16:     "R_390_GOT16",
	RS390PC16:      "R_390_PC16",
	RS390PC16DBL:   "R_390_PC16DBL",
	RS390PLT16DBL:  "R_390_PLT16DBL",
	RS390PC32DBL:   "R_390_PC32DBL",
	RS390PLT32DBL:  "R_390_PLT32DBL",
	RS390GOTPCDBL:  "R_390_GOTPCDBL",
	RS39064:        "R_390_64",
	RS390PC64:      "R_390_PC64",
	RS390GOT64:     "R_390_GOT64",
	RS390PLT64:     "R_390_PLT64",
	RS390GOTEnt:    "R_390_GOTENT",
	RS390TLSLoad:   "R_390_TLS_LOAD",
	RS390IRelative: "R_390_IRELATIVE",
}

func (r RelocS390) Raw() uint32 { return uint32(r) }
func (RelocS390) Machine() Machine { return MachineS390 }
func (r RelocS390) String() string { return relocString(r, relocNamesS390) }

// RelocAlpha is an Alpha relocation type.
type RelocAlpha uint32

const (
	RAlphaNone     RelocAlpha = 0
	RAlphaRefLong  RelocAlpha = 1
	RAlphaRefQuad  RelocAlpha = 2
	RAlphaGPRel32  RelocAlpha = 3
	RAlphaLiteral  RelocAlpha = 4
	RAlphaLituse   RelocAlpha = 5
	RAlphaGPDisp   RelocAlpha = 6
	RAlphaBrAddr   RelocAlpha = 7
	RAlphaHint     RelocAlpha = 8
	RAlphaSRel16   RelocAlpha = 9
	RAlphaSRel32   RelocAlpha = 10
	RAlphaSRel64   RelocAlpha = 11
	RAlphaGPRelHigh RelocAlpha = 17
	RAlphaGPRelLow RelocAlpha = 18
	RAlphaGPRel16  RelocAlpha = 19
	RAlphaCopy     RelocAlpha = 24
	RAlphaGlobDat  RelocAlpha = 25
	RAlphaJmpSlot  RelocAlpha = 26
	RAlphaRelative RelocAlpha = 27
)

var relocNamesAlpha = map[RelocAlpha]string{
	RAlphaNone:      "R_ALPHA_NONE",
	RAlphaRefLong:   "R_ALPHA_REFLONG",
	RAlphaRefQuad:   "R_ALPHA_REFQUAD",
	RAlphaGPRel32:   "R_ALPHA_GPREL32",
	RAlphaLiteral:   "R_ALPHA_LITERAL",
	RAlphaLituse:    "R_ALPHA_LITUSE",
	RAlphaGPDisp:    "R_ALPHA_GPDISP",
	RAlphaBrAddr:    "R_ALPHA_BRADDR",
	RAlphaHint:      "R_ALPHA_HINT",
	RAlphaSRel16:    "R_ALPHA_SREL16",
	RAlphaSRel32:    "R_ALPHA_SREL32",
	RAlphaSRel64:    "R_ALPHA_SREL64",
	RAlphaGPRelHigh: "R_ALPHA_GPRELHIGH",
	RAlphaGPRelLow:  "R_ALPHA_GPRELLOW",
	RAlphaGPRel16:   "R_ALPHA_GPREL16",
	RAlphaCopy:      "R_ALPHA_COPY",
	RAlphaGlobDat:   "R_ALPHA_GLOB_DAT",
	RAlphaJmpSlot:   "R_ALPHA_JMP_SLOT",
	RAlphaRelative:  "R_ALPHA_RELATIVE",
}

func (r RelocAlpha) Raw() uint32 { return uint32(r) }
func (RelocAlpha) Machine() Machine { return MachineAlpha }
func (r RelocAlpha) String() string { return relocString(r, relocNamesAlpha) }

// RelocLoongArch is a LoongArch relocation type.
type RelocLoongArch uint32

const (
	RLoongArchNone      RelocLoongArch = 0
	RLoongArch32        RelocLoongArch = 1
	RLoongArch64        RelocLoongArch = 2
	RLoongArchRelative  RelocLoongArch = 3
	RLoongArchCopy      RelocLoongArch = 4
	RLoongArchJumpSlot  RelocLoongArch = 5
	RLoongArchTLSDtpMod32 RelocLoongArch = 6
	RLoongArchTLSDtpMod64 RelocLoongArch = 7
	RLoongArchTLSDtpRel32 RelocLoongArch = 8
	RLoongArchTLSDtpRel64 RelocLoongArch = 9
	RLoongArchTLSTpRel32  RelocLoongArch = 10
	RLoongArchTLSTpRel64  RelocLoongArch = 11
	RLoongArchIRelative RelocLoongArch = 12
	RLoongArchMarkLA    RelocLoongArch = 20
	RLoongArchMarkPCRel RelocLoongArch = 21
	RLoongArchB16       RelocLoongArch = 64
	RLoongArchB21       RelocLoongArch = 65
	RLoongArchB26       RelocLoongArch = 66
	RLoongArchAbsHi20   RelocLoongArch = 67
	RLoongArchAbsLo12   RelocLoongArch = 68
	RLoongArchPCAlaHi20 RelocLoongArch = 71
	RLoongArchPCAlaLo12 RelocLoongArch = 72
	RLoongArchGOTPCHi20 RelocLoongArch = 75
	RLoongArchGOTPCLo12 RelocLoongArch = 76
	RLoongArchRelax     RelocLoongArch = 100
)

var relocNamesLoongArch = map[RelocLoongArch]string{
	RLoongArchNone:        "R_LARCH_NONE",
	RLoongArch32:          "R_LARCH_32",
	RLoongArch64:          "R_LARCH_64",
	RLoongArchRelative:    "R_LARCH_RELATIVE",
	RLoongArchCopy:        "R_LARCH_COPY",
	RLoongArchJumpSlot:    "R_LARCH_JUMP_SLOT",
	RLoongArchTLSDtpMod32: "R_LARCH_TLS_DTPMOD32",
	RLoongArchTLSDtpMod64: "R_LARCH_TLS_DTPMOD64",
	RLoongArchTLSDtpRel32: "R_LARCH_TLS_DTPREL32",
	RLoongArchTLSDtpRel64: "R_LARCH_TLS_DTPREL64",
	RLoongArchTLSTpRel32:  "R_LARCH_TLS_TPREL32",
	RLoongArchTLSTpRel64:  "R_LARCH_TLS_TPREL64",
	RLoongArchIRelative:   "R_LARCH_IRELATIVE",
	RLoongArchMarkLA:      "R_LARCH_MARK_LA",
	RLoongArchMarkPCRel:   "R_LARCH_MARK_PCREL",
	RLoongArchB16:         "R_LARCH_B16",
	RLoongArchB21:         "R_LARCH_B21",
	RLoongArchB26:         "R_LARCH_B26",
	RLoongArchAbsHi20:     "R_LARCH_ABS_HI20",
	RLoongArchAbsLo12:     "R_LARCH_ABS_LO12",
	RLoongArchPCAlaHi20:   "R_LARCH_PCALA_HI20",
	RLoongArchPCAlaLo12:   "R_LARCH_PCALA_LO12",
	RLoongArchGOTPCHi20:   "R_LARCH_GOT_PC_HI20",
	RLoongArchGOTPCLo12:   "R_LARCH_GOT_PC_LO12",
	RLoongArchRelax:       "R_LARCH_RELAX",
}

func (r RelocLoongArch) Raw() uint32 { return uint32(r) }
func (RelocLoongArch) Machine() Machine { return MachineLoongArch }
func (r RelocLoongArch) String() string { return relocString(r, relocNamesLoongArch) }

func relocString[T interface {
	comparable
	Raw() uint32
	Machine() Machine
}](typ T, names map[T]string) string {
	if name, ok := names[typ]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d on %s)", typ.Raw(), typ.Machine())
}
