package plan

import (
	"strings"
)

type Role int

const (
	EFI Role = iota
	Swap
	Root
	Home
	Custom
)

func (r Role) String() string {
	switch r {
	case EFI:
		return "EFI"
	case Swap:
		return "swap"
	case Root:
		return "root"
	case Home:
		return "home"
	case Custom:
		return "custom"
	}
	return "unknown"
}

type Filesystem string

const (
	FAT32     Filesystem = "fat32"
	Ext4      Filesystem = "ext4"
	XFS       Filesystem = "xfs"
	Btrfs     Filesystem = "btrfs"
	NTFS      Filesystem = "ntfs"
	ExFAT     Filesystem = "exfat"
	SwapSpace Filesystem = "swap"
)

// GPT partition typecodes, in the two-byte hex form the external
// partitioner understands.
const (
	TypecodeESP       = "ef00"
	TypecodeLinuxSwap = "8200"
	TypecodeLinuxFS   = "8300"
)

// PartitionSpec is one planned partition.  Specs are created by the
// Builder during planning and never mutated once the plan is finalized.
type PartitionSpec struct {
	Role       Role
	Name       string
	Size       Size
	Filesystem Filesystem
	Index      int
}

// Typecode maps the spec's role to the GPT partition type the creator
// should stamp on it.
func (s PartitionSpec) Typecode() string {
	switch s.Role {
	case EFI:
		return TypecodeESP
	case Swap:
		return TypecodeLinuxSwap
	}
	return TypecodeLinuxFS
}

// Label is the human-readable partition (and volume) label.  Custom
// partitions are labeled after their mount point, with leading path
// separators stripped.
func (s PartitionSpec) Label() string {
	if s.Role == Custom {
		return strings.TrimLeft(s.Name, "/")
	}
	return s.Role.String()
}
