package layout

import (
	"fmt"

	"github.com/carveproject/carve/plan"
)

type WipeError struct {
	Device string
	Err    error
}

func (e WipeError) Error() string {
	return fmt.Sprintf("wiping the partition table on %s failed: %s", e.Device, e.Err)
}

type CreatePartitionError struct {
	Index int
	Err   error
}

func (e CreatePartitionError) Error() string {
	return fmt.Sprintf("creating partition %d failed: %s", e.Index, e.Err)
}

type RefreshError struct {
	Device string
	Err    error
}

func (e RefreshError) Error() string {
	return fmt.Sprintf("refreshing the kernel partition table for %s failed: %s", e.Device, e.Err)
}

type SignatureWipeError struct {
	Index int
	Err   error
}

func (e SignatureWipeError) Error() string {
	return fmt.Sprintf("clearing filesystem signatures on partition %d failed: %s", e.Index, e.Err)
}

type FormatError struct {
	Index int
	Err   error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("formatting partition %d failed: %s", e.Index, e.Err)
}

type UnsupportedFilesystemError struct {
	Role       plan.Role
	Filesystem plan.Filesystem
}

func (e UnsupportedFilesystemError) Error() string {
	return fmt.Sprintf("refusing to format a %s partition as %s", e.Role, e.Filesystem)
}
