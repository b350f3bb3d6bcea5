package plan

import (
	"fmt"
)

type InvalidSizeError struct {
	Token string
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("'%s' is not a valid size (expecting something like 512M or 8G)", e.Token)
}

type DuplicateRemainingSpaceError struct{}

func (e DuplicateRemainingSpaceError) Error() string {
	return "only one partition can consume the remaining space on the device"
}

type RemainingSpaceNotLastError struct {
	Role Role
}

func (e RemainingSpaceNotLastError) Error() string {
	return fmt.Sprintf("cannot add a %s partition after one that consumes the remaining space", e.Role)
}

type InvalidFilesystemError struct {
	Role       Role
	Filesystem Filesystem
}

func (e InvalidFilesystemError) Error() string {
	return fmt.Sprintf("%s is not a usable filesystem for a %s partition", e.Filesystem, e.Role)
}

type PlanFinalizedError struct{}

func (e PlanFinalizedError) Error() string {
	return "the partition plan has already been finalized"
}

type IncompletePlanError struct {
	Have int
}

func (e IncompletePlanError) Error() string {
	return fmt.Sprintf("a partition plan needs at least EFI, swap and root partitions (only %d specified)", e.Have)
}

type RoleOrderError struct {
	Role Role
}

func (e RoleOrderError) Error() string {
	return fmt.Sprintf("the %s partition was added out of order", e.Role)
}
