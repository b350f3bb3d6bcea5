package mount

import (
	"fmt"
)

type SwapError struct {
	Device string
	Err    error
}

func (e SwapError) Error() string {
	return fmt.Sprintf("activating swap on %s failed: %s", e.Device, e.Err)
}

type MountError struct {
	Path string
	Err  error
}

func (e MountError) Error() string {
	return fmt.Sprintf("mounting at %s failed: %s", e.Path, e.Err)
}

type PermissionError struct {
	Path string
	Err  error
}

func (e PermissionError) Error() string {
	return fmt.Sprintf("fixing permissions on %s failed: %s", e.Path, e.Err)
}

type PrivilegeError struct{}

func (e PrivilegeError) Error() string {
	return "this tool mounts filesystems and activates swap, and must be run as root"
}
