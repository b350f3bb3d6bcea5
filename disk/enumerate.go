package disk

import (
	"io/ioutil"
	"strings"
)

// overridden by tests
var procMounts = "/proc/self/mounts"

// BlockDevice is one row out of the block-device enumeration.
type BlockDevice struct {
	Name string
	Size string
	Type string
}

// Devices lists the whole disks present on the system, excluding the one
// that hosts the currently running system (carving that up from under
// ourselves would end poorly).
func Devices(cfg Config) ([]BlockDevice, error) {
	out, err := capture("%s -dn -o NAME,SIZE,TYPE", cfg.Lsblk)
	if err != nil {
		return nil, err
	}

	system, err := SystemDisk()
	if err != nil {
		return nil, err
	}

	var devices []BlockDevice
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[2] != "disk" {
			continue
		}
		name := "/dev/" + fields[0]
		if name == system {
			continue
		}
		devices = append(devices, BlockDevice{
			Name: name,
			Size: fields[1],
			Type: fields[2],
		})
	}
	return devices, nil
}

// SystemDisk returns the whole-disk device backing the root filesystem,
// or "" when root is not on a block device (livecd squashfs, tmpfs...).
func SystemDisk() (string, error) {
	b, err := ioutil.ReadFile(procMounts)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[1] != "/" {
			continue
		}
		if !strings.HasPrefix(fields[0], "/dev/") {
			return "", nil
		}
		return ParentDevice(fields[0]), nil
	}
	return "", nil
}

// MountedUnder reports any active mounts of the device or its partitions.
// A non-empty answer means the target is in use and must not be wiped.
func MountedUnder(device string) ([]string, error) {
	b, err := ioutil.ReadFile(procMounts)
	if err != nil {
		return nil, err
	}

	var mounts []string
	for _, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[0] == device || (strings.HasPrefix(fields[0], device) && ParentDevice(fields[0]) == device) {
			mounts = append(mounts, fields[0]+" on "+fields[1])
		}
	}
	return mounts, nil
}
