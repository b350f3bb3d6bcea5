package disk

import (
	"fmt"
	"strings"
)

// Target is the block device selected for provisioning, plus the naming
// convention its partitions follow.
type Target struct {
	Device string
}

// Partition returns the device path of the n-th partition on the target.
// Devices whose names end in a digit (NVMe, mmcblk and friends) take a
// 'p' infix before the partition number; everything else takes a bare
// numeric suffix.
func (t Target) Partition(index int) string {
	return PartitionDevice(t.Device, index)
}

func PartitionDevice(device string, index int) string {
	if device != "" {
		last := device[len(device)-1]
		if last >= '0' && last <= '9' {
			return fmt.Sprintf("%sp%d", device, index)
		}
	}
	return fmt.Sprintf("%s%d", device, index)
}

// ParentDevice undoes the partition naming convention: given a partition
// device path, it returns the whole-disk device it belongs to.  Paths
// that do not look like partitions come back unchanged.
func ParentDevice(partition string) string {
	device := strings.TrimRight(partition, "0123456789")
	if device == partition {
		return partition
	}
	if strings.HasSuffix(device, "p") {
		trimmed := strings.TrimSuffix(device, "p")
		if trimmed != "" {
			last := trimmed[len(trimmed)-1]
			if last >= '0' && last <= '9' {
				return trimmed
			}
		}
	}
	return device
}
