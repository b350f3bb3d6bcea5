package disk

import (
	"os/exec"
)

// CarveDependencies returns every external command the partitioning tool
// may need, including one mkfs variant per selectable filesystem.
func (c Config) CarveDependencies() []string {
	return []string{
		c.Sgdisk, c.Partprobe, c.Wipefs, c.Lsblk, c.Mkswap,
		"mkfs.vfat", "mkfs.ext4", "mkfs.xfs", "mkfs.btrfs",
		"mkfs.ntfs", "mkfs.exfat",
	}
}

func (c Config) MoorDependencies() []string {
	return []string{c.Swapon, c.Mount}
}

// CheckDependencies fails on the first required command that cannot be
// found in $PATH.  It runs before any prompt that could lead to a
// destructive operation, so a half-provisioned toolbox aborts cleanly.
func CheckDependencies(commands []string) error {
	for _, command := range commands {
		if _, err := exec.LookPath(command); err != nil {
			return DependencyError{Command: command}
		}
	}
	return nil
}
