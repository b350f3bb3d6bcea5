package disk

import (
	"os"

	"github.com/jhunt/go-log"
	"github.com/pborman/uuid"

	"github.com/carveproject/carve/plan"
)

// Operations is the capability boundary between the planning / sequencing
// logic and the privileged utilities that actually touch devices.  The
// command-backed implementation lives here; tests drive the state
// machines with a scripted fake instead.
type Operations interface {
	Wipe(device string) error
	CreatePartition(device string, index int, size plan.Size, typecode, label string) error
	Refresh(device string) error

	WipeSignatures(partition string) error
	Format(partition string, fs plan.Filesystem, label string) error
	MakeSwap(partition, label string) error

	EnableSwap(partition string) error
	Mount(partition, target string) error
	MakeDirectory(path string) error
	Chmod(path string, mode os.FileMode) error
}

// mkfs invocations per filesystem: force-overwrite flag plus a volume
// label, matching what each tool expects.
var mkfsCommands = map[plan.Filesystem]string{
	plan.FAT32: "mkfs.vfat -F 32 -n %s %s",
	plan.Ext4:  "mkfs.ext4 -F -L %s %s",
	plan.XFS:   "mkfs.xfs -f -L %s %s",
	plan.Btrfs: "mkfs.btrfs -f -L %s %s",
	plan.NTFS:  "mkfs.ntfs -f -F -L %s %s",
	plan.ExFAT: "mkfs.exfat -n %s %s",
}

// CmdOperations drives the real partitioning and formatting utilities.
type CmdOperations struct {
	Config Config
}

func (o CmdOperations) Wipe(device string) error {
	return run("%s --zap-all %s", o.Config.Sgdisk, device)
}

func (o CmdOperations) CreatePartition(device string, index int, size plan.Size, typecode, label string) error {
	// start sector 0 lets the tool pick the next free sector; each
	// partition gets a fresh unique GUID.
	return run("%s -n %d:0:%s -t %d:%s -c %d:'%s' -u %d:%s %s",
		o.Config.Sgdisk,
		index, size.Token(),
		index, typecode,
		index, label,
		index, uuid.New(),
		device)
}

func (o CmdOperations) Refresh(device string) error {
	return run("%s %s", o.Config.Partprobe, device)
}

func (o CmdOperations) WipeSignatures(partition string) error {
	// wipefs exits 0 when there is nothing to wipe, which is exactly
	// the idempotence we need here.
	return run("%s --all %s", o.Config.Wipefs, partition)
}

func (o CmdOperations) Format(partition string, fs plan.Filesystem, label string) error {
	command, ok := mkfsCommands[fs]
	if !ok {
		return ExecFailure{Command: "mkfs." + string(fs), Err: os.ErrNotExist}
	}
	return run(command, label, partition)
}

func (o CmdOperations) MakeSwap(partition, label string) error {
	return run("%s -L %s %s", o.Config.Mkswap, label, partition)
}

func (o CmdOperations) EnableSwap(partition string) error {
	return run("%s %s", o.Config.Swapon, partition)
}

func (o CmdOperations) Mount(partition, target string) error {
	return run("%s %s %s", o.Config.Mount, partition, target)
}

func (o CmdOperations) MakeDirectory(path string) error {
	log.Debugf("mkdir -p %s", path)
	return os.MkdirAll(path, 0755)
}

func (o CmdOperations) Chmod(path string, mode os.FileMode) error {
	log.Debugf("chmod %o %s", mode, path)
	return os.Chmod(path, mode)
}
