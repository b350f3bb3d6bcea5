package mount

import (
	"os"
	"path/filepath"

	"github.com/jhunt/go-log"

	"github.com/carveproject/carve/disk"
)

// CustomMount pairs a partition device with the mount point it belongs
// at, relative to the target root.
type CustomMount struct {
	Device string
	Point  string
}

// Request carries everything the sequencer needs.  It is built from raw
// device paths given by the operator; it is deliberately not derived from
// a partition plan, so that moor can attach to layouts carve never saw.
type Request struct {
	SwapDevice string
	RootDevice string
	EFIDevice  string
	Customs    []CustomMount

	// TargetRoot is the directory the root partition is mounted at.
	TargetRoot string
}

func (r Request) EFIPoint() string {
	return filepath.Join(r.TargetRoot, "efi")
}

func (r Request) CustomPoint(c CustomMount) string {
	return filepath.Join(r.TargetRoot, c.Point)
}

// Sequencer activates swap and mounts the root, EFI and custom
// partitions in dependency order: the whole directory tree is created
// first (parents before children), then root is mounted, then everything
// that lives beneath it.  Any failure is fatal; there is no unwinding.
type Sequencer struct {
	Ops disk.Operations
}

func (s *Sequencer) Mount(req Request) error {
	log.Infof("mount: activating swap on %s", req.SwapDevice)
	if err := s.Ops.EnableSwap(req.SwapDevice); err != nil {
		return SwapError{Device: req.SwapDevice, Err: err}
	}

	for _, dir := range s.tree(req) {
		if err := s.Ops.MakeDirectory(dir); err != nil {
			return MountError{Path: dir, Err: err}
		}
	}

	log.Infof("mount: mounting %s at %s", req.RootDevice, req.TargetRoot)
	if err := s.Ops.Mount(req.RootDevice, req.TargetRoot); err != nil {
		return MountError{Path: req.TargetRoot, Err: err}
	}

	log.Infof("mount: mounting %s at %s", req.EFIDevice, req.EFIPoint())
	if err := s.Ops.Mount(req.EFIDevice, req.EFIPoint()); err != nil {
		return MountError{Path: req.EFIPoint(), Err: err}
	}

	for _, custom := range req.Customs {
		point := req.CustomPoint(custom)
		log.Infof("mount: mounting %s at %s", custom.Device, point)
		if err := s.Ops.Mount(custom.Device, point); err != nil {
			return MountError{Path: point, Err: err}
		}
	}

	return s.fixTempDirs(req)
}

// tree lists every directory the sequencer must create before mounting,
// parents strictly before children.
func (s *Sequencer) tree(req Request) []string {
	dirs := []string{req.TargetRoot, req.EFIPoint()}
	for _, custom := range req.Customs {
		dirs = append(dirs, req.CustomPoint(custom))
	}
	return dirs
}

// fixTempDirs applies the sticky world-writable mode to the temporary
// directories under the freshly mounted root.  /var/tmp does not exist
// on every layout, so a failure there is logged and tolerated.
func (s *Sequencer) fixTempDirs(req Request) error {
	tmp := filepath.Join(req.TargetRoot, "tmp")
	if err := s.Ops.MakeDirectory(tmp); err != nil {
		return PermissionError{Path: tmp, Err: err}
	}
	if err := s.Ops.Chmod(tmp, os.FileMode(0777)|os.ModeSticky); err != nil {
		return PermissionError{Path: tmp, Err: err}
	}

	vartmp := filepath.Join(req.TargetRoot, "var", "tmp")
	if err := s.Ops.Chmod(vartmp, os.FileMode(0777)|os.ModeSticky); err != nil {
		log.Warnf("mount: could not fix permissions on %s (continuing): %s", vartmp, err)
	}

	return nil
}
