package layout

import (
	"github.com/jhunt/go-log"

	"github.com/carveproject/carve/disk"
	"github.com/carveproject/carve/plan"
)

// Formatter walks the finalized plan and puts a filesystem (or swap
// space) on each partition.  Failures halt it immediately; partitions
// already formatted stay formatted, and nothing rolls back.
type Formatter struct {
	Ops    disk.Operations
	Target disk.Target

	OnStep func(step string)
}

func (f *Formatter) step(s string) {
	if f.OnStep != nil {
		f.OnStep(s)
	}
}

func (f *Formatter) Format(p *plan.Plan) error {
	for _, spec := range p.Specs() {
		partition := f.Target.Partition(spec.Index)

		// the builder refuses this combination up front; this check
		// stays as a second line behind programmatic callers
		if spec.Role == plan.Home && spec.Filesystem == plan.FAT32 {
			return UnsupportedFilesystemError{Role: spec.Role, Filesystem: spec.Filesystem}
		}

		// a non-EFI slot that resolved to FAT32 was already FAT
		// formatted when the partition was created
		if spec.Filesystem == plan.FAT32 && spec.Role != plan.EFI {
			log.Warnf("layout: %s: %s already carries a FAT32 filesystem, skipping format", partition, spec.Label())
			continue
		}

		f.step("clearing signatures on " + partition)
		if err := f.Ops.WipeSignatures(partition); err != nil {
			return SignatureWipeError{Index: spec.Index, Err: err}
		}

		f.step("formatting " + partition + " as " + string(spec.Filesystem))
		var err error
		if spec.Filesystem == plan.SwapSpace {
			err = f.Ops.MakeSwap(partition, spec.Label())
		} else {
			err = f.Ops.Format(partition, spec.Filesystem, spec.Label())
		}
		if err != nil {
			return FormatError{Index: spec.Index, Err: err}
		}
		log.Infof("layout: %s: formatted as %s (label %s)", partition, spec.Filesystem, spec.Label())
	}

	return nil
}
