package layout

import (
	"github.com/jhunt/go-log"

	"github.com/carveproject/carve/disk"
	"github.com/carveproject/carve/plan"
)

// State tracks the executor through its destructive sequence.  There is
// no way back: every failure is terminal for the invocation, and the
// operator re-runs after sorting out the underlying condition.
type State int

const (
	Unwiped State = iota
	Wiped
	PartitionsCreated
	TableRefreshed
	Failed
)

func (s State) String() string {
	switch s {
	case Unwiped:
		return "unwiped"
	case Wiped:
		return "wiped"
	case PartitionsCreated:
		return "partitions created"
	case TableRefreshed:
		return "table refreshed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Executor sequences the destructive operations against the target
// device: wipe the existing table, create each planned partition in
// order, then tell the kernel to re-read the table.  It halts on the
// first failure; later partitions depend on earlier ones, so there is
// nothing sensible to do but stop.
type Executor struct {
	Ops    disk.Operations
	Target disk.Target

	// OnStep, when set, is told what the executor is about to do.
	// The interactive tools hang a progress indicator off of it.
	OnStep func(step string)

	state State
}

func (e *Executor) State() State {
	return e.state
}

func (e *Executor) step(s string) {
	if e.OnStep != nil {
		e.OnStep(s)
	}
}

func (e *Executor) fail(stage string, err error) error {
	e.state = Failed
	log.Errorf("layout: %s: stage '%s' failed: %s", e.Target.Device, stage, err)
	return err
}

// Execute runs the plan against the target device.
func (e *Executor) Execute(p *plan.Plan) error {
	device := e.Target.Device

	e.step("wiping existing partition table")
	if err := e.Ops.Wipe(device); err != nil {
		return e.fail("wipe", WipeError{Device: device, Err: err})
	}
	e.state = Wiped
	log.Infof("layout: %s: wiped", device)

	for _, spec := range p.Specs() {
		e.step("creating " + spec.Label() + " partition")
		if err := e.Ops.CreatePartition(device, spec.Index, spec.Size, spec.Typecode(), spec.Label()); err != nil {
			return e.fail("create", CreatePartitionError{Index: spec.Index, Err: err})
		}
		log.Infof("layout: %s: created partition %d (%s, %s)", device, spec.Index, spec.Label(), spec.Size)
	}
	e.state = PartitionsCreated
	log.Infof("layout: %s: all %d partitions created", device, p.Len())

	e.step("refreshing kernel partition table")
	if err := e.Ops.Refresh(device); err != nil {
		return e.fail("refresh", RefreshError{Device: device, Err: err})
	}
	e.state = TableRefreshed
	log.Infof("layout: %s: kernel partition table refreshed", device)

	return nil
}
