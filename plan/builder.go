package plan

// Builder accumulates partition specs in creation order and assigns each
// one its (stable, 1-based) slot in the partition table.  The table layout
// is fixed by convention: EFI first, then swap, then root, then an
// optional home, then any number of custom partitions.
type Builder struct {
	specs     []PartitionSpec
	remaining bool
	finalized bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddEFI(size Size) error {
	if len(b.specs) != 0 {
		return RoleOrderError{Role: EFI}
	}
	if size.Remaining {
		return InvalidSizeError{Token: "0"}
	}
	return b.add(PartitionSpec{Role: EFI, Size: size, Filesystem: FAT32})
}

func (b *Builder) AddSwap(size Size) error {
	if len(b.specs) != 1 {
		return RoleOrderError{Role: Swap}
	}
	if size.Remaining {
		return InvalidSizeError{Token: "0"}
	}
	return b.add(PartitionSpec{Role: Swap, Size: size, Filesystem: SwapSpace})
}

func (b *Builder) AddRoot(size Size, fs Filesystem) error {
	if len(b.specs) != 2 {
		return RoleOrderError{Role: Root}
	}
	return b.add(PartitionSpec{Role: Root, Size: size, Filesystem: fs})
}

func (b *Builder) AddHome(size Size, fs Filesystem) error {
	if len(b.specs) != 3 {
		return RoleOrderError{Role: Home}
	}
	if fs == FAT32 {
		return InvalidFilesystemError{Role: Home, Filesystem: fs}
	}
	return b.add(PartitionSpec{Role: Home, Size: size, Filesystem: fs})
}

func (b *Builder) AddCustom(name string, size Size, fs Filesystem) error {
	if len(b.specs) < 3 {
		return RoleOrderError{Role: Custom}
	}
	if fs == FAT32 {
		return InvalidFilesystemError{Role: Custom, Filesystem: fs}
	}
	return b.add(PartitionSpec{Role: Custom, Name: name, Size: size, Filesystem: fs})
}

func (b *Builder) add(spec PartitionSpec) error {
	if b.finalized {
		return PlanFinalizedError{}
	}
	if b.remaining {
		// a remaining-space partition mid-sequence would starve
		// everything after it
		if spec.Size.Remaining {
			return DuplicateRemainingSpaceError{}
		}
		return RemainingSpaceNotLastError{Role: spec.Role}
	}

	spec.Index = len(b.specs) + 1
	b.specs = append(b.specs, spec)
	if spec.Size.Remaining {
		b.remaining = true
	}
	return nil
}

// Finalize freezes the builder and hands back the completed plan.  A plan
// needs at least the EFI, swap and root partitions to be worth executing.
func (b *Builder) Finalize() (*Plan, error) {
	if b.finalized {
		return nil, PlanFinalizedError{}
	}
	if len(b.specs) < 3 {
		return nil, IncompletePlanError{Have: len(b.specs)}
	}

	b.finalized = true
	specs := make([]PartitionSpec, len(b.specs))
	copy(specs, b.specs)
	return &Plan{specs: specs}, nil
}

// Plan is an ordered, finalized sequence of partition specs.  Indices are
// contiguous starting at 1.
type Plan struct {
	specs []PartitionSpec
}

// Assemble builds a plan directly from pre-indexed specs, bypassing the
// builder.  Programmatic callers own the layout invariants themselves;
// the format dispatcher keeps its own guards for exactly this reason.
func Assemble(specs ...PartitionSpec) *Plan {
	copied := make([]PartitionSpec, len(specs))
	copy(copied, specs)
	return &Plan{specs: copied}
}

func (p *Plan) Specs() []PartitionSpec {
	specs := make([]PartitionSpec, len(p.specs))
	copy(specs, p.specs)
	return specs
}

func (p *Plan) Len() int {
	return len(p.specs)
}
