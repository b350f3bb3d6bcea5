package plan_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/carveproject/carve/plan"
)

func standardPlan() *plan.Builder {
	b := plan.NewBuilder()
	Ω(b.AddEFI(plan.Fixed(512, 'M'))).Should(Succeed())
	Ω(b.AddSwap(plan.Fixed(8, 'G'))).Should(Succeed())
	return b
}

var _ = Describe("Plan Builder", func() {
	Context("assigning indices", func() {
		It("numbers partitions 1..N in creation order, with no gaps", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Fixed(40, 'G'), plan.Ext4)).Should(Succeed())
			Ω(b.AddHome(plan.Fixed(100, 'G'), plan.XFS)).Should(Succeed())
			Ω(b.AddCustom("/srv", plan.Fixed(10, 'G'), plan.Btrfs)).Should(Succeed())
			Ω(b.AddCustom("/opt", plan.Remaining(), plan.Ext4)).Should(Succeed())

			p, err := b.Finalize()
			Ω(err).ShouldNot(HaveOccurred())

			specs := p.Specs()
			Ω(specs).Should(HaveLen(6))
			for i, spec := range specs {
				Ω(spec.Index).Should(Equal(i + 1))
			}
			Ω(specs[0].Role).Should(Equal(plan.EFI))
			Ω(specs[1].Role).Should(Equal(plan.Swap))
			Ω(specs[2].Role).Should(Equal(plan.Root))
			Ω(specs[3].Role).Should(Equal(plan.Home))
			Ω(specs[4].Name).Should(Equal("/srv"))
			Ω(specs[5].Name).Should(Equal("/opt"))
		})

		It("gives a custom partition index 4 when there is no home", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Fixed(40, 'G'), plan.Ext4)).Should(Succeed())
			Ω(b.AddCustom("/data", plan.Remaining(), plan.XFS)).Should(Succeed())

			p, err := b.Finalize()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(p.Specs()[3].Index).Should(Equal(4))
		})
	})

	Context("enforcing the table convention", func() {
		It("pins EFI to the first slot with a FAT32 filesystem", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Remaining(), plan.Ext4)).Should(Succeed())
			done, err := b.Finalize()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(done.Specs()[0].Filesystem).Should(Equal(plan.FAT32))
			Ω(done.Specs()[0].Index).Should(Equal(1))
			Ω(done.Specs()[1].Filesystem).Should(Equal(plan.SwapSpace))
		})

		It("rejects roles added out of order", func() {
			b := plan.NewBuilder()
			Ω(b.AddSwap(plan.Fixed(8, 'G'))).Should(MatchError(plan.RoleOrderError{Role: plan.Swap}))
			Ω(b.AddRoot(plan.Remaining(), plan.Ext4)).Should(MatchError(plan.RoleOrderError{Role: plan.Root}))
			Ω(b.AddCustom("/x", plan.Remaining(), plan.Ext4)).Should(MatchError(plan.RoleOrderError{Role: plan.Custom}))
		})

		It("rejects remaining-space sizes for EFI and swap", func() {
			b := plan.NewBuilder()
			Ω(b.AddEFI(plan.Remaining())).Should(HaveOccurred())
			Ω(b.AddEFI(plan.Fixed(512, 'M'))).Should(Succeed())
			Ω(b.AddSwap(plan.Remaining())).Should(HaveOccurred())
		})
	})

	Context("remaining-space bookkeeping", func() {
		It("refuses a second remaining-space partition", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Remaining(), plan.Ext4)).Should(Succeed())
			Ω(b.AddHome(plan.Remaining(), plan.XFS)).Should(MatchError(plan.DuplicateRemainingSpaceError{}))
		})

		It("refuses any partition after a remaining-space one", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Remaining(), plan.Ext4)).Should(Succeed())
			Ω(b.AddHome(plan.Fixed(10, 'G'), plan.XFS)).Should(MatchError(plan.RemainingSpaceNotLastError{Role: plan.Home}))

			b = standardPlan()
			Ω(b.AddRoot(plan.Fixed(40, 'G'), plan.Ext4)).Should(Succeed())
			Ω(b.AddCustom("/a", plan.Remaining(), plan.Ext4)).Should(Succeed())
			Ω(b.AddCustom("/b", plan.Fixed(1, 'G'), plan.Ext4)).Should(MatchError(plan.RemainingSpaceNotLastError{Role: plan.Custom}))
		})
	})

	Context("filesystem / role combinations", func() {
		It("rejects FAT32 for home at construction time", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Fixed(40, 'G'), plan.Ext4)).Should(Succeed())
			Ω(b.AddHome(plan.Fixed(10, 'G'), plan.FAT32)).Should(
				MatchError(plan.InvalidFilesystemError{Role: plan.Home, Filesystem: plan.FAT32}))
		})

		It("rejects FAT32 for custom partitions at construction time", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Fixed(40, 'G'), plan.Ext4)).Should(Succeed())
			Ω(b.AddCustom("/media", plan.Fixed(10, 'G'), plan.FAT32)).Should(
				MatchError(plan.InvalidFilesystemError{Role: plan.Custom, Filesystem: plan.FAT32}))
		})
	})

	Context("finalization", func() {
		It("refuses to finalize a plan without EFI, swap and root", func() {
			b := standardPlan()
			_, err := b.Finalize()
			Ω(err).Should(MatchError(plan.IncompletePlanError{Have: 2}))
		})

		It("freezes the plan once finalized", func() {
			b := standardPlan()
			Ω(b.AddRoot(plan.Remaining(), plan.Ext4)).Should(Succeed())
			_, err := b.Finalize()
			Ω(err).ShouldNot(HaveOccurred())

			Ω(b.AddCustom("/late", plan.Fixed(1, 'G'), plan.Ext4)).Should(MatchError(plan.PlanFinalizedError{}))
			_, err = b.Finalize()
			Ω(err).Should(MatchError(plan.PlanFinalizedError{}))
		})
	})

	Context("derived partition attributes", func() {
		It("maps roles to GPT typecodes", func() {
			Ω(plan.PartitionSpec{Role: plan.EFI}.Typecode()).Should(Equal("ef00"))
			Ω(plan.PartitionSpec{Role: plan.Swap}.Typecode()).Should(Equal("8200"))
			Ω(plan.PartitionSpec{Role: plan.Root}.Typecode()).Should(Equal("8300"))
			Ω(plan.PartitionSpec{Role: plan.Home}.Typecode()).Should(Equal("8300"))
			Ω(plan.PartitionSpec{Role: plan.Custom}.Typecode()).Should(Equal("8300"))
		})

		It("strips leading path separators from custom labels", func() {
			spec := plan.PartitionSpec{Role: plan.Custom, Name: "/srv/media"}
			Ω(spec.Label()).Should(Equal("srv/media"))
		})
	})
})
