package disk

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Partition Device Naming", func() {
	It("appends a bare numeric suffix to ordinary device names", func() {
		Ω(PartitionDevice("/dev/sda", 1)).Should(Equal("/dev/sda1"))
		Ω(PartitionDevice("/dev/sdb", 3)).Should(Equal("/dev/sdb3"))
		Ω(PartitionDevice("/dev/vdz", 12)).Should(Equal("/dev/vdz12"))
	})

	It("inserts a 'p' infix when the device name ends in a digit", func() {
		Ω(PartitionDevice("/dev/nvme0n1", 1)).Should(Equal("/dev/nvme0n1p1"))
		Ω(PartitionDevice("/dev/nvme0n1", 3)).Should(Equal("/dev/nvme0n1p3"))
		Ω(PartitionDevice("/dev/mmcblk0", 2)).Should(Equal("/dev/mmcblk0p2"))
	})

	It("works through a Target as well", func() {
		Ω(Target{Device: "/dev/sda"}.Partition(2)).Should(Equal("/dev/sda2"))
		Ω(Target{Device: "/dev/nvme0n1"}.Partition(2)).Should(Equal("/dev/nvme0n1p2"))
	})
})

var _ = Describe("Parent Device Derivation", func() {
	It("strips numeric partition suffixes", func() {
		Ω(ParentDevice("/dev/sda3")).Should(Equal("/dev/sda"))
		Ω(ParentDevice("/dev/vdb12")).Should(Equal("/dev/vdb"))
	})

	It("strips the 'p' infix for digit-terminated device names", func() {
		Ω(ParentDevice("/dev/nvme0n1p3")).Should(Equal("/dev/nvme0n1"))
		Ω(ParentDevice("/dev/mmcblk0p1")).Should(Equal("/dev/mmcblk0"))
	})

	It("leaves whole-disk paths alone", func() {
		Ω(ParentDevice("/dev/sda")).Should(Equal("/dev/sda"))
	})
})
