package disk

import (
	"io/ioutil"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mount Table Inspection", func() {
	var mounts string

	stash := func(contents string) {
		f, err := ioutil.TempFile("", "carve-mounts")
		Ω(err).ShouldNot(HaveOccurred())
		_, err = f.WriteString(contents)
		Ω(err).ShouldNot(HaveOccurred())
		Ω(f.Close()).Should(Succeed())
		procMounts = f.Name()
	}

	BeforeEach(func() {
		mounts = procMounts
	})
	AfterEach(func() {
		os.Remove(procMounts)
		procMounts = mounts
	})

	Context("finding the system disk", func() {
		It("resolves the disk backing the root filesystem", func() {
			stash("/dev/sda3 / ext4 rw,relatime 0 0\n" +
				"/dev/sda1 /boot/efi vfat rw 0 0\n" +
				"proc /proc proc rw 0 0\n")
			Ω(SystemDisk()).Should(Equal("/dev/sda"))
		})

		It("handles NVMe partition names", func() {
			stash("/dev/nvme0n1p2 / ext4 rw 0 0\n")
			Ω(SystemDisk()).Should(Equal("/dev/nvme0n1"))
		})

		It("reports no system disk when root is not device-backed", func() {
			stash("overlay / overlay rw 0 0\n")
			Ω(SystemDisk()).Should(Equal(""))
		})
	})

	Context("checking a target for active mounts", func() {
		It("reports mounts of the device's partitions", func() {
			stash("/dev/sdb1 /mnt/stuff ext4 rw 0 0\n" +
				"/dev/sdb2 /mnt/more xfs rw 0 0\n" +
				"/dev/sda3 / ext4 rw 0 0\n")

			mounted, err := MountedUnder("/dev/sdb")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(mounted).Should(Equal([]string{
				"/dev/sdb1 on /mnt/stuff",
				"/dev/sdb2 on /mnt/more",
			}))
		})

		It("does not confuse /dev/sda with /dev/sdaa", func() {
			stash("/dev/sdaa1 /mnt/other ext4 rw 0 0\n")
			mounted, err := MountedUnder("/dev/sda")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(mounted).Should(BeEmpty())
		})

		It("reports nothing for an idle device", func() {
			stash("/dev/sda3 / ext4 rw 0 0\n")
			mounted, err := MountedUnder("/dev/sdb")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(mounted).Should(BeEmpty())
		})
	})
})
