package plan_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/carveproject/carve/plan"
)

var _ = Describe("Size Parsing", func() {
	Context("with well-formed fixed sizes", func() {
		It("converts megabytes using binary multiples", func() {
			s, err := plan.ParseSize("512M", false)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(s.Remaining).Should(BeFalse())
			Ω(s.Bytes()).Should(Equal(uint64(512 * 1024 * 1024)))
		})

		It("converts gigabytes using binary multiples", func() {
			s, err := plan.ParseSize("8G", true)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(s.Bytes()).Should(Equal(uint64(8 * 1024 * 1024 * 1024)))
		})

		It("remembers the magnitude and unit it was given", func() {
			s, err := plan.ParseSize("300M", false)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(s.String()).Should(Equal("300M"))
			Ω(s.Token()).Should(Equal("+300M"))
		})
	})

	Context("with the remaining-space sentinel", func() {
		It("accepts an empty answer where remaining space is allowed", func() {
			s, err := plan.ParseSize("", true)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(s.Remaining).Should(BeTrue())
			Ω(s.Token()).Should(Equal("0"))
		})

		It("accepts a literal 0 where remaining space is allowed", func() {
			s, err := plan.ParseSize("0", true)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(s.Remaining).Should(BeTrue())
		})

		It("rejects an empty answer where a fixed size is required", func() {
			_, err := plan.ParseSize("", false)
			Ω(err).Should(MatchError(plan.InvalidSizeError{Token: ""}))
		})

		It("rejects a literal 0 where a fixed size is required", func() {
			_, err := plan.ParseSize("0", false)
			Ω(err).Should(MatchError(plan.InvalidSizeError{Token: "0"}))
		})
	})

	Context("with malformed tokens", func() {
		for _, token := range []string{"12", "M", "G", "12K", "12MB", "1.5G", "-3G", "12 G", "G12", "0x10M"} {
			token := token
			It("rejects '"+token+"'", func() {
				_, err := plan.ParseSize(token, true)
				Ω(err).Should(MatchError(plan.InvalidSizeError{Token: token}))
			})
		}
	})
})
