package plan

import (
	"fmt"
	"regexp"
	"strconv"
)

var sizePattern = regexp.MustCompile(`^([0-9]+)([MG])$`)

// Size is a requested partition size: either a fixed magnitude in binary
// megabytes or gigabytes, or the remaining-space sentinel, which extends
// the partition to the end of the device.
type Size struct {
	Value     uint64
	Unit      byte
	Remaining bool
}

func Fixed(value uint64, unit byte) Size {
	return Size{Value: value, Unit: unit}
}

func Remaining() Size {
	return Size{Remaining: true}
}

// ParseSize validates a size token typed by the operator.  An empty token
// or a literal "0" means remaining space, but only in contexts that allow
// it (root and custom partitions; never EFI or swap).
func ParseSize(token string, allowRemaining bool) (Size, error) {
	if token == "" || token == "0" {
		if allowRemaining {
			return Remaining(), nil
		}
		return Size{}, InvalidSizeError{Token: token}
	}

	m := sizePattern.FindStringSubmatch(token)
	if m == nil {
		return Size{}, InvalidSizeError{Token: token}
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Size{}, InvalidSizeError{Token: token}
	}
	return Size{Value: n, Unit: m[2][0]}, nil
}

// Bytes converts to a byte count using binary multiples (M = 2^20,
// G = 2^30).  Remaining-space sizes have no byte count; they report 0.
func (s Size) Bytes() uint64 {
	switch s.Unit {
	case 'M':
		return s.Value << 20
	case 'G':
		return s.Value << 30
	}
	return 0
}

func (s Size) String() string {
	if s.Remaining {
		return "remaining space"
	}
	return fmt.Sprintf("%d%c", s.Value, s.Unit)
}

// Token renders the size the way the partition creator wants it: "+512M"
// style for fixed sizes, or "0" to consume everything left on the device.
func (s Size) Token() string {
	if s.Remaining {
		return "0"
	}
	return fmt.Sprintf("+%d%c", s.Value, s.Unit)
}
