package room

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio is a staff-to-children ratio such as "1:4": one staff member may
// supervise at most four children.
type Ratio struct {
	staff    int
	children int
}

// ParseRatio parses a "S:C" ratio string. Both sides must be positive
// integers.
func ParseRatio(s string) (Ratio, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Ratio{}, fmt.Errorf("invalid ratio format %q: expected S:C", s)
	}

	staff, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || staff <= 0 {
		return Ratio{}, fmt.Errorf("invalid staff count in ratio %q", s)
	}

	children, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || children <= 0 {
		return Ratio{}, fmt.Errorf("invalid child count in ratio %q", s)
	}

	return Ratio{staff: staff, children: children}, nil
}

func (r Ratio) Staff() int    { return r.staff }
func (r Ratio) Children() int { return r.children }

func (r Ratio) IsZero() bool {
	return r.staff == 0 && r.children == 0
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.staff, r.children)
}

// MaxChildren returns the number of children the given staff count may
// supervise under this ratio. The allowance scales with the child side
// only: every staff member counted may supervise up to C children.
func (r Ratio) MaxChildren(staffCount int) int {
	if staffCount <= 0 {
		return 0
	}
	return staffCount * r.children
}

// IsSatisfiedBy reports whether a headcount complies with this ratio.
// A room with zero staff is never compliant, even when it holds zero
// children.
func (r Ratio) IsSatisfiedBy(staffCount, childCount int) bool {
	if staffCount <= 0 {
		return false
	}
	return childCount <= r.MaxChildren(staffCount)
}
