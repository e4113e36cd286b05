package spotcheck

// CheckMethod records how a spot-check observation was taken.
type CheckMethod string

const (
	CheckMethodInPerson CheckMethod = "in_person"
	CheckMethodCCTV     CheckMethod = "cctv"
	CheckMethodOther    CheckMethod = "other"
)

// IsValid reports whether the method is one of the recognized values.
// Unknown methods are rejected, never coerced to "other"; coercion hides
// client bugs.
func (m CheckMethod) IsValid() bool {
	switch m {
	case CheckMethodInPerson, CheckMethodCCTV, CheckMethodOther:
		return true
	}
	return false
}

func (m CheckMethod) String() string {
	return string(m)
}
