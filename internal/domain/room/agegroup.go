package room

// AgeGroup classifies a room by the age band of the children it serves.
type AgeGroup string

const (
	AgeGroupInfant    AgeGroup = "infant"
	AgeGroupToddler   AgeGroup = "toddler"
	AgeGroupPreschool AgeGroup = "preschool"
	AgeGroupSchoolAge AgeGroup = "school_age"
	AgeGroupMixed     AgeGroup = "mixed"
)

func (g AgeGroup) IsValid() bool {
	switch g {
	case AgeGroupInfant, AgeGroupToddler, AgeGroupPreschool, AgeGroupSchoolAge, AgeGroupMixed:
		return true
	}
	return false
}

func (g AgeGroup) String() string {
	return string(g)
}

// DefaultRatio returns the licensing-default ratio for the age group, used
// when a room is created without an explicit required ratio.
func (g AgeGroup) DefaultRatio() Ratio {
	switch g {
	case AgeGroupInfant:
		return Ratio{staff: 1, children: 4}
	case AgeGroupToddler:
		return Ratio{staff: 1, children: 6}
	case AgeGroupPreschool:
		return Ratio{staff: 1, children: 10}
	case AgeGroupSchoolAge:
		return Ratio{staff: 1, children: 12}
	case AgeGroupMixed:
		// Mixed-age rooms fall back to the toddler ratio, the strictest
		// band that commonly applies.
		return Ratio{staff: 1, children: 6}
	default:
		return Ratio{}
	}
}
