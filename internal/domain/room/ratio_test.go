package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		staff    int
		children int
	}{
		{name: "toddler ratio", input: "1:6", staff: 1, children: 6},
		{name: "infant ratio", input: "1:4", staff: 1, children: 4},
		{name: "multi staff", input: "2:13", staff: 2, children: 13},
		{name: "whitespace tolerated", input: " 1 : 10 ", staff: 1, children: 10},
		{name: "missing colon", input: "16", wantErr: true},
		{name: "too many parts", input: "1:6:2", wantErr: true},
		{name: "zero staff", input: "0:6", wantErr: true},
		{name: "zero children", input: "1:0", wantErr: true},
		{name: "negative children", input: "1:-4", wantErr: true},
		{name: "non numeric", input: "one:six", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRatio(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.staff, r.Staff())
			assert.Equal(t, tt.children, r.Children())
		})
	}
}

func TestRatio_String(t *testing.T) {
	r, err := ParseRatio("1:6")
	require.NoError(t, err)
	assert.Equal(t, "1:6", r.String())
}

func TestRatio_IsSatisfiedBy(t *testing.T) {
	oneToSix, err := ParseRatio("1:6")
	require.NoError(t, err)

	tests := []struct {
		name       string
		staffCount int
		childCount int
		want       bool
	}{
		{name: "under limit", staffCount: 2, childCount: 11, want: true},
		{name: "at limit", staffCount: 2, childCount: 12, want: true},
		{name: "over limit", staffCount: 1, childCount: 10, want: false},
		{name: "one over", staffCount: 2, childCount: 13, want: false},
		{name: "zero children with staff", staffCount: 1, childCount: 0, want: true},
		{name: "zero staff never compliant", staffCount: 0, childCount: 0, want: false},
		{name: "zero staff with children", staffCount: 0, childCount: 3, want: false},
		{name: "negative staff", staffCount: -1, childCount: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oneToSix.IsSatisfiedBy(tt.staffCount, tt.childCount))
		})
	}
}

func TestRatio_MaxChildren(t *testing.T) {
	oneToFour, err := ParseRatio("1:4")
	require.NoError(t, err)

	assert.Equal(t, 4, oneToFour.MaxChildren(1))
	assert.Equal(t, 12, oneToFour.MaxChildren(3))
	assert.Equal(t, 0, oneToFour.MaxChildren(0))

	twoToThirteen, err := ParseRatio("2:13")
	require.NoError(t, err)

	assert.Equal(t, 13, twoToThirteen.MaxChildren(1))
	assert.Equal(t, 26, twoToThirteen.MaxChildren(2))
	assert.Equal(t, 39, twoToThirteen.MaxChildren(3))
	assert.True(t, twoToThirteen.IsSatisfiedBy(1, 13))
	assert.False(t, twoToThirteen.IsSatisfiedBy(1, 14))
}

func TestAgeGroup_DefaultRatio(t *testing.T) {
	assert.Equal(t, "1:4", AgeGroupInfant.DefaultRatio().String())
	assert.Equal(t, "1:6", AgeGroupToddler.DefaultRatio().String())
	assert.Equal(t, "1:10", AgeGroupPreschool.DefaultRatio().String())
	assert.Equal(t, "1:12", AgeGroupSchoolAge.DefaultRatio().String())
	assert.True(t, AgeGroup("bogus").DefaultRatio().IsZero())
}
