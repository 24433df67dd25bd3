package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	values []int
	calls  []int
}

func (s *fixedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		mood int
		want Category
	}{
		{1, Low},
		{3, Low},
		{4, Moderate},
		{6, Moderate},
		{7, High},
		{10, High},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(tt.mood), "mood %d", tt.mood)
	}
}

func TestPoolsHaveFourMessages(t *testing.T) {
	for _, c := range []Category{Low, Moderate, High} {
		assert.Len(t, Pool(c), 4, string(c))
	}
}

func TestPoolReturnsCopy(t *testing.T) {
	p := Pool(Low)
	p[0] = "changed"
	assert.NotEqual(t, "changed", Pool(Low)[0])
}

func TestPickUsesInjectedSource(t *testing.T) {
	src := &fixedSource{values: []int{2, 0, 3}}
	p := NewPicker(src)

	assert.Equal(t, Pool(Low)[2], p.Pick(2))
	assert.Equal(t, Pool(Moderate)[0], p.Pick(6))
	assert.Equal(t, Pool(High)[3], p.Pick(7))
	assert.Equal(t, []int{4, 4, 4}, src.calls)
}

func TestPickDefaultSourceStaysInPool(t *testing.T) {
	p := NewPicker(nil)
	for i := 0; i < 50; i++ {
		assert.Contains(t, Pool(Moderate), p.Pick(5))
	}
}
