package toolbox

import "testing"

func TestPagerWraps(t *testing.T) {
	var p Pager
	p.Reset(3)

	steps := []struct {
		next bool
		want int
	}{
		{true, 1},
		{true, 2},
		{true, 0},
		{false, 2},
		{false, 1},
		{false, 0},
		{false, 2},
	}
	for i, s := range steps {
		var got int
		if s.next {
			got = p.Next()
		} else {
			got = p.Prev()
		}
		if got != s.want {
			t.Errorf("step %d: index = %d, want %d", i, got, s.want)
		}
	}
}

func TestPagerEmpty(t *testing.T) {
	var p Pager
	if p.Next() != 0 || p.Prev() != 0 {
		t.Error("empty pager should stay at 0")
	}
}
