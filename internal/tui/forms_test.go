package tui

import "testing"

func TestFormFocusWraps(t *testing.T) {
	f := newForm(newTextField("a"), newChoiceField([]string{"x", "y"}, 0), newPagerField())
	f.setActive(true)

	if !f.fields[0].focused {
		t.Fatal("first field should be focused")
	}
	f.prev()
	if f.focus != 2 || !f.fields[2].focused || f.fields[0].focused {
		t.Errorf("prev from 0: focus = %d", f.focus)
	}
	f.next()
	if f.focus != 0 {
		t.Errorf("next from last: focus = %d, want 0", f.focus)
	}
	f.focusField(1)
	if f.current() != f.fields[1] {
		t.Error("focusField(1) did not focus the choice field")
	}
	f.setActive(false)
	if f.fields[1].focused {
		t.Error("setActive(false) should blur")
	}
}

func TestChoiceFieldMove(t *testing.T) {
	c := newChoiceField([]string{"5", "10", "15", "20"}, 1)

	tests := []struct {
		delta int
		want  string
	}{
		{delta: 1, want: "15"},
		{delta: 1, want: "20"},
		{delta: 1, want: "5"},
		{delta: -1, want: "20"},
	}
	for _, tt := range tests {
		if !c.move(tt.delta) {
			t.Fatal("move() should report a change")
		}
		if got := c.value(); got != tt.want {
			t.Errorf("value() = %q, want %q", got, tt.want)
		}
	}

	if newTextField("").move(1) {
		t.Error("text fields do not move")
	}
}

func TestTextFieldValue(t *testing.T) {
	f := newTextField("topic")
	f.text.SetValue("cooking")
	if f.value() != "cooking" {
		t.Errorf("value() = %q", f.value())
	}
	f.reset()
	if f.value() != "" {
		t.Errorf("value() after reset = %q", f.value())
	}
}
