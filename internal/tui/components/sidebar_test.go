package components

import (
	"testing"

	"github.com/hcminh/folio/internal/content"
)

var navItems = []content.NavItem{
	{Header: "Portfolio"},
	{ID: "summary", Title: "Summary"},
	{ID: "skills", Title: "Skills"},
	{Header: "Toolbox"},
	{ID: "script-timer", Title: "Script Timer"},
}

func TestSidebarSkipsHeaders(t *testing.T) {
	s := NewSidebar(navItems)
	if got := s.Selected(); got != "summary" {
		t.Fatalf("initial Selected() = %q, want summary", got)
	}

	moves := []struct {
		down bool
		want string
	}{
		{down: true, want: "skills"},
		{down: true, want: "script-timer"},
		{down: true, want: "script-timer"},
		{down: false, want: "skills"},
		{down: false, want: "summary"},
		{down: false, want: "summary"},
	}
	for i, mv := range moves {
		if mv.down {
			s.MoveDown()
		} else {
			s.MoveUp()
		}
		if got := s.Selected(); got != mv.want {
			t.Errorf("move %d: Selected() = %q, want %q", i, got, mv.want)
		}
	}
}

func TestSidebarSetItemsKeepsSelection(t *testing.T) {
	s := NewSidebar(navItems)
	s.Select("script-timer")

	translated := []content.NavItem{
		{Header: "Hồ sơ"},
		{ID: "summary", Title: "Tóm tắt"},
		{ID: "skills", Title: "Kỹ năng"},
		{Header: "Hộp công cụ"},
		{ID: "script-timer", Title: "Hẹn giờ kịch bản"},
	}
	s.SetItems(translated)
	if got := s.Selected(); got != "script-timer" {
		t.Errorf("Selected() after SetItems = %q, want script-timer", got)
	}

	if s.Select("Toolbox") {
		t.Error("Select should reject unknown ids")
	}
}

func TestStripOSC(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "  hello world ", want: "hello world"},
		{in: "\x1b]11;rgb:0000/0000/0000\x07hello", want: "hello"},
	}
	for _, tt := range tests {
		if got := stripOSC(tt.in); got != tt.want {
			t.Errorf("stripOSC(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
