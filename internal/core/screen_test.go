package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 8)
	for y := 0; y < 3; y++ {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorOrange)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorOrange {
		t.Errorf("GetCell(5, 5) = %+v, expected orange X", c)
	}

	// Outside the buffer writes are dropped and reads are blank.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], 'A', ColorGreen)
		if s.GetCell(p[0], p[1]).Rune != ' ' {
			t.Errorf("Get(%d, %d) should be blank outside the buffer", p[0], p[1])
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRectColored(NewRect(0, 0, 4, 2), '#', ColorGreen)

	s.Clear()

	if got := s.String(); got != "    \n    " {
		t.Errorf("after Clear = %q", got)
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear kept a color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawText(2, 0, "Score")
	s.DrawTextColored(7, 1, "12345", ColorBrightWhite)

	if got := s.Row(0); got != "  Score   " {
		t.Errorf("Row(0) = %q", got)
	}
	// Clipped at the right edge.
	if got := s.Row(1); got != "       123" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(9, 1).Color != ColorBrightWhite {
		t.Error("text color not applied")
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(5, 4)

	// Pipe partly scrolled off the left and past the bottom.
	s.DrawRectColored(NewRect(-2, 2, 4, 5), '|', ColorGreen)

	expected := []string{
		"     ",
		"     ",
		"||   ",
		"||   ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRectColored(NewRect(0, 0, 7, 5), '.', ColorDefault)

	s.DrawBox(NewRect(1, 1, 5, 3), ColorGray)

	expected := []string{
		".......",
		".┌───┐.",
		".│   │.",
		".└───┘.",
		".......",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("frame color not applied")
	}
	if s.GetCell(3, 2).Color != ColorDefault {
		t.Error("box interior should be uncolored")
	}
}

func TestScreenDrawBoxEmpty(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 0, 3), ColorGray)
	if s.String() != "   \n   \n   " {
		t.Errorf("empty box drew %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("resized screen not blank: %q", s.String())
	}

	s.DrawText(0, 2, "bottom")
	if got := s.Row(2); got != "bottom" {
		t.Errorf("Row(2) = %q after resize", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should give an empty buffer, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestScreenRowOutside(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
