package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColorAndBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(3, 4, 'A', ColorBrightCyan)
	if c := s.GetCell(3, 4); c.Rune != 'A' || c.Color != ColorBrightCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected A/BrightCyan", c)
	}

	// Out of bounds writes are ignored and reads return blanks.
	s.SetColor(-1, 0, 'X', ColorRed)
	s.SetColor(10, 0, 'X', ColorRed)
	s.Set(0, 10, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(8, 0, "héllo", ColorYellow)

	if got := s.Row(0); got != "        hé" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if s.GetCell(9, 0).Color != ColorYellow {
		t.Error("DrawTextColor should color every written cell")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, '#')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should leave a blank buffer")
	}
}
