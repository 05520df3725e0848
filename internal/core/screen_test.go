package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 6)
	for y := range 3 {
		if s.Row(y) != want {
			t.Errorf("row %d = %q, expected blank", y, s.Row(y))
		}
	}
}

func TestScreenSetAt(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, '#', ColorBlue)

	if cell := s.At(1, 1); cell.Rune != '#' || cell.Color != ColorBlue {
		t.Errorf("At(1, 1) = %+v, expected '#' in blue", cell)
	}
	if s.Get(1, 1) != '#' {
		t.Errorf("Get(1, 1) = %q, expected '#'", s.Get(1, 1))
	}

	s.Set(-1, 0, 'X', ColorRed)
	s.Set(4, 0, 'X', ColorRed)
	if strings.Contains(s.String(), "X") {
		t.Error("out of bounds Set should be ignored")
	}
	if got := s.At(9, 9); got != (Cell{Rune: ' '}) {
		t.Errorf("out of bounds At = %+v, expected blank", got)
	}
}

func TestScreenPrintClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.Print(3, 0, "abc", ColorGreen)

	if s.Row(0) != "   ab" {
		t.Errorf("row = %q, expected %q", s.Row(0), "   ab")
	}
	if s.At(4, 0).Color != ColorGreen {
		t.Error("printed cells should carry the color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRect(3, 1, 4, 4), '#', ColorRed)

	expected := "     \n   ##\n   ##"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillRect(NewRect(0, 0, 3, 2), '#', ColorRed)
	s.Clear()

	if s.String() != "   \n   " {
		t.Errorf("Clear left %q", s.String())
	}
	if s.At(0, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(0, 0, 'X', ColorRed)

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should blank the buffer")
	}

	s.Resize(-1, 4)
	if s.Width() != 0 || s.String() != "\n\n\n" {
		t.Errorf("negative width should become zero, got %d and %q", s.Width(), s.String())
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected blank", s.Row(5))
	}
}

func TestScreenTransformMirror(t *testing.T) {
	s := NewScreen(3, 2)
	s.Print(0, 0, "AB", ColorDefault)

	s.Transform(true, 0, 0)

	if s.Row(1) != " BA" {
		t.Errorf("mirrored row 1 = %q, expected %q", s.Row(1), " BA")
	}
	if s.Row(0) != "   " {
		t.Errorf("mirrored row 0 = %q, expected blank", s.Row(0))
	}
}

func TestScreenTransformShift(t *testing.T) {
	s := NewScreen(4, 1)
	s.Print(0, 0, "ABCD", ColorDefault)

	s.Transform(false, 1, 0)
	if s.Row(0) != " ABC" {
		t.Errorf("shifted row = %q, expected %q", s.Row(0), " ABC")
	}

	s.Transform(false, -2, 0)
	if s.Row(0) != "BC  " {
		t.Errorf("shifted back row = %q, expected %q", s.Row(0), "BC  ")
	}
}

func TestScreenRecolorSkipsBlanks(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(2, 1, 'X', ColorDefault)

	var gotX, gotY int
	s.Recolor(func(x, y int, _ Color) Color {
		gotX, gotY = x, y
		return ColorRed
	})

	if gotX != 2 || gotY != 1 {
		t.Errorf("Recolor visited (%d, %d), expected (2, 1)", gotX, gotY)
	}
	if s.At(2, 1).Color != ColorRed {
		t.Error("non-blank cell should be recolored")
	}
	if s.At(0, 0).Color != ColorDefault {
		t.Error("blank cell should keep its color")
	}
}
