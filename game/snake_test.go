package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/term-snake/terminal"
)

func newTestSnake(head Position, length int) (*Snake, *Food) {
	s := NewSnake(head, 80, 24)
	s.Length = length
	f := NewFood(80, 24, rand.New(rand.NewSource(1)))
	f.Place(Position{0, 0})
	return s, f
}

func TestEatFoodGrowsAndRespawns(t *testing.T) {
	rngA := rand.New(rand.NewSource(42))
	rngB := rand.New(rand.NewSource(42))

	food := NewFood(80, 24, rngA)
	expected := NewFood(80, 24, rngB)
	expected.Spawn()

	color := food.Color()
	s := NewSnake(food.Pos(), 80, 24)

	if !s.EatFood(food) {
		t.Fatal("Expected head on food to eat it")
	}
	if s.Length != 1 {
		t.Errorf("Expected length 1, got %d", s.Length)
	}
	if len(s.Colors) != 1 || s.Colors[0] != color {
		t.Errorf("Expected colors [%v], got %v", color, s.Colors)
	}
	if food.Pixel != expected.Pixel {
		t.Errorf("Expected respawn to %v, got %v", expected.Pixel, food.Pixel)
	}
}

func TestEatFoodMissHasNoSideEffect(t *testing.T) {
	s, food := newTestSnake(Position{5, 5}, 0)
	before := food.Pixel

	if s.EatFood(food) {
		t.Fatal("Expected no eat when head is elsewhere")
	}
	if s.Length != 0 || len(s.Colors) != 0 {
		t.Errorf("Expected unchanged snake, got length=%d colors=%v", s.Length, s.Colors)
	}
	if food.Pixel != before {
		t.Error("Expected food to stay in place")
	}
}

func TestEatFoodPrependsColors(t *testing.T) {
	s, food := newTestSnake(Position{5, 5}, 0)
	first := terminal.RGB{R: 1}
	second := terminal.RGB{G: 2}

	food.Pixel = NewPixel('0', Position{5, 5}, first)
	s.EatFood(food)
	food.Pixel = NewPixel('0', Position{5, 5}, second)
	s.EatFood(food)

	if len(s.Colors) != 2 || s.Colors[0] != second || s.Colors[1] != first {
		t.Errorf("Expected most recent color first, got %v", s.Colors)
	}
}

func TestBodyLengthClamped(t *testing.T) {
	const target = 3
	s, food := newTestSnake(Position{10, 10}, target)

	for n := 1; n <= 7; n++ {
		s.Update(food)
		if got, want := len(s.Body), min(n, target); got != want {
			t.Errorf("After %d updates: expected body %d, got %d", n, want, got)
		}
	}
}

func TestUpdateLaysSegmentAtHead(t *testing.T) {
	s, food := newTestSnake(Position{10, 10}, 2)

	s.Update(food)
	s.Update(food)

	if s.Head.Pos != (Position{12, 10}) {
		t.Errorf("Expected head (12,10), got %v", s.Head.Pos)
	}
	want := []Position{{11, 10}, {10, 10}}
	for i, p := range want {
		if s.Body[i].Pos != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, s.Body[i].Pos)
		}
		if s.Body[i].Glyph != '#' {
			t.Errorf("Segment %d: expected '#', got %q", i, s.Body[i].Glyph)
		}
	}
	if s.Head.Glyph != '@' || s.Head.Fg != terminal.Red {
		t.Errorf("Expected red '@' head, got %q %v", s.Head.Glyph, s.Head.Fg)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		head Position
		dir  Direction
		want Position
	}{
		{"past right edge", Position{81, 5}, Down, Position{0, 6}},
		{"past left edge", Position{-1, 5}, Down, Position{80, 6}},
		{"past top edge", Position{5, -1}, Right, Position{6, 24}},
		{"past bottom edge", Position{5, 25}, Right, Position{6, 0}},
		{"on the edge", Position{80, 24}, Up, Position{80, 23}},
		{"both axes out corrects x only", Position{-1, -1}, Left, Position{79, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, food := newTestSnake(tt.head, 0)
			s.Direction = tt.dir
			s.Update(food)
			if s.Head.Pos != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, s.Head.Pos)
			}
		})
	}
}

func TestEatSelf(t *testing.T) {
	s, food := newTestSnake(Position{5, 5}, 5)
	s.Body = []Pixel{NewPixel('#', Position{6, 5}, terminal.White)}

	s.Update(food)

	if !s.EatSelf() {
		t.Errorf("Expected head %v to hit body %v", s.Head.Pos, s.Body)
	}
}

func TestReversalCollides(t *testing.T) {
	s, food := newTestSnake(Position{5, 5}, 2)

	for i := 0; i < 3; i++ {
		s.Update(food)
		if s.EatSelf() {
			t.Fatalf("Unexpected collision on tick %d", i+1)
		}
	}

	s.ChangeDirection(terminal.KeyLeft)
	s.Update(food)

	if !s.EatSelf() {
		t.Error("Expected reversal to collide on the next tick")
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		key  terminal.Key
		want Direction
	}{
		{terminal.KeyUp, Up},
		{terminal.KeyDown, Down},
		{terminal.KeyLeft, Left},
		{terminal.KeyRight, Right},
		{terminal.KeyOther, Down},
		{terminal.KeyNone, Down},
		{terminal.KeyEscape, Down},
	}

	for _, tt := range tests {
		s := NewSnake(Position{}, 10, 10)
		s.Direction = Down
		s.ChangeDirection(tt.key)
		if s.Direction != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.key, tt.want, s.Direction)
		}
	}
}

func TestSegmentsTakeColorByRank(t *testing.T) {
	s, food := newTestSnake(Position{10, 10}, 0)
	first := terminal.RGB{R: 10}
	second := terminal.RGB{B: 20}

	food.Pixel = NewPixel('0', Position{11, 10}, first)
	s.Update(food)
	if !s.EatFood(food) {
		t.Fatal("Expected first food eaten")
	}

	food.Pixel = NewPixel('0', Position{12, 10}, second)
	s.Update(food)
	if !s.EatFood(food) {
		t.Fatal("Expected second food eaten")
	}

	food.Place(Position{0, 0})
	s.Update(food)

	if len(s.Body) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(s.Body))
	}
	if s.Body[0].Fg != second || s.Body[1].Fg != first {
		t.Errorf("Expected colors [%v %v], got [%v %v]", second, first, s.Body[0].Fg, s.Body[1].Fg)
	}
}
