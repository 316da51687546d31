package component

import (
	"sync"
	"testing"
)

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in   string
		want Direction
	}{
		{"left", DirLeft},
		{"up", DirUp},
		{"right", DirRight},
		{"down", DirDown},
		{"space", DirNone},
		{"", DirNone},
		{"UP", DirNone},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := ParseDirection(c.in); got != c.want {
				t.Fatalf("ParseDirection(%q) = %v, want %v", c.in, got, c.want)
			}
			if c.want.Valid() && c.want.String() != c.in {
				t.Fatalf("String round trip failed for %q", c.in)
			}
		})
	}
}

func TestInputSlotLastWriteWins(t *testing.T) {
	var s InputSlot
	s.Set(DirLeft)
	s.Set(DirUp)
	s.Set(Direction(42))
	s.Set(DirNone)

	if got := s.Take(); got != DirUp {
		t.Fatalf("expected up, got %v", got)
	}
	if got := s.Take(); got != DirNone {
		t.Fatalf("slot should be empty after take, got %v", got)
	}

	s.Set(DirDown)
	s.Clear()
	if got := s.Take(); got != DirNone {
		t.Fatalf("expected cleared slot, got %v", got)
	}
}

func TestInputSlotConcurrentWriters(t *testing.T) {
	var s InputSlot
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(d Direction) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(d)
			}
		}(Direction(i%4 + 1))
	}
	wg.Wait()

	if got := s.Take(); !got.Valid() {
		t.Fatalf("expected one valid direction, got %v", got)
	}
}
