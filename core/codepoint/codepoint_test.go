package codepoint

import (
	"testing"
)

func TestParseRange(t *testing.T) {
	for input, expect := range map[string]Range{
		"0x20-0x7E":       {0x20, 0x7e},
		"0xA0-0xFF":       {0xa0, 0xff},
		"0x1F300-0x1F9FF": {0x1f300, 0x1f9ff},
		"0xE000":          {0xe000, 0xe000},
	} {
		r, err := Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		if r != expect {
			t.Errorf("parsed %s to %v, expected %v", input, r, expect)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "0x7E-0x20", "0xZZ", "20-7E-FF"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected parsing %q to fail, didn't", input)
		}
	}
}

func TestRangeString(t *testing.T) {
	r := Range{0x400, 0x4ff}
	if r.String() != "0x400-0x4FF" {
		t.Errorf("range formatted as %s", r)
	}
	single := Range{0xe000, 0xe000}
	if single.String() != "0xE000" {
		t.Errorf("single-codepoint range formatted as %s", single)
	}
}

func TestSetOrderAndDedup(t *testing.T) {
	s := NewSet()
	if err := s.AddList("0x4E00-0x9FFF,0x3040-0x309F,0x30A0-0x30FF"); err != nil {
		t.Fatal(err)
	}
	s.Add(Range{0x4e00, 0x9fff}) // duplicate, must collapse
	if s.Size() != 3 {
		t.Fatalf("expected 3 ranges in set, have %d", s.Size())
	}
	if s.ArgString() != "0x3040-0x309F,0x30A0-0x30FF,0x4E00-0x9FFF" {
		t.Errorf("unexpected arg string %s", s.ArgString())
	}
}

func TestSetSplitAtPlaneBoundary(t *testing.T) {
	s := NewSet()
	err := s.AddList("0x20-0x7E,0x2600-0x26FF,0x1F300-0x1F9FF,0x1FA70-0x1FAFF")
	if err != nil {
		t.Fatal(err)
	}
	lower, upper := s.SplitAt(SupplementaryBoundary)
	if lower.Size() != 2 || upper.Size() != 2 {
		t.Fatalf("split into %d + %d ranges, expected 2 + 2", lower.Size(), upper.Size())
	}
	if upper.ArgString() != "0x1F300-0x1F9FF,0x1FA70-0x1FAFF" {
		t.Errorf("unexpected upper ranges %s", upper.ArgString())
	}
	if lower.Contains(0x1f300) {
		t.Errorf("lower part should not contain supplementary codepoints")
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet(Range{0x20, 0x7e}, Range{0xa0, 0xff})
	if !s.Contains('A') || !s.Contains(0xe9) {
		t.Errorf("expected set to contain Latin codepoints")
	}
	if s.Contains(0x7f) {
		t.Errorf("0x7F is in neither range")
	}
}
