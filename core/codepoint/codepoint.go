/*
Package codepoint handles sets of Unicode scalar ranges.

Font generation for a locale is driven by the set of codepoints the
locale's script requires. Ranges are written in the hex notation the
font converter understands, e.g. "0x20-0x7E" or a comma-separated list
"0x3040-0x309F,0x30A0-0x30FF".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package codepoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/lvfont/core"
)

// SupplementaryBoundary is the first codepoint outside the Basic
// Multilingual Plane. Ranges starting at or above it have to be drawn
// from a font with upper-plane coverage.
const SupplementaryBoundary rune = 0x10000

// Range is an inclusive range of Unicode scalar values.
type Range struct {
	Lo, Hi rune
}

// Parse reads a single range in hex notation, either "0x20-0x7E" or a
// lone codepoint "0xE000".
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	l, err := parseHex(lo)
	if err != nil {
		return Range{}, err
	}
	h, err := parseHex(hi)
	if err != nil {
		return Range{}, err
	}
	if h < l {
		return Range{}, core.Error(core.EINVALID, "codepoint range ends before it starts: %s", s)
	}
	return Range{Lo: l, Hi: h}, nil
}

func parseHex(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not a codepoint in hex notation: %s", s)
	}
	return rune(n), nil
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("0x%X", r.Lo)
	}
	return fmt.Sprintf("0x%X-0x%X", r.Lo, r.Hi)
}

// Contains checks whether a codepoint falls into r.
func (r Range) Contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

// Len returns the number of codepoints in r.
func (r Range) Len() int {
	return int(r.Hi-r.Lo) + 1
}

// --- Range sets ------------------------------------------------------------

// Set is an ordered set of ranges, sorted by their low ends and free of
// exact duplicates. Overlapping ranges are kept as they are; the converter
// accepts them and locales routinely share ranges between scripts.
type Set struct {
	ranges *treeset.Set
}

func compareRanges(a, b interface{}) int {
	ra, rb := a.(Range), b.(Range)
	if ra.Lo != rb.Lo {
		return int(ra.Lo - rb.Lo)
	}
	return int(ra.Hi - rb.Hi)
}

// NewSet creates a set from ranges.
func NewSet(ranges ...Range) *Set {
	s := &Set{ranges: treeset.NewWith(compareRanges)}
	for _, r := range ranges {
		s.ranges.Add(r)
	}
	return s
}

// ParseSet reads a comma-separated list of ranges in hex notation.
func ParseSet(list string) (*Set, error) {
	s := NewSet()
	for _, part := range strings.Split(list, ",") {
		r, err := Parse(part)
		if err != nil {
			return nil, err
		}
		s.ranges.Add(r)
	}
	return s, nil
}

// Add inserts ranges into the set.
func (s *Set) Add(ranges ...Range) {
	for _, r := range ranges {
		s.ranges.Add(r)
	}
}

// AddList parses a comma-separated range list and inserts the result.
func (s *Set) AddList(list string) error {
	other, err := ParseSet(list)
	if err != nil {
		return err
	}
	s.AddSet(other)
	return nil
}

// AddSet inserts all ranges of another set.
func (s *Set) AddSet(other *Set) {
	if other == nil {
		return
	}
	for _, r := range other.Ranges() {
		s.ranges.Add(r)
	}
}

// Ranges returns the ranges in ascending order.
func (s *Set) Ranges() []Range {
	rr := make([]Range, 0, s.ranges.Size())
	for _, v := range s.ranges.Values() {
		rr = append(rr, v.(Range))
	}
	return rr
}

// Size returns the number of ranges in the set.
func (s *Set) Size() int {
	return s.ranges.Size()
}

// IsEmpty checks whether the set contains no ranges.
func (s *Set) IsEmpty() bool {
	return s.ranges.Empty()
}

// Contains checks whether a codepoint falls into any range of the set.
func (s *Set) Contains(c rune) bool {
	for _, r := range s.Ranges() {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// SplitAt partitions the set into ranges starting below the boundary and
// ranges starting at or above it. A range straddling the boundary goes
// into the lower part, as the base font is expected to cover it.
func (s *Set) SplitAt(boundary rune) (lower, upper *Set) {
	lower, upper = NewSet(), NewSet()
	for _, r := range s.Ranges() {
		if r.Lo >= boundary {
			upper.ranges.Add(r)
		} else {
			lower.ranges.Add(r)
		}
	}
	return lower, upper
}

// ArgString formats the set as the comma-separated list the converter
// takes for its '-r' option.
func (s *Set) ArgString() string {
	parts := make([]string, 0, s.ranges.Size())
	for _, r := range s.Ranges() {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

func (s *Set) String() string {
	return "{" + s.ArgString() + "}"
}
