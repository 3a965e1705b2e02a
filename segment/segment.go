// Package segment implements the address-anchored byte accumulator the
// code generator emits into, and the flattener that merges a job's
// segments into one contiguous image (spec §4.3).
package segment

// OutputSegment is an append-only byte buffer anchored at StartAddress. A
// new one is created whenever a .org directive changes the current
// address, or implicitly at address 0 if emission begins without one.
type OutputSegment struct {
	StartAddress int64
	Bytes        []byte
}

// End returns the address one past the last byte currently in the segment.
func (s *OutputSegment) End() int64 {
	return s.StartAddress + int64(len(s.Bytes))
}

// Append adds b to the segment's buffer.
func (s *OutputSegment) Append(b ...byte) {
	s.Bytes = append(s.Bytes, b...)
}

// Segments is the ordered list of segments a generation job has produced.
// Overlapping segments are permitted (spec §4.3, §9): later writes at a
// given address win when flattened.
type Segments []*OutputSegment

// Flatten merges segs into one contiguous byte array per the §4.3 contract:
// min = min(StartAddress), max = max(StartAddress+len(Bytes)), the result
// has length max-min, zero-filled, with each segment copied in at its
// offset from min, later segments in the list overwriting earlier ones
// where ranges overlap. An empty input yields an empty array.
func Flatten(segs Segments) []byte {
	if len(segs) == 0 {
		return []byte{}
	}

	min := segs[0].StartAddress
	max := segs[0].End()
	for _, s := range segs[1:] {
		if s.StartAddress < min {
			min = s.StartAddress
		}
		if e := s.End(); e > max {
			max = e
		}
	}

	out := make([]byte, max-min)
	for _, s := range segs {
		copy(out[s.StartAddress-min:], s.Bytes)
	}
	return out
}
