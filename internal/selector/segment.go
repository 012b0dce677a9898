package selector

// Segment is the component range [Start, End) and the combinator that
// follows it. The last segment of a selector is its anchor and has
// CombinatorNone.
type Segment struct {
	Start      int
	End        int
	Combinator Combinator

	// Meta holds the node-level filters of this segment alone.
	Meta Metadata
}

// splitter closes segments while components are appended, so a selector
// is segmented in the same pass that reads it.
type splitter struct {
	sel   *Selector
	start int
}

// cut closes the segment holding the components read since the last cut.
func (s *splitter) cut(c Combinator) {
	s.sel.Segments = append(s.sel.Segments, Segment{
		Start:      s.start,
		End:        len(s.sel.Components),
		Combinator: c,
	})
	s.start = len(s.sel.Components)
}

// SegmentComponents returns the components of segment i.
func (s *Selector) SegmentComponents(i int) []Component {
	seg := s.Segments[i]
	return s.Components[seg.Start:seg.End]
}
