package alignkit

import "alignkit/segment"

// HorizontalLayout is the ordered sequence of horizontal business segments,
// terminated by a zero-length sentinel once non-empty. Segments are only
// ever inserted before the sentinel.
type HorizontalLayout struct {
	segs []*segment.Horizontal
}

// Segments returns the segments in order, sentinel last.
func (l *HorizontalLayout) Segments() []*segment.Horizontal {
	return l.segs
}

// HasSentinel reports whether the layout ends in its zero-length sentinel.
func (l *HorizontalLayout) HasSentinel() bool {
	return len(l.segs) > 0 && l.segs[len(l.segs)-1].IsSentinel()
}

// Sentinel returns the trailing zero-length segment, or nil.
func (l *HorizontalLayout) Sentinel() *segment.Horizontal {
	if !l.HasSentinel() {
		return nil
	}
	return l.segs[len(l.segs)-1]
}

// LastReal returns the last segment with nonzero length, or nil.
func (l *HorizontalLayout) LastReal() *segment.Horizontal {
	for i := len(l.segs) - 1; i >= 0; i-- {
		if !l.segs[i].IsSentinel() {
			return l.segs[i]
		}
	}
	return nil
}

// Length returns the total length of the layout's real segments.
func (l *HorizontalLayout) Length() float64 {
	var sum float64
	for _, s := range l.segs {
		sum += s.Length
	}
	return sum
}

func (l *HorizontalLayout) insert(seg *segment.Horizontal) {
	if sent := l.Sentinel(); sent != nil {
		l.segs[len(l.segs)-1] = seg
		l.segs = append(l.segs, sent)
		return
	}
	l.segs = append(l.segs, seg)
}

// VerticalLayout is the ordered sequence of vertical business segments of
// one profile, terminated by a zero-length sentinel once non-empty.
type VerticalLayout struct {
	segs []*segment.Vertical
}

func (l *VerticalLayout) Segments() []*segment.Vertical {
	return l.segs
}

func (l *VerticalLayout) HasSentinel() bool {
	return len(l.segs) > 0 && l.segs[len(l.segs)-1].IsSentinel()
}

func (l *VerticalLayout) Sentinel() *segment.Vertical {
	if !l.HasSentinel() {
		return nil
	}
	return l.segs[len(l.segs)-1]
}

func (l *VerticalLayout) LastReal() *segment.Vertical {
	for i := len(l.segs) - 1; i >= 0; i-- {
		if !l.segs[i].IsSentinel() {
			return l.segs[i]
		}
	}
	return nil
}

func (l *VerticalLayout) Length() float64 {
	var sum float64
	for _, s := range l.segs {
		sum += s.Length
	}
	return sum
}

func (l *VerticalLayout) insert(seg *segment.Vertical) {
	if sent := l.Sentinel(); sent != nil {
		l.segs[len(l.segs)-1] = seg
		l.segs = append(l.segs, sent)
		return
	}
	l.segs = append(l.segs, seg)
}

// CantLayout is the ordered sequence of superelevation business segments
// of one profile, terminated by a zero-length sentinel once non-empty.
type CantLayout struct {
	segs []*segment.Cant
}

func (l *CantLayout) Segments() []*segment.Cant {
	return l.segs
}

func (l *CantLayout) HasSentinel() bool {
	return len(l.segs) > 0 && l.segs[len(l.segs)-1].IsSentinel()
}

func (l *CantLayout) Sentinel() *segment.Cant {
	if !l.HasSentinel() {
		return nil
	}
	return l.segs[len(l.segs)-1]
}

func (l *CantLayout) LastReal() *segment.Cant {
	for i := len(l.segs) - 1; i >= 0; i-- {
		if !l.segs[i].IsSentinel() {
			return l.segs[i]
		}
	}
	return nil
}

func (l *CantLayout) Length() float64 {
	var sum float64
	for _, s := range l.segs {
		sum += s.Length
	}
	return sum
}

func (l *CantLayout) insert(seg *segment.Cant) {
	if sent := l.Sentinel(); sent != nil {
		l.segs[len(l.segs)-1] = seg
		l.segs = append(l.segs, sent)
		return
	}
	l.segs = append(l.segs, seg)
}
