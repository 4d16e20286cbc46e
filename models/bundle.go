package models

// Bundle is the assembled set of resolved section ranges for one binary or
// slice. It is immutable after creation. Every range in it borrows from the
// loaded binary's buffer, so the binary must be kept alive until the bundle's
// consumer is done.
type Bundle struct {
	// Binary is the display name of the originating binary, for diagnostics.
	Binary string

	ranges map[Category]ByteRange
}

// NewBundle copies ranges, so later changes to the caller's map do not leak
// into the bundle.
func NewBundle(binary string, ranges map[Category]ByteRange) *Bundle {
	m := make(map[Category]ByteRange, len(ranges))
	for cat, r := range ranges {
		m[cat] = r
	}
	return &Bundle{Binary: binary, ranges: m}
}

// Range returns the resolved range for cat, or the absent sentinel.
func (b *Bundle) Range(cat Category) ByteRange {
	return b.ranges[cat]
}

// Sink consumes one assembled Bundle. The bundle's byte ranges are only
// guaranteed valid for the duration of the call.
type Sink interface {
	Consume(*Bundle) error
}
