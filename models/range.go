package models

// ByteRange is a non-owning view of one section's contents. Start and End
// are offsets within the owning object's buffer; Data aliases that buffer
// and stays valid only as long as the loaded binary is held.
//
// The zero ByteRange is the "absent" sentinel used for optional sections
// that were not found.
type ByteRange struct {
	Start, End uint64
	Data       []byte
}

func NewByteRange(start, end uint64, data []byte) ByteRange {
	return ByteRange{Start: start, End: end, Data: data}
}

// Absent reports whether this range is the missing-section sentinel.
// An empty but present section (Start == End with a live view) is not absent.
func (r ByteRange) Absent() bool {
	return r.Data == nil && r.Start == r.End
}

func (r ByteRange) Len() uint64 {
	return r.End - r.Start
}
