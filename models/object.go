package models

// SectionInfo is one entry of an object's section table.
type SectionInfo struct {
	Name  string
	Range ByteRange
}

// Object is a single architecture's view into a binary: either a flat object
// file, or one slice of a universal binary.
type Object interface {
	Arch() string
	// Sections returns the section table in declaration order. Sections with
	// no file contents (zerofill, NOBITS) are omitted.
	Sections() []SectionInfo
}

// Binary is a loaded binary file, either a flat Object or a multi-slice
// container. The loader owns the underlying buffer; all Objects and ranges
// derived from a Binary borrow from it.
type Binary interface {
	// Object resolves the view for the named architecture. Flat binaries
	// return themselves without checking arch; containers select the slice
	// whose declared architecture matches exactly, or fail with
	// ArchNotFoundError.
	Object(arch string) (Object, error)
}
