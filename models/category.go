package models

// Category identifies one of the five Swift reflection metadata sections.
type Category int

const (
	Field Category = iota
	AssociatedType
	BuiltinType
	TypeRef
	ReflectionStrings
)

var categoryNames = map[Category]string{
	Field:             "field reflection",
	AssociatedType:    "associated type",
	BuiltinType:       "builtin type",
	TypeRef:           "typeref",
	ReflectionStrings: "reflection strings",
}

// Each category is known under two spellings: the Mach-O convention
// ("__swift3_*", 16 byte section name limit) and the ELF/COFF convention
// (".swift3_*").
var categoryAliases = map[Category][]string{
	Field:             {"__swift3_fieldmd", ".swift3_fieldmd"},
	AssociatedType:    {"__swift3_assocty", ".swift3_assocty"},
	BuiltinType:       {"__swift3_builtin", ".swift3_builtin"},
	TypeRef:           {"__swift3_typeref", ".swift3_typeref"},
	ReflectionStrings: {"__swift3_reflstr", ".swift3_reflstr"},
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Aliases returns the accepted section names for this category, Mach-O
// spelling first. Matching is exact and case-sensitive.
func (c Category) Aliases() []string {
	return categoryAliases[c]
}

// Required reports whether a binary without this section is unusable for
// reflection dumping. AssociatedType and BuiltinType are optional; the
// other three must be present.
func (c Category) Required() bool {
	switch c {
	case AssociatedType, BuiltinType:
		return false
	}
	return true
}

// Categories returns all categories in declaration order, which is also the
// order the assembler checks them in.
func Categories() []Category {
	return []Category{Field, AssociatedType, BuiltinType, TypeRef, ReflectionStrings}
}
