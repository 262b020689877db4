package scene

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the shape of a field value.
type Kind int

const (
	_ Kind = iota // zero value is reserved as an invalid Kind

	KindScalar // primitive or built-in value, never rewritten
	KindRef    // single reference to a Node or Component, possibly null
	KindArray  // fixed-size sequence of references
	KindList   // dynamically sized ordered sequence of references
	KindRecord // nested value record holding fields of these same kinds
	KindOpaque // host value of a shape the walker does not understand

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// HoldsReferences reports whether values of this kind can carry references
// that the remapper may rewrite.
func (k Kind) HoldsReferences() bool {
	switch k {
	default:
		return false
	case KindRef, KindArray, KindList, KindRecord:
		return true
	}
}

var kindNames = [...]string{
	KindScalar: "scalar",
	KindRef:    "ref",
	KindArray:  "array",
	KindList:   "list",
	KindRecord: "record",
	KindOpaque: "opaque",
}

// Name returns the lowercase name used in schema and scene files, or ""
// for an invalid Kind.
func (k Kind) Name() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return ""
	}

	return kindNames[k]
}

// ParseKind maps the lowercase kind name used in schema and scene files.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name != "" && name == s {
			return Kind(k), true
		}
	}

	return 0, false
}
