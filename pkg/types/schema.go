package types

// Field kinds determine how a field is compared, searched, and rendered.
const (
	FieldString = "string"
	FieldNumber = "number"
	FieldBool   = "bool"
	FieldDate   = "date"
	FieldRef    = "ref"
)

// validFieldKinds is the set of recognized field kinds.
var validFieldKinds = map[string]bool{
	FieldString: true,
	FieldNumber: true,
	FieldBool:   true,
	FieldDate:   true,
	FieldRef:    true,
}

// IsValidFieldKind reports whether the given string is a recognized field kind.
func IsValidFieldKind(kind string) bool {
	return validFieldKinds[kind]
}

// ReferenceSpec declares that a field holds the id of a record of another
// resource, resolved to a display value for search, sort, and rendering.
type ReferenceSpec struct {
	SourceField    string // Field on the referencing record holding the foreign id.
	TargetResource string // Resource the id points into.
	DisplayField   string // Field on the target record shown in place of the id.
}

// FieldSpec describes one field of a resource: its declared kind and whether
// the view pipeline may search or sort on it. Ref is non-nil exactly when
// Kind is FieldRef.
type FieldSpec struct {
	Name       string
	Kind       string
	Searchable bool
	Sortable   bool
	Ref        *ReferenceSpec
}

// Schema describes the fields of one resource type. The field order is the
// column order used by table output.
type Schema struct {
	Resource string
	Fields   []FieldSpec
}

// Field returns the spec for the named field.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// SearchableFields returns the fields the free-text search scans.
func (s Schema) SearchableFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range s.Fields {
		if f.Searchable {
			out = append(out, f)
		}
	}
	return out
}

// References returns the reference specs declared by this schema.
func (s Schema) References() []ReferenceSpec {
	var out []ReferenceSpec
	for _, f := range s.Fields {
		if f.Ref != nil {
			out = append(out, *f.Ref)
		}
	}
	return out
}

// Validate checks that the schema is well-formed: a non-empty resource name,
// recognized field kinds, and a ReferenceSpec on exactly the ref fields.
func (s Schema) Validate() error {
	if s.Resource == "" {
		return ErrResourceEmpty
	}
	for _, f := range s.Fields {
		if f.Name == "" {
			return ErrFieldNameEmpty
		}
		if !validFieldKinds[f.Kind] {
			return ErrInvalidFieldKind
		}
		if (f.Kind == FieldRef) != (f.Ref != nil) {
			return ErrInvalidReference
		}
		if f.Ref != nil && (f.Ref.SourceField == "" || f.Ref.TargetResource == "" || f.Ref.DisplayField == "") {
			return ErrInvalidReference
		}
	}
	return nil
}
