package view

import (
	"sort"

	"github.com/fathomline/gridview/pkg/resolve"
	"github.com/fathomline/gridview/pkg/types"
)

// fieldComparator orders two records by one field. It returns a negative,
// zero, or positive value in the usual cmp convention, and is only called
// with records where the field value is present and well-formed.
type fieldComparator func(a, b types.Record) int

// applySort orders the records by the sort key using the comparator for the
// field's declared kind. The sort is stable, so equal keys keep fetch order.
// Records with a missing or malformed key value sort first in ascending
// order and last in descending order, independent of the comparator. The
// input slice is never reordered; a sorted copy is returned.
func (p *Projector) applySort(records []types.Record, cache *resolve.Cache, s types.SortState) []types.Record {
	if s.Key == "" {
		return records
	}
	field, ok := p.schema.Field(s.Key)
	if !ok || !field.Sortable {
		return records
	}

	cmp, present := p.comparatorFor(field, cache)
	desc := s.Direction == types.SortDesc

	out := make([]types.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aOK, bOK := present(a), present(b)
		switch {
		case !aOK && !bOK:
			return false
		case !aOK:
			return !desc // nulls first ascending, last descending
		case !bOK:
			return desc
		}
		if desc {
			return cmp(a, b) > 0
		}
		return cmp(a, b) < 0
	})
	return out
}

// comparatorFor selects the comparator and presence check for a field's
// declared kind. Selection happens once per sort, not per comparison.
func (p *Projector) comparatorFor(field types.FieldSpec, cache *resolve.Cache) (fieldComparator, func(types.Record) bool) {
	key := field.Name
	switch field.Kind {
	case types.FieldNumber:
		return func(a, b types.Record) int {
				x, _ := a.NumberField(key)
				y, _ := b.NumberField(key)
				switch {
				case x < y:
					return -1
				case x > y:
					return 1
				}
				return 0
			}, func(r types.Record) bool {
				_, ok := r.NumberField(key)
				return ok
			}
	case types.FieldBool:
		return func(a, b types.Record) int {
				x, _ := a.BoolField(key)
				y, _ := b.BoolField(key)
				switch {
				case !x && y:
					return -1
				case x && !y:
					return 1
				}
				return 0
			}, func(r types.Record) bool {
				_, ok := r.BoolField(key)
				return ok
			}
	case types.FieldDate:
		return func(a, b types.Record) int {
				x, _ := a.TimeField(key)
				y, _ := b.TimeField(key)
				return x.Compare(y)
			}, func(r types.Record) bool {
				_, ok := r.TimeField(key)
				return ok
			}
	case types.FieldRef:
		ref := field.Ref
		return func(a, b types.Record) int {
				x, _ := a.StringField(ref.SourceField)
				y, _ := b.StringField(ref.SourceField)
				return p.collator.CompareString(cache.SearchText(ref.TargetResource, x),
					cache.SearchText(ref.TargetResource, y))
			}, func(r types.Record) bool {
				id, ok := r.StringField(ref.SourceField)
				return ok && id != ""
			}
	default:
		return func(a, b types.Record) int {
				x, _ := a.StringField(key)
				y, _ := b.StringField(key)
				return p.collator.CompareString(x, y)
			}, func(r types.Record) bool {
				_, ok := r.StringField(key)
				return ok
			}
	}
}
