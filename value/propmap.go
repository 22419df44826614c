package value

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"isis-core/corelog"
	"isis-core/internal/match"
	"isis-core/utils"
)

// PathSeparator separates the levels of a hierarchical property path.
const PathSeparator = "/"

var (
	ErrInvalidPath  = errors.New("invalid property path")
	ErrPathConflict = errors.New("property path is blocked by a non-map property")
)

// PropMap is a hierarchical name → Property map. Keys are enumerated in
// sorted order. A path like "acquisition/voxelSize" addresses the property
// voxelSize inside the nested map held by acquisition. The zero value is an
// empty map ready to use.
type PropMap struct {
	entries map[string]*Property
}

func NewPropMap() *PropMap {
	return &PropMap{entries: map[string]*Property{}}
}

// splitPath returns the first level of path and the remainder.
func splitPath(path string) (head, rest string, err error) {
	trimmed := strings.Trim(path, PathSeparator)
	if trimmed == "" || strings.Contains(trimmed, PathSeparator+PathSeparator) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	head, rest = utils.Unpack2(strings.SplitN(trimmed, PathSeparator, 2))

	return head, rest, nil
}

// Len returns the number of entries on this level.
func (m *PropMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Keys returns the keys of this level in sorted order.
func (m *PropMap) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(m.entries))
}

// Paths returns the full paths of all leaf properties in sorted order.
// Nested maps are descended into, empty properties are included.
func (m *PropMap) Paths() []string {
	var res []string
	m.walk("", func(path string, _ *Property) {
		res = append(res, path)
	})

	return res
}

func (m *PropMap) walk(prefix string, fn func(path string, p *Property)) {
	for _, key := range m.Keys() {
		p := m.entries[key]
		if sub, ok := branchOf(p); ok {
			sub.walk(prefix+key+PathSeparator, fn)
			continue
		}

		fn(prefix+key, p)
	}
}

func branchOf(p *Property) (*PropMap, bool) {
	if p == nil || !Is[*PropMap](p.v) {
		return nil, false
	}

	sub := *CastTo[*PropMap](p.v)

	return sub, sub != nil
}

// find resolves path without creating anything.
func (m *PropMap) find(path string) (*Property, bool) {
	if m == nil {
		return nil, false
	}

	head, rest, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	p, ok := m.entries[head]
	if !ok {
		return nil, false
	}

	if rest == "" {
		return p, true
	}

	sub, ok := branchOf(p)
	if !ok {
		return nil, false
	}

	return sub.find(rest)
}

// Lookup returns the property at path without creating it.
func (m *PropMap) Lookup(path string) (Property, bool) {
	p, ok := m.find(path)
	if !ok {
		return Property{}, false
	}

	return *p, true
}

// HasProperty reports whether path exists and holds a value.
func (m *PropMap) HasProperty(path string) bool {
	p, ok := m.find(path)
	return ok && !p.IsEmpty()
}

// PropertyValue returns the property cell at path for reading and writing.
// Missing properties are created empty on first access, together with any
// missing intermediate maps. An empty intermediate property becomes a map,
// a non-empty non-map one yields ErrPathConflict.
func (m *PropMap) PropertyValue(path string) (*Property, error) {
	head, rest, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	p, ok := m.entries[head]
	if !ok {
		if m.entries == nil {
			m.entries = map[string]*Property{}
		}

		p = &Property{}
		m.entries[head] = p
	}

	if rest == "" {
		return p, nil
	}

	sub, ok := branchOf(p)
	if !ok {
		if !p.IsEmpty() {
			corelog.CoreLog().Error("cannot descend into property",
				"path", path, "key", head, "type", p.TypeName())

			return nil, fmt.Errorf("%w: %s holds %s", ErrPathConflict, head, p.TypeName())
		}

		sub = NewPropMap()
		p.Replace(New(sub))
	}

	return sub.PropertyValue(rest)
}

// Branch returns the nested map at path, creating it if needed.
func (m *PropMap) Branch(path string) (*PropMap, error) {
	p, err := m.PropertyValue(path)
	if err != nil {
		return nil, err
	}

	if sub, ok := branchOf(p); ok {
		return sub, nil
	}

	if !p.IsEmpty() {
		return nil, fmt.Errorf("%w: %s holds %s", ErrPathConflict, path, p.TypeName())
	}

	sub := NewPropMap()
	p.Replace(New(sub))

	return sub, nil
}

// SetProperty stores p at path, replacing whatever was there.
func (m *PropMap) SetProperty(path string, p Property) error {
	cell, err := m.PropertyValue(path)
	if err != nil {
		return err
	}

	*cell = p

	return nil
}

// SetValue wraps a native payload and stores it at path.
func SetValue[T Payload](m *PropMap, path string, v T) error {
	return m.SetProperty(path, NewProperty(v))
}

// Remove deletes the entry at path and reports whether it existed.
func (m *PropMap) Remove(path string) bool {
	head, rest, err := splitPath(path)
	if err != nil || m == nil {
		return false
	}

	p, ok := m.entries[head]
	if !ok {
		return false
	}

	if rest == "" {
		delete(m.entries, head)
		return true
	}

	sub, ok := branchOf(p)
	if !ok {
		return false
	}

	return sub.Remove(rest)
}

// Missing returns the needed paths that do not hold a value.
func (m *PropMap) Missing(needed ...string) []string {
	var res []string
	for _, path := range needed {
		if !m.HasProperty(path) {
			res = append(res, path)
		}
	}

	return res
}

// Join copies every non-empty leaf of other into m. Existing values that
// differ are kept unless overwrite is set; their paths are returned.
func (m *PropMap) Join(other *PropMap, overwrite bool) []string {
	var rejected []string

	other.walk("", func(path string, p *Property) {
		if p.IsEmpty() {
			return
		}

		if cur, ok := m.find(path); ok && !cur.IsEmpty() && !overwrite {
			if !cur.Equal(*p) {
				rejected = append(rejected, path)
			}

			return
		}

		if err := m.SetProperty(path, p.Clone()); err != nil {
			rejected = append(rejected, path)
		}
	})

	return rejected
}

// PropertyPair holds both sides of a difference.
type PropertyPair struct {
	Left, Right Property
}

// Diff returns the paths whose properties differ between m and other,
// a side missing the path reports an empty Property.
func (m *PropMap) Diff(other *PropMap) map[string]PropertyPair {
	res := map[string]PropertyPair{}

	m.walk("", func(path string, p *Property) {
		o, _ := other.Lookup(path)
		if !p.Equal(o) {
			res[path] = PropertyPair{Left: *p, Right: o}
		}
	})

	other.walk("", func(path string, p *Property) {
		if _, ok := m.find(path); !ok && !p.IsEmpty() {
			res[path] = PropertyPair{Right: *p}
		}
	})

	return res
}

// Suggest returns up to n existing paths resembling path, best match first.
func (m *PropMap) Suggest(path string, n int) []string {
	return match.RankKeys(path, m.Paths()).Top(n, match.SuggestThreshold)
}

// Clone returns a deep copy.
func (m *PropMap) Clone() *PropMap {
	if m == nil {
		return nil
	}

	res := &PropMap{entries: make(map[string]*Property, len(m.entries))}
	for key, p := range m.entries {
		c := p.Clone()
		res.entries[key] = &c
	}

	return res
}

// Equal reports whether both maps hold the same keys with equal properties.
func (m *PropMap) Equal(other *PropMap) bool {
	if m.Len() != other.Len() {
		return false
	}

	for _, key := range m.Keys() {
		o, ok := other.entries[key]
		if !ok || !m.entries[key].Equal(*o) {
			return false
		}
	}

	return true
}

// String renders one "path: value" line per leaf.
func (m *PropMap) String() string {
	return m.ToString(false)
}

// ToString renders one "path: value" line per leaf, labeled values carry their type.
func (m *PropMap) ToString(labeled bool) string {
	var lines []string
	m.walk("", func(path string, p *Property) {
		lines = append(lines, path+": "+p.ToString(labeled))
	})

	return strings.Join(lines, "\n")
}
