package propfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"isis-core/convert"
	"isis-core/internal/diagnostic"
	"isis-core/kind"
	"isis-core/value"
)

var ErrNotMapping = errors.New("property file must hold a mapping")

// File is a decoded property file.
type File struct {
	Props       *value.PropMap
	Diagnostics diagnostic.Diagnostics
}

// LoadFile reads and decodes the property file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes YAML data. Only malformed YAML or a document that is not a
// mapping fail, values that cannot be decoded end up in Diagnostics.
func Parse(data []byte) (*File, error) {
	f := &File{}

	err := yaml.Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property YAML: %w", err)
	}

	if f.Props == nil {
		f.Props = value.NewPropMap()
	}

	return f, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w, got %s", ErrNotMapping, nodeKindName(node.Kind))
	}

	f.Props = value.NewPropMap()
	f.Diagnostics = diagnostic.Diagnostics{}

	d := decoder{registry: convert.Default(), diags: &f.Diagnostics}
	d.mapping(f.Props, "", node)

	return nil
}

type decoder struct {
	registry *convert.Registry
	diags    *diagnostic.Diagnostics
}

func (d *decoder) mapping(m *value.PropMap, prefix string, node *yaml.Node) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		path := prefix + keyNode.Value

		if keyNode.Kind != yaml.ScalarNode || keyNode.Value == "" {
			d.invalid(path, keyNode, "keys must be non-empty scalars")
			continue
		}

		if valNode.Kind == yaml.AliasNode {
			valNode = valNode.Alias
		}

		if valNode.Kind == yaml.MappingNode && isBranchTag(valNode) {
			sub, err := m.Branch(keyNode.Value)
			if err != nil {
				d.invalid(path, keyNode, err.Error())
				continue
			}

			d.mapping(sub, path+value.PathSeparator, valNode)

			continue
		}

		v, err := d.value(valNode)
		if err != nil {
			d.report(path, valNode, err)
			continue
		}

		if err := m.SetProperty(keyNode.Value, value.PropertyOf(v)); err != nil {
			d.invalid(path, keyNode, err.Error())
		}
	}
}

// value decodes a scalar or sequence node, nil for null.
func (d *decoder) value(node *yaml.Node) (value.Value, error) {
	k, tagged, err := kindOfNode(node)
	if err != nil {
		return nil, err
	}

	if k == 0 {
		return nil, nil
	}

	switch {
	case k.IsColor():
		return decodeColor(node, k)
	case node.Kind == yaml.SequenceNode:
		return decodeSequence(node, k)
	case node.Kind != yaml.ScalarNode:
		return nil, fmt.Errorf("%w: %s cannot hold %s", convert.ErrUnsupported, nodeKindName(node.Kind), k.TypeName())
	case tagged:
		return d.registry.Generate(value.New(node.Value), k)
	}

	return decodeNative(node, k)
}

// kindOfNode returns the kind selected by the tag of node, or implied by its
// content. Null nodes return 0.
func kindOfNode(node *yaml.Node) (k kind.KindEnum, tagged bool, err error) {
	tag := node.Tag
	if tag != "" && !strings.HasPrefix(tag, "!!") && tag != "!" {
		k, ok := kind.FromName(strings.TrimPrefix(tag, "!"))
		if !ok {
			return 0, true, fmt.Errorf("%w: unknown kind tag %s", convert.ErrUnsupported, tag)
		}

		return k, true, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return scalarKind(node), false, nil
	case yaml.SequenceNode:
		return sequenceKind(node.Content), false, nil
	}

	return 0, false, fmt.Errorf("%w: %s has no kind", convert.ErrUnsupported, nodeKindName(node.Kind))
}

func scalarKind(node *yaml.Node) kind.KindEnum {
	switch node.ShortTag() {
	case "!!null":
		return 0
	case "!!int":
		return kind.KindInt32
	case "!!float":
		return kind.KindFloat64
	case "!!bool":
		return kind.KindBool
	case "!!timestamp":
		return kind.KindTimestamp
	default:
		return kind.KindString
	}
}

// sequenceKind infers the list kind of untagged elements: all integers are
// an ilist, integers mixed with floats a dlist, anything else an slist.
func sequenceKind(elems []*yaml.Node) kind.KindEnum {
	if len(elems) == 0 {
		return kind.KindSList
	}

	res := kind.KindIList
	for _, e := range elems {
		if e.Kind != yaml.ScalarNode {
			return kind.KindSList
		}

		switch e.ShortTag() {
		case "!!int":
		case "!!float":
			res = kind.KindDList
		default:
			return kind.KindSList
		}
	}

	return res
}

func decodeNative(node *yaml.Node, k kind.KindEnum) (value.Value, error) {
	switch k {
	case kind.KindInt32:
		var n int64
		if err := node.Decode(&n); err != nil {
			return nil, fmt.Errorf("%w: %v", convert.ErrAmbiguous, err)
		}

		v, err := value.FromAny(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", convert.ErrOverflow, err)
		}

		return v, nil
	case kind.KindFloat64:
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %v", convert.ErrAmbiguous, err)
		}

		return value.New(f), nil
	case kind.KindBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: %v", convert.ErrAmbiguous, err)
		}

		return value.New(b), nil
	case kind.KindTimestamp:
		var ts time.Time
		if err := node.Decode(&ts); err != nil {
			return nil, fmt.Errorf("%w: %v", convert.ErrAmbiguous, err)
		}

		return value.New(ts.UTC()), nil
	default:
		return value.New(node.Value), nil
	}
}

// decodeSequence parses every element of a sequence into a list or the
// leading components of a vector.
func decodeSequence(node *yaml.Node, k kind.KindEnum) (value.Value, error) {
	if !k.IsList() && !k.IsVector() {
		return nil, fmt.Errorf("%w: a sequence cannot hold %s", convert.ErrUnsupported, k.TypeName())
	}

	elems := make([]value.Value, 0, len(node.Content))
	for i, e := range node.Content {
		if e.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: element %d is a %s", convert.ErrAmbiguous, i, nodeKindName(e.Kind))
		}

		v, err := convert.ParseScalar(e.Value, k.Elem())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		elems = append(elems, v)
	}

	res := value.Zero(k)
	if k.IsList() {
		value.AppendElements(res, elems)
		return res, nil
	}

	if err := value.AssignComponents(res, elems); err != nil {
		return nil, fmt.Errorf("%w: %v", convert.ErrAmbiguous, err)
	}

	return res, nil
}

// decodeColor reads three channels from a sequence or a scalar like "255 0 0".
func decodeColor(node *yaml.Node, k kind.KindEnum) (value.Value, error) {
	channel := kind.KindUint8
	if k == kind.KindColor48 {
		channel = kind.KindUint16
	}

	var (
		elems []value.Value
		err   error
	)

	switch node.Kind {
	case yaml.ScalarNode:
		elems, err = convert.ParseElements(node.Value, channel)
	case yaml.SequenceNode:
		texts := make([]string, len(node.Content))
		for i, e := range node.Content {
			texts[i] = e.Value
		}

		elems, err = convert.ParseElements(strings.Join(texts, " "), channel)
	default:
		err = fmt.Errorf("%w: %s cannot hold %s", convert.ErrUnsupported, nodeKindName(node.Kind), k.TypeName())
	}

	if err != nil {
		return nil, err
	}

	if len(elems) != 3 {
		return nil, fmt.Errorf("%w: %s needs 3 channels, got %d", convert.ErrAmbiguous, k.TypeName(), len(elems))
	}

	r, g, b := value.Number(elems[0]), value.Number(elems[1]), value.Number(elems[2])
	if k == kind.KindColor48 {
		return value.New(value.Color48{R: uint16(r), G: uint16(g), B: uint16(b)}), nil
	}

	return value.New(value.Color24{R: uint8(r), G: uint8(g), B: uint8(b)}), nil
}

func isBranchTag(node *yaml.Node) bool {
	return node.Tag == "" || node.ShortTag() == "!!map" || node.Tag == "!"+kind.KindPropertyMap.TypeName()
}

func (d *decoder) report(path string, node *yaml.Node, err error) {
	d.diags.Add(diagnostic.Diagnostic{
		Severity:  diagnostic.DiagnosticError,
		Code:      convert.StatusOf(err).Code(),
		Message:   fmt.Sprintf("line %d: %v", node.Line, err),
		FieldPath: path,
	})
}

func (d *decoder) invalid(path string, node *yaml.Node, msg string) {
	d.diags.AddError(diagnostic.CodeInvalidFile, fmt.Sprintf("line %d: %s", node.Line, msg), "", path)
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
