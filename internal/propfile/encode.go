package propfile

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"isis-core/kind"
	"isis-core/value"
)

// Marshal serializes a property map to YAML. Kinds that would not be read
// back as themselves are tagged.
func Marshal(m *value.PropMap) ([]byte, error) {
	return yaml.Marshal(&File{Props: m})
}

// WriteFile writes a property map to the given path.
func WriteFile(m *value.PropMap, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal properties: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write property file %s: %w", path, err)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f *File) MarshalYAML() (any, error) {
	return encodeMap(f.Props), nil
}

func encodeMap(m *value.PropMap) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, key := range m.Keys() {
		p, _ := m.Lookup(key)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			encodeProperty(p))
	}

	return node
}

func encodeProperty(p value.Property) *yaml.Node {
	if p.IsEmpty() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
	}

	v := p.Value()
	k := v.Kind()

	if k == kind.KindPropertyMap {
		return encodeMap(*value.CastTo[*value.PropMap](v))
	}

	var node *yaml.Node

	switch {
	case k.IsVector(), k.IsList():
		node = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, e := range value.Elements(v) {
			node.Content = append(node.Content, encodeScalar(e))
		}
	case k == kind.KindColor24:
		c := *value.CastTo[value.Color24](v)
		node = channels(uint64(c.R), uint64(c.G), uint64(c.B))
	case k == kind.KindColor48:
		c := *value.CastTo[value.Color48](v)
		node = channels(uint64(c.R), uint64(c.G), uint64(c.B))
	default:
		node = encodeScalar(v)
	}

	if implied, _, err := kindOfNode(node); err != nil || implied != k {
		node.Tag = "!" + k.TypeName()
	}

	return node
}

func encodeScalar(v value.Value) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: v.ToString(false)}

	switch k := v.Kind(); {
	case k == kind.KindString:
		node.Tag = "!!str"
	case k == kind.KindBool:
		node.Tag = "!!bool"
	case k == kind.KindTimestamp:
		node.Tag = "!!timestamp"
	case k.IsInteger():
		node.Tag = "!!int"
	case k.IsFloat():
		node.Tag = floatTag(node.Value)
	}

	return node
}

// floatTag keeps whole floats like "2" from being read back as integers.
func floatTag(text string) string {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return "!!int"
	}

	return "!!float"
}

func channels(r, g, b uint64) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, c := range []uint64{r, g, b} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(c, 10),
		})
	}

	return node
}
