package schema

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"object-synth/typedesc"
)

// Document is the serializable form of a schema graph.
type Document struct {
	Path      string            `json:"path,omitempty"      yaml:"path,omitempty"`
	Member    string            `json:"member,omitempty"    yaml:"member,omitempty"`
	Role      string            `json:"role"                yaml:"role"`
	Kind      string            `json:"kind"                yaml:"kind"`
	Type      string            `json:"type"                yaml:"type"`
	Declared  string            `json:"declared,omitempty"  yaml:"declared,omitempty"`
	Owner     string            `json:"owner,omitempty"     yaml:"owner,omitempty"`
	Bindings  map[string]string `json:"bindings,omitempty"  yaml:"bindings,omitempty"`
	Cyclic    bool              `json:"cyclic,omitempty"    yaml:"cyclic,omitempty"`
	Truncated bool              `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Children  []*Document       `json:"children,omitempty"  yaml:"children,omitempty"`
}

// Export converts a graph into a Document tree. Bindings list only the
// entries a node introduces, not the ones it inherits.
func Export(n *Node) *Document {
	doc := &Document{
		Path:      n.path.String(),
		Member:    n.member,
		Role:      n.role.String(),
		Kind:      n.kind.String(),
		Type:      n.Key(),
		Cyclic:    n.cyclic,
		Truncated: n.truncated,
	}

	if declared := typedesc.Key(n.declared); declared != doc.Type {
		doc.Declared = declared
	}

	if owner := n.Owner(); !owner.IsZero() {
		doc.Owner = owner.String()
	}

	if n.parent == nil || n.binding != n.parent.binding {
		own := n.binding.Own()
		if len(own) > 0 {
			doc.Bindings = make(map[string]string, len(own))
			for slot, t := range own {
				doc.Bindings[slot.String()] = typedesc.Key(t)
			}
		}
	}

	for _, c := range n.children {
		doc.Children = append(doc.Children, Export(c))
	}

	return doc
}

// MarshalJSON renders the graph as indented JSON.
func MarshalJSON(n *Node) ([]byte, error) {
	return json.MarshalIndent(Export(n), "", "  ")
}

// MarshalYAML renders the graph as YAML.
func MarshalYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(Export(n))
}

// MarshalMsgpack renders the graph as MessagePack, keyed like the JSON form.
func MarshalMsgpack(n *Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(Export(n)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
