package openapi

import (
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Order records the declaration order of components.schemas and of each
// schema's properties. kin-openapi parses both into Go maps, which lose the
// order the document declared them in; generated output must be stable and
// follow the source, so the raw document is walked a second time with
// yaml.Node to rebuild the order. yaml.v3 also parses JSON documents.
type Order struct {
	// Schemas lists component schema names in declaration order
	Schemas []string
	// Properties maps a schema name to its property names in declaration order
	Properties map[string][]string
}

// DocumentOrder builds the declaration-order index for a spec input. URL
// inputs return an empty index; callers fall back to sorted order.
func DocumentOrder(input string) (*Order, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return &Order{Properties: map[string][]string{}}, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	return ParseOrder(data)
}

// ParseOrder builds the declaration-order index from raw YAML or JSON bytes
func ParseOrder(data []byte) (*Order, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	out := &Order{Properties: map[string][]string{}}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	schemas := mappingValue(mappingValue(doc, "components"), "schemas")
	if schemas == nil || schemas.Kind != yaml.MappingNode {
		return out, nil
	}

	for i := 0; i+1 < len(schemas.Content); i += 2 {
		name := schemas.Content[i].Value
		out.Schemas = append(out.Schemas, name)

		props := mappingValue(schemas.Content[i+1], "properties")
		if props == nil || props.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(props.Content); j += 2 {
			out.Properties[name] = append(out.Properties[name], props.Content[j].Value)
		}
	}
	return out, nil
}

// mappingValue returns the value node for a key in a mapping node, or nil
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
