package nodes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// compileInputSchema builds a JSON Schema for a node's scalar input slots.
// Image slots are not JSON values and are checked separately.
func compileInputSchema(nodeName string, inputs []Slot) (*jsonschema.Schema, error) {
	props := map[string]any{}
	var required []string

	for _, s := range inputs {
		switch s.Kind {
		case KindString:
			p := map[string]any{"type": "string"}
			if len(s.Enum) > 0 {
				p["enum"] = s.Enum
			}
			props[s.Name] = p
		case KindInt:
			props[s.Name] = map[string]any{"type": "integer"}
		default:
			continue
		}
		if s.Required {
			required = append(required, s.Name)
		}
	}

	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema for %s: %w", nodeName, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(nodeName+".json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("schema resource for %s: %w", nodeName, err)
	}
	s, err := c.Compile(nodeName + ".json")
	if err != nil {
		return nil, fmt.Errorf("compile schema for %s: %w", nodeName, err)
	}
	return s, nil
}

// validateInputs checks bound inputs against the node's declaration: scalar
// slots against the compiled schema, image slots by type.
func validateInputs(node Node, schema *jsonschema.Schema, in Values) error {
	scalars := map[string]any{}
	for _, s := range node.Inputs() {
		switch s.Kind {
		case KindImage:
			v, bound := in[s.Name]
			if !bound || v == nil {
				if s.Required {
					return fmt.Errorf("%s: input %q is required", node.Name(), s.Name)
				}
				continue
			}
			if _, ok := v.(*ImageBuffer); !ok {
				return fmt.Errorf("%s: input %q must be an image, got %T", node.Name(), s.Name, v)
			}
		case KindInt, KindString:
			if v, bound := in[s.Name]; bound {
				scalars[s.Name] = v
			}
		}
	}

	raw, err := json.Marshal(scalars)
	if err != nil {
		return fmt.Errorf("%s: marshal inputs: %w", node.Name(), err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: parse inputs: %w", node.Name(), err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", node.Name(), err)
	}
	return nil
}
