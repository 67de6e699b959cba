package scope

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a mapping of name to binding. String values are parsed as
// expressions; other scalars and sequences are bound as values. To bind a
// string value, quote it inside the expression: name: '"text"'.
func (c *Context) LoadYAML(r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decoding bindings: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("bindings must be a mapping, line %d", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!str" {
			if err := c.Insert(key.Value, val.Value); err != nil {
				return fmt.Errorf("line %d: %w", val.Line, err)
			}
			continue
		}

		var x any
		if err := val.Decode(&x); err != nil {
			return fmt.Errorf("line %d: binding %s: %w", val.Line, key.Value, err)
		}
		if err := c.BindAny(key.Value, x); err != nil {
			return fmt.Errorf("line %d: %w", val.Line, err)
		}
	}
	return nil
}
