// FILE: lixenwraith/property/helper.go
package property

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// setFlat stores one flattened entry, rejecting a name defined twice
func setFlat(flat Properties, name, value string) error {
	if _, exists := flat[name]; exists {
		return fmt.Errorf("duplicate key %q", name)
	}
	flat[name] = value
	return nil
}

// flattenMap converts a nested map[string]any to a flat property set with dot-notation names.
// Leaves are stringified, arrays are joined with ListSeparator and nil leaves are dropped.
func flattenMap(nested map[string]any, prefix string) (Properties, error) {
	flat := make(Properties)
	if err := flattenMapInto(flat, nested, prefix); err != nil {
		return nil, err
	}
	return flat, nil
}

func flattenMapInto(flat Properties, nested map[string]any, prefix string) error {
	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		switch v := value.(type) {
		case nil:
			// A null leaf is absent, not blank
			continue
		case map[string]any:
			if err := flattenMapInto(flat, v, newPath); err != nil {
				return err
			}
		case []any:
			parts := make([]string, 0, len(v))
			for i, elem := range v {
				s, err := stringifyLeaf(elem)
				if err != nil {
					return fmt.Errorf("element %d of %s: %w", i, newPath, err)
				}
				parts = append(parts, s)
			}
			if err := setFlat(flat, newPath, strings.Join(parts, ListSeparator)); err != nil {
				return err
			}
		default:
			s, err := stringifyLeaf(v)
			if err != nil {
				return fmt.Errorf("value of %s: %w", newPath, err)
			}
			if err := setFlat(flat, newPath, s); err != nil {
				return err
			}
		}
	}

	return nil
}

// stringifyLeaf renders a JSON scalar as its property text.
// Numbers must arrive as json.Number so their digits are kept.
func stringifyLeaf(v any) (string, error) {
	switch v.(type) {
	case map[string]any, []any:
		return "", fmt.Errorf("nested %T cannot be a list element", v)
	case nil:
		return "", nil
	}
	return cast.ToStringE(v)
}

// flattenTOML walks a TOML document and keeps every scalar as written.
// Underscores are dropped from numbers and hex, octal and binary integers
// are rewritten in base 10; no number goes through a float or int64.
func flattenTOML(data []byte) (Properties, error) {
	flat := make(Properties)

	var p unstable.Parser
	p.Reset(data)

	table := ""
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			table = joinTOMLKey(expr.Key())
		case unstable.ArrayTable:
			return nil, fmt.Errorf("array of tables [[%s]] has no flat property form", joinTOMLKey(expr.Key()))
		case unstable.KeyValue:
			name := joinTOMLKey(expr.Key())
			if table != "" {
				name = table + "." + name
			}
			if err := flattenTOMLValue(flat, name, expr.Value()); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}

	return flat, nil
}

func joinTOMLKey(it unstable.Iterator) string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return strings.Join(parts, ".")
}

func flattenTOMLValue(flat Properties, name string, value *unstable.Node) error {
	switch value.Kind {
	case unstable.InlineTable:
		it := value.Children()
		for it.Next() {
			kv := it.Node()
			if err := flattenTOMLValue(flat, name+"."+joinTOMLKey(kv.Key()), kv.Value()); err != nil {
				return err
			}
		}
		return nil

	case unstable.Array:
		var parts []string
		it := value.Children()
		for i := 0; it.Next(); i++ {
			s, err := tomlScalarText(it.Node())
			if err != nil {
				return fmt.Errorf("element %d of %s: %w", i, name, err)
			}
			parts = append(parts, s)
		}
		return setFlat(flat, name, strings.Join(parts, ListSeparator))
	}

	s, err := tomlScalarText(value)
	if err != nil {
		return fmt.Errorf("value of %s: %w", name, err)
	}
	return setFlat(flat, name, s)
}

func tomlScalarText(n *unstable.Node) (string, error) {
	switch n.Kind {
	case unstable.String, unstable.Bool,
		unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return string(n.Data), nil

	case unstable.Float:
		return strings.ReplaceAll(string(n.Data), "_", ""), nil

	case unstable.Integer:
		text := strings.ReplaceAll(string(n.Data), "_", "")
		if len(text) > 2 && text[0] == '0' && strings.ContainsAny(text[1:2], "xob") {
			i, ok := new(big.Int).SetString(text, 0)
			if !ok {
				return "", fmt.Errorf("invalid integer %q", n.Data)
			}
			return i.String(), nil
		}
		return text, nil
	}
	return "", fmt.Errorf("nested %v cannot be a list element", n.Kind)
}

// flattenYAML walks a YAML document and keeps the text of every scalar.
// Null values are dropped. Merge keys fill in names the mapping does not set itself.
func flattenYAML(data []byte) (Properties, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	flat := make(Properties)
	if len(doc.Content) == 0 {
		return flat, nil // Empty document
	}

	root := yamlAlias(doc.Content[0])
	switch {
	case root.Kind == yaml.MappingNode:
		if err := flattenYAMLMapping(flat, root, ""); err != nil {
			return nil, err
		}
		return flat, nil
	case root.ShortTag() == "!!null":
		return flat, nil
	}
	return nil, fmt.Errorf("top level must be a mapping, got %s", root.ShortTag())
}

func yamlAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func flattenYAMLMapping(flat Properties, m *yaml.Node, prefix string) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], yamlAlias(m.Content[i+1])
		if key.ShortTag() == "!!merge" {
			merges = append(merges, value)
			continue
		}

		name := key.Value
		if prefix != "" {
			name = prefix + "." + key.Value
		}
		if err := flattenYAMLValue(flat, name, value); err != nil {
			return err
		}
	}

	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, src := range sources {
			src = yamlAlias(src)
			if src.Kind != yaml.MappingNode {
				return fmt.Errorf("merge key under %q must reference a mapping", prefix)
			}
			merged := make(Properties)
			if err := flattenYAMLMapping(merged, src, prefix); err != nil {
				return err
			}
			for name, value := range merged {
				if _, exists := flat[name]; !exists {
					flat[name] = value
				}
			}
		}
	}

	return nil
}

func flattenYAMLValue(flat Properties, name string, value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		return flattenYAMLMapping(flat, value, name)

	case yaml.SequenceNode:
		parts := make([]string, 0, len(value.Content))
		for i, elem := range value.Content {
			elem = yamlAlias(elem)
			if elem.Kind != yaml.ScalarNode {
				return fmt.Errorf("element %d of %s: nested values cannot be list elements", i, name)
			}
			if elem.ShortTag() == "!!null" {
				parts = append(parts, "")
				continue
			}
			parts = append(parts, elem.Value)
		}
		return setFlat(flat, name, strings.Join(parts, ListSeparator))

	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			return nil
		}
		return setFlat(flat, name, value.Value)
	}
	return fmt.Errorf("unsupported YAML value for %s", name)
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist. A path that runs through an
// existing value, or lands on an existing section, is an ErrNameConflict.
func setNestedValue(nested map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if !exists {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
			continue
		}
		nextMap, isMap := next.(map[string]any)
		if !isMap {
			return fmt.Errorf("%w: %q and %q", ErrNameConflict, strings.Join(segments[:i+1], "."), path)
		}
		current = nextMap
	}

	leaf := segments[len(segments)-1]
	if _, isMap := current[leaf].(map[string]any); isMap {
		return fmt.Errorf("%w: %q is also a section", ErrNameConflict, path)
	}
	current[leaf] = value
	return nil
}

// nestProperties builds a nested map from dot-separated names, in sorted order.
// A name that is also the prefix of another name, such as "version" next to
// "version.suffix", cannot be nested and fails with ErrNameConflict.
func nestProperties(props Properties, skipBlank bool) (map[string]any, error) {
	nested := make(map[string]any)
	for _, name := range props.Names() {
		value := props[name]
		if skipBlank && strings.TrimSpace(value) == "" {
			continue
		}
		if err := setNestedValue(nested, name, value); err != nil {
			return nil, err
		}
	}
	return nested, nil
}

// navigateToPath traverses nested map to reach the specified path
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}

	return current
}
