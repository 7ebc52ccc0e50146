package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SetValue sets a dotted key (for example "diff.algorithm") to value in the
// config file. Comments and formatting of other entries are preserved by
// editing the yaml.Node tree. Missing intermediate mappings are created.
func SetValue(configPath, key, value string) error {
	path := strings.Split(key, ".")
	for _, part := range path {
		if part == "" {
			return fmt.Errorf("invalid config key %q", key)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("config root is not a mapping")
	}

	node := root
	for i, part := range path {
		child := lookup(node, part)
		last := i == len(path)-1

		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode}
			if last {
				child = &yaml.Node{Kind: yaml.ScalarNode}
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: part},
				child,
			)
		}

		if last {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("config key %q is a section, not a value", key)
			}
			head, line, foot := child.HeadComment, child.LineComment, child.FootComment
			if err := child.Encode(scalarValue(value)); err != nil {
				return fmt.Errorf("encoding %q: %w", key, err)
			}
			child.HeadComment, child.LineComment, child.FootComment = head, line, foot
			break
		}

		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("config key %q: %q is not a section", key, part)
		}
		node = child
	}

	return writeAtomic(configPath, &doc)
}

// SetFlag enables or disables a feature flag in the config file.
func SetFlag(configPath, name string, enabled bool) error {
	return SetValue(configPath, "flags."+name, fmt.Sprintf("%t", enabled))
}

// scalarValue types a command-line value so that "true" is written as a
// bool and "120" as an int, while "10m" stays a string.
func scalarValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

// lookup returns the value node stored under key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func writeAtomic(configPath string, doc *yaml.Node) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	// Write to a temp file, then rename.
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".textdiff.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Render returns cfg as YAML, the way `textdiff config` prints it.
func Render(cfg Config) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return buf.String(), nil
}
