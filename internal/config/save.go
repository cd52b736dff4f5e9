package config

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// SaveThemeDirs replaces theme_dirs in the config file, preserving comments
// and formatting in other sections.
func SaveThemeDirs(configPath string, dirs []string) error {
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

	dirsNode := buildDirsNode(dirs)

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "theme_dirs"},
						dirsNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fmt.Errorf("parsing config: top level is not a mapping")
		}
		found := false
		for i := 0; i < len(root.Content)-1; i += 2 {
			if root.Content[i].Value == "theme_dirs" {
				root.Content[i+1] = dirsNode
				found = true
				break
			}
		}
		if !found {
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "theme_dirs"},
				dirsNode,
			)
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// AddThemeDir appends dir to theme_dirs unless it is already present.
func AddThemeDir(configPath string, existing []string, dir string) ([]string, error) {
	if slices.Contains(existing, dir) {
		return existing, nil
	}
	dirs := append(slices.Clone(existing), dir)
	if err := SaveThemeDirs(configPath, dirs); err != nil {
		return existing, err
	}
	return dirs, nil
}

func buildDirsNode(dirs []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range dirs {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: d})
	}
	return node
}
