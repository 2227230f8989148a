package willowtree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a tree file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatOf guesses the format from a file extension. Anything that is not
// .json is read as YAML, which also accepts JSON.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadTree decodes and validates a tree. The document is a single node:
//
//	name: flare
//	children:
//	  - name: analytics
//	  - name: animate
func LoadTree(data []byte, format Format) (*TreeNode, error) {
	var root TreeNode
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &root)
	default:
		err = yaml.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	if err := ValidateTree(&root); err != nil {
		return nil, fmt.Errorf("invalid tree: %w", err)
	}
	return &root, nil
}

// LoadTreeFile reads a tree from path, picking the decoder by extension.
func LoadTreeFile(path string) (*TreeNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	root, err := LoadTree(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// MarshalTree encodes root in the given format.
func MarshalTree(root *TreeNode, format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(root, "", "  ")
	}
	return yaml.Marshal(root)
}
