package willowtree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const flareYAML = `
name: flare
children:
  - name: analytics
    children:
      - name: cluster
      - name: graph
  - name: animate
`

const flareJSON = `{"name":"flare","children":[{"name":"analytics","children":[{"name":"cluster"},{"name":"graph"}]},{"name":"animate"}]}`

func TestLoadTreeFormats(t *testing.T) {
	for _, tt := range []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", flareYAML, FormatYAML},
		{"json", flareJSON, FormatJSON},
		{"json as yaml", flareJSON, FormatYAML},
	} {
		t.Run(tt.name, func(t *testing.T) {
			root, err := LoadTree([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("LoadTree: %v", err)
			}
			if root.Name != "flare" || root.Count() != 5 {
				t.Errorf("root = %s with %d nodes, want flare with 5", root.Name, root.Count())
			}
			if root.Children[0].Children[1].Name != "graph" {
				t.Errorf("child order lost: %+v", root.Children[0])
			}
		})
	}
}

func TestLoadTreeErrors(t *testing.T) {
	if _, err := LoadTree([]byte("{"), FormatJSON); err == nil || !strings.Contains(err.Error(), "parse tree") {
		t.Errorf("malformed json: err = %v", err)
	}
	dup := "name: r\nchildren:\n  - name: a\n  - name: a\n"
	if _, err := LoadTree([]byte(dup), FormatYAML); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate names: err = %v, want ErrDuplicateName", err)
	}
	if _, err := LoadTree([]byte("children: []\n"), FormatYAML); !errors.Is(err, ErrEmptyName) {
		t.Errorf("missing name: err = %v, want ErrEmptyName", err)
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"tree.json": FormatJSON,
		"TREE.JSON": FormatJSON,
		"tree.yaml": FormatYAML,
		"tree.yml":  FormatYAML,
		"tree":      FormatYAML,
	} {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %d, want %d", path, got, want)
		}
	}
}

func TestLoadTreeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flare.json")
	if err := os.WriteFile(path, []byte(flareJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := LoadTreeFile(path)
	if err != nil {
		t.Fatalf("LoadTreeFile: %v", err)
	}
	if root.Count() != 5 {
		t.Errorf("Count = %d, want 5", root.Count())
	}

	if _, err := LoadTreeFile(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read tree") {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestMarshalTreeRoundTrip(t *testing.T) {
	root := tn("root", tn("A", tn("C")), tn("B"))
	for _, format := range []Format{FormatYAML, FormatJSON} {
		data, err := MarshalTree(root, format)
		if err != nil {
			t.Fatalf("MarshalTree(%d): %v", format, err)
		}
		back, err := LoadTree(data, format)
		if err != nil {
			t.Fatalf("LoadTree(%d): %v", format, err)
		}
		var got []string
		back.Walk(func(n *TreeNode) { got = append(got, n.Name) })
		if strings.Join(got, ",") != "root,A,C,B" {
			t.Errorf("format %d round trip = %v", format, got)
		}
	}
}
