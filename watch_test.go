package willowtree

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyReloadsKeepsLatest(t *testing.T) {
	c := newTestController(t)
	reloads := make(chan *TreeNode, 3)
	reloads <- tn("first")
	reloads <- tn("second", tn("child"))

	if !ApplyReloads(c, reloads) {
		t.Fatal("ApplyReloads reported no reset")
	}
	if !c.State().Has("second") || c.State().Has("first") {
		t.Errorf("names = %v, want the latest tree", c.State().Names())
	}
	if ApplyReloads(c, reloads) {
		t.Error("ApplyReloads on an empty channel reported a reset")
	}

	close(reloads)
	if ApplyReloads(c, reloads) {
		t.Error("ApplyReloads on a closed channel reported a reset")
	}
}

func TestWatchReloadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	if err := os.WriteFile(path, []byte("name: before\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Files next to the tree are ignored.
	os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("name: other\n"), 0o644)
	// An invalid intermediate save is skipped once a valid one follows.
	os.WriteFile(path, []byte("name: ''\n"), 0o644)
	os.WriteFile(path, []byte("name: after\nchildren:\n  - name: leaf\n"), 0o644)

	select {
	case root := <-reloads:
		if root.Name != "after" || root.Count() != 2 {
			t.Errorf("reloaded %s with %d nodes, want after with 2", root.Name, root.Count())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	cancel()
	select {
	case _, ok := <-reloads:
		if ok {
			t.Error("unexpected reload after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "tree.yaml"), nil)
	if err == nil {
		t.Error("Watch on a missing directory should fail")
	}
}
