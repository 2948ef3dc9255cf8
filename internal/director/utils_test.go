package director

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateStoryboardPath(t *testing.T) {
	path := GenerateStoryboardPath(StoryboardDir)

	if !strings.HasPrefix(path, StoryboardDir+string(filepath.Separator)) {
		t.Errorf("Path should be in %s: %s", StoryboardDir, path)
	}
	if !strings.Contains(path, "storyboard_") {
		t.Errorf("Path should contain 'storyboard_': %s", path)
	}
	if filepath.Ext(path) != ".yaml" {
		t.Errorf("Path should end with .yaml: %s", path)
	}
}

func TestFindLatestStoryboard(t *testing.T) {
	dir := t.TempDir()

	if _, err := FindLatestStoryboard(dir); err == nil {
		t.Errorf("Expected error for empty directory")
	}

	older := filepath.Join(dir, "storyboard_a.yaml")
	newer := filepath.Join(dir, "storyboard_b.yaml")
	for _, p := range []string{older, newer, filepath.Join(dir, "notes.txt")} {
		if err := os.WriteFile(p, []byte("version: \"1.0\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	latest, err := FindLatestStoryboard(dir)
	if err != nil {
		t.Fatalf("FindLatestStoryboard failed: %v", err)
	}
	if latest != newer {
		t.Errorf("Expected %s, got %s", newer, latest)
	}
}
