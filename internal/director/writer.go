package director

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// storyboardHeader is written above the YAML as a hint for hand edits
const storyboardHeader = "# salesreel storyboard: keyframes are in seconds from the scene start\n"

// WriteStoryboard writes a storyboard to a YAML file, creating its directory
func WriteStoryboard(sb *Storyboard, path string) error {
	var buf bytes.Buffer
	buf.WriteString(storyboardHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sb); err != nil {
		return fmt.Errorf("encode storyboard: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadStoryboard reads a storyboard from a YAML file. Files written by another
// format version are rejected.
func ReadStoryboard(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if sb.Version != "" && sb.Version != StoryboardVersion {
		return nil, fmt.Errorf("%s: unsupported storyboard version %q (want %s)", path, sb.Version, StoryboardVersion)
	}
	return &sb, nil
}
