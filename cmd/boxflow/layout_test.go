package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxflow/internal/config"
	"github.com/grindlemire/boxflow/internal/docfile"
)

const sidebarYAML = `
id: page
props:
  width: 300
  height: 100
  padding: 10
  flex-direction: row
children:
  - id: nav
    props:
      width: 80
  - id: main
    props:
      flex-grow: 1
`

const gridJSON = `{
  "id": "grid",
  "props": {"display": "grid", "template-columns": "1fr 1fr", "template-rows": "40 auto"},
  "children": [
    {"id": "head", "props": {"column": "1 / span 2"}},
    {"id": "left"},
    {"id": "right"}
  ]
}`

const unsizedTOML = `
id = "unsized"
[[children]]
id = "half"
[children.props]
width = "50%"
`

func TestLayout_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "page.yaml", sidebarYAML)

	out, err := run(t, "layout", path)
	require.NoError(t, err)

	var got docfile.Box
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "page", got.ID)
	assert.Equal(t, docfile.Rect{Width: 300, Height: 100}, got.Bounds)
	assert.Equal(t, docfile.Rect{X: 10, Y: 10, Width: 280, Height: 80}, got.Content)

	require.Len(t, got.Children, 2)
	assert.Equal(t, docfile.Rect{X: 10, Y: 10, Width: 80, Height: 80}, got.Children[0].Bounds)
	assert.Equal(t, docfile.Rect{X: 90, Y: 10, Width: 200, Height: 80}, got.Children[1].Bounds)
}

func TestLayout_Formats(t *testing.T) {
	type tc struct {
		name    string
		content string
		args    []string
		check   func(t *testing.T, root docfile.Box)
	}

	tests := map[string]tc{
		"json grid": {
			name:    "grid.json",
			content: gridJSON,
			args:    []string{"--width", "200", "--height", "100"},
			check: func(t *testing.T, root docfile.Box) {
				require.Len(t, root.Children, 3)
				assert.Equal(t, docfile.Rect{Width: 200, Height: 40}, root.Children[0].Bounds)
				assert.Equal(t, docfile.Rect{Y: 40, Width: 100, Height: 60}, root.Children[1].Bounds)
				assert.Equal(t, docfile.Rect{X: 100, Y: 40, Width: 100, Height: 60}, root.Children[2].Bounds)
			},
		},
		"toml viewport": {
			name:    "unsized.toml",
			content: unsizedTOML,
			args:    []string{"--width", "640", "--height", "480"},
			check: func(t *testing.T, root docfile.Box) {
				assert.Equal(t, docfile.Rect{Width: 640, Height: 480}, root.Bounds)
				require.Len(t, root.Children, 1)
				assert.Equal(t, 320.0, root.Children[0].Bounds.Width)
			},
		},
		"default viewport": {
			name:    "unsized.toml",
			content: unsizedTOML,
			check: func(t *testing.T, root docfile.Box) {
				assert.Equal(t, docfile.Rect{Width: 800, Height: 600}, root.Bounds)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeDoc(t, t.TempDir(), tt.name, tt.content)

			out, err := run(t, append(append([]string{"layout"}, tt.args...), path)...)
			require.NoError(t, err)

			var root docfile.Box
			require.NoError(t, json.Unmarshal([]byte(out), &root))
			tt.check(t, root)
		})
	}
}

func TestLayout_YAMLOutput(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "page.yaml", sidebarYAML)

	out, err := run(t, "layout", "-o", "yaml", path)
	require.NoError(t, err)

	var got docfile.Box
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "page", got.ID)
	assert.Len(t, got.Children, 2)
}

func TestLayout_SeveralFilesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := range 6 {
		doc := fmt.Sprintf("id: doc-%d\nprops:\n  width: %d\n  height: 10\n", i, 10*(i+1))
		paths = append(paths, writeDoc(t, dir, fmt.Sprintf("doc-%d.yaml", i), doc))
	}

	out, err := run(t, append([]string{"layout", "-j", "2"}, paths...)...)
	require.NoError(t, err)

	var got []docfile.Box
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 6)
	for i, b := range got {
		assert.Equal(t, fmt.Sprintf("doc-%d", i), b.ID)
		assert.Equal(t, float64(10*(i+1)), b.Bounds.Width)
	}
}

func TestLayout_Errors(t *testing.T) {
	type tc struct {
		args    func(dir string) []string
		wantErr string
	}

	tests := map[string]tc{
		"no files": {
			args:    func(string) []string { return []string{"layout"} },
			wantErr: "requires at least 1 arg",
		},
		"missing file": {
			args: func(dir string) []string {
				return []string{"layout", filepath.Join(dir, "nope.yaml")}
			},
			wantErr: "nope.yaml",
		},
		"unknown extension": {
			args: func(dir string) []string {
				return []string{"layout", writeDoc(t, dir, "page.xml", "<page/>")}
			},
			wantErr: "unknown document format",
		},
		"bad document": {
			args: func(dir string) []string {
				return []string{"layout", writeDoc(t, dir, "bad.json", `{"colour": "red"}`)}
			},
			wantErr: "bad.json",
		},
		"bad output": {
			args: func(dir string) []string {
				return []string{"layout", "-o", "xml", writeDoc(t, dir, "page.yaml", sidebarYAML)}
			},
			wantErr: `unknown output format "xml"`,
		},
		"bad config file": {
			args: func(dir string) []string {
				return []string{"layout", "-c", filepath.Join(dir, "missing.yaml"), writeDoc(t, dir, "page.yaml", sidebarYAML)}
			},
			wantErr: "error reading config file",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args(t.TempDir())...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLayout_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDoc(t, dir, "custom.yaml", "viewport:\n  width: 120\n  height: 30\noutput: yaml\n")
	path := writeDoc(t, dir, "unsized.toml", unsizedTOML)

	out, err := run(t, "layout", "--config", cfg, path)
	require.NoError(t, err)

	var got docfile.Box
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, docfile.Rect{Width: 120, Height: 30}, got.Bounds)
}

func TestLayoutFiles_Cancelled(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "page.yaml", sidebarYAML)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := layoutFiles(ctx, []string{path}, &config.Config{Viewport: config.Viewport{Width: 10, Height: 10}})
	assert.ErrorIs(t, err, context.Canceled)
}
