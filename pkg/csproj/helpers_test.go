package csproj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalProject = `<Project><PropertyGroup><Version>1.0.0</Version></PropertyGroup></Project>`

// writeFile creates name in dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// loadString writes content to a temp project file and loads it.
func loadString(t *testing.T, content string) *Document {
	t.Helper()
	path := writeFile(t, t.TempDir(), "App.csproj", content)
	doc, err := Load(path)
	require.NoError(t, err)
	return doc
}

func serialize(t *testing.T, doc *Document) string {
	t.Helper()
	data, err := doc.Bytes()
	require.NoError(t, err)
	return string(data)
}
