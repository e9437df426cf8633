package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/newrelic/go-jsgen/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeApp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/app\n\ngo 1.21\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte("package app\n\nconst Greeting = \"héllo\"\n\nvar Ports = []int{80, 443}\n\nvar debug = false\n"), 0644))
	return dir
}

func TestGenerate(t *testing.T) {
	dir := writeApp(t)

	tests := []struct {
		name string
		cfg  cli.Config
		want string
	}{
		{
			name: "exported declarations",
			cfg:  cli.Config{PackagePath: dir},
			want: "var Greeting=\"héllo\";\nvar Ports=[80,443];\n",
		},
		{
			name: "all declarations as ascii",
			cfg:  cli.Config{PackagePath: dir, AllDeclarations: true, ASCIIOnly: true},
			want: "var Greeting=\"h\\u00E9llo\";\nvar Ports=[80,443];\nvar debug=false;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bytes.Buffer{}
			require.NoError(t, Generate(&tt.cfg, &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestGenerateToFiles(t *testing.T) {
	dir := writeApp(t)
	outputFile := filepath.Join(dir, "app.js")
	diffFile := filepath.Join(dir, "app.diff")

	require.NoError(t, Generate(&cli.Config{PackagePath: dir, OutputFile: outputFile}, nil))
	script, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "var Greeting=\"héllo\";\nvar Ports=[80,443];\n", string(script))

	require.NoError(t, Generate(&cli.Config{PackagePath: dir, OutputFile: outputFile, DiffFile: diffFile, AllDeclarations: true}, nil))
	patch, err := os.ReadFile(diffFile)
	require.NoError(t, err)
	assert.Contains(t, string(patch), "+var debug=false;")
}

func TestGenerateValidatesConfig(t *testing.T) {
	err := Generate(&cli.Config{}, nil)
	assert.ErrorContains(t, err, "--path is required")
}
