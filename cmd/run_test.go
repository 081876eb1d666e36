package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csproj/pkg/csproj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const appProject = `<Project><PropertyGroup><Version>1.0.0</Version></PropertyGroup></Project>`

func writeProject(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runIn runs the root command in dir and returns stdout.
func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	chdir(t, dir)
	t.Setenv(logLevelEnv, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	err := execute(args)
	return out.String(), err
}

func TestSetThenGetInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "App.csproj", appProject)

	out, err := runIn(t, dir, "--set", "Version=2.0.0")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t,
		`<Project><PropertyGroup><Version>2.0.0</Version></PropertyGroup></Project>`,
		readProject(t, path))

	out, err = runIn(t, dir, "--get", "Version")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", out)
}

func TestHelp(t *testing.T) {
	// No project file exists, help must not look for one
	dir := t.TempDir()

	for _, args := range [][]string{{}, {"-h"}, {"--help"}, {"--set", "Nope", "-H"}} {
		out, err := runIn(t, dir, args...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Usage: csproj --get"), "args %q", args)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := runIn(t, dir, "--get", "Version")
	require.ErrorIs(t, err, csproj.ErrNoFileDiscovered)

	_, err = runIn(t, dir, "--get", "Unknown")
	require.ErrorIs(t, err, csproj.ErrUnrecognizedKey)
	assert.NotContains(t, err.Error(), "\n")
}

func TestRunGetAbsentKey(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "App.csproj", appProject)

	var out bytes.Buffer
	require.NoError(t, run([]string{"--get", "authors"}, dir, &out))
	assert.Empty(t, out.String())
}

func TestRunSetExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "Lib.csproj", `<Project>
  <PropertyGroup>
    <Version>1.0.0</Version>
  </PropertyGroup>
  <PropertyGroup>
    <Version>1.5.0</Version>
  </PropertyGroup>
</Project>`)

	var out bytes.Buffer
	require.NoError(t, run([]string{"set", `version="#&VALUE-beta"`, path}, t.TempDir(), &out))
	assert.Empty(t, out.String())

	require.NoError(t, run([]string{"get", "Version", path}, t.TempDir(), &out))
	assert.Equal(t, "1.5.0-beta", out.String())
	assert.Equal(t, 2, strings.Count(readProject(t, path), "<Version>1.5.0-beta</Version>"))
}

func TestRunNoGroups(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "App.csproj", `<Project><ItemGroup/></Project>`)

	err := run([]string{"--set", "Version=1"}, dir, &bytes.Buffer{})
	require.ErrorIs(t, err, csproj.ErrNoGroupsFound)
	assert.Equal(t, `<Project><ItemGroup/></Project>`, readProject(t, path))
}

func TestRunWrongExtensionNotParsed(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "App.props", "not xml at all")

	err := run([]string{"--get", "Version", path}, dir, &bytes.Buffer{})
	require.ErrorIs(t, err, csproj.ErrWrongFileExtension)
}

func TestRunLogsWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logger
	logger = zap.New(core)
	defer func() { logger = prev }()

	dir := t.TempDir()
	writeProject(t, dir, "App.csproj", appProject)
	require.NoError(t, run([]string{"--set", "Company=Acme"}, dir, &bytes.Buffer{}))

	entries := logs.FilterMessage("Updated field").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Company", fields["key"])
	assert.Equal(t, "Acme", fields["value"])
	assert.Equal(t, "", fields["previous"])
	assert.Equal(t, int64(0), fields["updated"])
	assert.Equal(t, true, fields["created"])
}

func TestHelpIgnoresInvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(logLevelEnv, "bogus")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	require.NoError(t, execute([]string{"--help"}))
	assert.True(t, strings.HasPrefix(out.String(), "Usage: csproj --get"))

	// Anything but help still reports the bad setting
	err := execute([]string{"--get", "Version"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), logLevelEnv)
}

func TestCompletionCommandNamesAreInvalid(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "App.csproj", appProject)

	for _, name := range []string{"__complete", "__completeNoDesc"} {
		out, err := runIn(t, dir, name, "x")
		require.ErrorIs(t, err, csproj.ErrInvalidCommand, "command %s", name)
		assert.Empty(t, out)
	}
}

func readProject(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// chdir changes the working directory to dir and restores it when the test
// ends (equivalent of testing.T.Chdir for toolchains before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
