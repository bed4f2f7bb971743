package setup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "aoc.yaml", "input_dir: from-file\nlog_level: warn\n")

	t.Setenv("AOC_INPUT_DIR", "from-env")
	t.Setenv("AOC_LOG_LEVEL", "error")

	cfg, err := LoadConfig(Options{ConfigPath: cfgPath, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.InputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_RejectsBadLevel(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "aoc.yaml", "input_dir: x\n")
	_, err := LoadConfig(Options{ConfigPath: cfgPath, LogLevel: "chatty"})
	assert.Error(t, err)
}

func TestWire_SolvesFromInputDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "aoc.yaml", "input_dir: "+dir+"\n")
	writeFile(t, dir, "day06.txt", "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	deps, err := Wire(Options{ConfigPath: cfgPath, Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)

	report, err := deps.Runner.Run(6)
	require.NoError(t, err)
	require.NoError(t, deps.Renderer.Render(report))

	assert.Equal(t, "Day 6: Tuning Trouble\nDay 6 Part 1: 7\nDay 6 Part 2: 19\n", stdout.String())
	assert.Contains(t, stderr.String(), "day solved")
}

func TestWire_InputFileOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "aoc.yaml", "input_dir: "+filepath.Join(dir, "nowhere")+"\n")
	inputPath := writeFile(t, dir, "strategy.txt", "A Y\nB X\nC Z\n")

	var stdout bytes.Buffer
	deps, err := Wire(Options{ConfigPath: cfgPath, InputFile: inputPath, Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)

	report, err := deps.Runner.Run(2)
	require.NoError(t, err)
	assert.Equal(t, "15", report.Answer.Part1)
	assert.Equal(t, "12", report.Answer.Part2)
}
