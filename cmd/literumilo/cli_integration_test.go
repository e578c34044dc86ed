package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLiterumiloBinary(t *testing.T) string {
	t.Helper()
	binaryPath := filepath.Join(t.TempDir(), "literumilo")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go build failed: %s", out)
	return binaryPath
}

func TestCLIMorphemeMode(t *testing.T) {
	binary := buildLiterumiloBinary(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("abateco"), 0644))

	cmd := exec.Command(binary, "--input", in, "--output", out, "--mode", "morpheme")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "cli failed: %s", output)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "abat.ec.o", string(data))
}

func TestCLISpellcheckMode(t *testing.T) {
	binary := buildLiterumiloBinary(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("abateco kuraciisto"), 0644))

	cmd := exec.Command(binary, "--input", in, "--output", out, "--mode", "spellcheck")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "cli failed: %s", output)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "kuraciisto\n", string(data))
}

func TestCLIMissingInputExitsNonZero(t *testing.T) {
	binary := buildLiterumiloBinary(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	cmd := exec.Command(binary, "--input", filepath.Join(dir, "nonexistent.txt"), "--output", out)
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.NotEqual(t, 0, exitErr.ExitCode())
}

func TestCLILintMode(t *testing.T) {
	binary := buildLiterumiloBinary(t)

	cmd := exec.Command(binary, "--lint")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "cli failed: %s", output)
	assert.Contains(t, string(output), "no issues found")
}

func TestCLILintModeDoesNotRequireInputOrOutput(t *testing.T) {
	binary := buildLiterumiloBinary(t)

	cmd := exec.Command(binary, "--lint")
	err := cmd.Run()
	assert.NoError(t, err)
}

func TestCLIRejectsUnknownMode(t *testing.T) {
	binary := buildLiterumiloBinary(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("abateco"), 0644))

	cmd := exec.Command(binary, "--input", in, "--output", out, "--mode", "bogus")
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.NotEqual(t, 0, exitErr.ExitCode())
}
