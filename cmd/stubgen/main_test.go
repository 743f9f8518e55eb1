package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pacer/stubgen/internal/stub/testutil"
)

// runCommand executes the root command with the given args, capturing its
// output. Flag state is reset so tests stay independent.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	generateOutput = ""
	generateStdout = false
	verbose = false

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestGenerateCommand_Stdin(t *testing.T) {
	out, err := runCommand(t, "read n:int\nwrite done\n", "generate", "python")
	require.NoError(t, err)

	assert.Contains(t, out, "n = int(input())")
	assert.Contains(t, out, `print("done")`)
}

func TestGenerateCommand_WritesNextToInput(t *testing.T) {
	dir := testutil.TempDir(t, map[string]string{
		"fizzbuzz.txt": "read n:int\nloop n read x:int\n",
	})
	input := filepath.Join(dir, "fizzbuzz.txt")

	_, err := runCommand(t, "", "generate", "ruby", input)
	require.NoError(t, err)

	generated, err := os.ReadFile(filepath.Join(dir, "fizzbuzz.rb"))
	require.NoError(t, err)

	assert.Contains(t, string(generated), "n = gets.to_i")
	assert.Contains(t, string(generated), "n.times do")
}

func TestGenerateCommand_OutputFlag(t *testing.T) {
	dir := testutil.TempDir(t, map[string]string{
		"stub.txt": "read n:int\n",
	})
	input := filepath.Join(dir, "stub.txt")
	target := filepath.Join(dir, "custom_name.py")

	_, err := runCommand(t, "", "generate", "python", input, "--output", target)
	require.NoError(t, err)

	generated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "n = int(input())")
}

func TestGenerateCommand_OutputFlagRejectsManyFiles(t *testing.T) {
	dir := testutil.TempDir(t, map[string]string{
		"a.txt": "read n:int\n",
		"b.txt": "read m:int\n",
	})

	_, err := runCommand(t, "",
		"generate", "python",
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		"--output", filepath.Join(dir, "out.py"),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "single input")
}

func TestGenerateCommand_StdoutFlag(t *testing.T) {
	dir := testutil.TempDir(t, map[string]string{
		"stub.txt": "write hi\n",
	})
	input := filepath.Join(dir, "stub.txt")

	out, err := runCommand(t, "", "generate", "python", input, "--stdout")
	require.NoError(t, err)

	assert.Contains(t, out, `print("hi")`)

	_, statErr := os.Stat(filepath.Join(dir, "stub.py"))
	assert.True(t, os.IsNotExist(statErr), "no file should be written with --stdout")
}

func TestGenerateCommand_BadDefinition(t *testing.T) {
	dir := testutil.TempDir(t, map[string]string{
		"bad.txt": "read X:weird\n",
	})

	_, err := runCommand(t, "", "generate", "python", filepath.Join(dir, "bad.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func TestGenerateCommand_UnknownLanguage(t *testing.T) {
	_, err := runCommand(t, "read n:int\n", "generate", "cobol")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestCheckCommand_Stdin(t *testing.T) {
	out, err := runCommand(t, "read n:int\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestCheckCommand_Files(t *testing.T) {
	dir := testutil.TempDir(t, map[string]string{
		"good.txt": "read n:int\n",
		"bad.txt":  "bogus\n",
	})

	out, err := runCommand(t, "", "check",
		filepath.Join(dir, "good.txt"),
		filepath.Join(dir, "bad.txt"),
	)

	require.Error(t, err)
	assert.Contains(t, out, "good.txt: OK")
	assert.Contains(t, out, "bogus")
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestLanguagesCommand(t *testing.T) {
	out, err := runCommand(t, "", "languages")
	require.NoError(t, err)

	for _, want := range []string{"python", "ruby", "javascript", "vb", "snake_case", "pascal_case"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version")
}
