package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gopointer runs the command from the module root with stdin
func gopointer(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "../.."}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// TestCLI_FileInputOutput tests set with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gopointer-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	jsonContent := `{
		"name": "John Doe",
		"phones": [
			{"type": "home", "number": "555-1234"}
		],
		"address": {"city": "Anytown"}
	}`
	jsonFile := filepath.Join(tempDir, "test.json")
	err = os.WriteFile(jsonFile, []byte(jsonContent), 0644)
	require.NoError(t, err)

	outputFile := filepath.Join(tempDir, "output.json")

	_, stderr, err := gopointer(t, "", "-c", "-i", jsonFile, "set", "-o", outputFile,
		"/phones/-", `{"type": "work", "number": "555-5678"}`)
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Contains(t, stderr, "Updated document written to")

	written, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"John Doe","phones":[{"type":"home","number":"555-1234"},{"type":"work","number":"555-5678"}],"address":{"city":"Anytown"}}`+"\n",
		string(written))

	// the written document can be read back
	stdout, stderr, err := gopointer(t, "", "-i", outputFile, "get", "/phones/1/number")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Equal(t, "\"555-5678\"\n", stdout)
}

// TestCLI_StdinStdout tests get with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	stdout, stderr, err := gopointer(t, `{"a/b": {"m~n": [10, 20]}}`, "get", "/a~1b/m~0n/1")
	require.NoError(t, err, "CLI command failed: %s", stderr)
	assert.Equal(t, "20\n", stdout)
}

// TestCLI_PointerError tests the message for a failed resolution
func TestCLI_PointerError(t *testing.T) {
	_, stderr, err := gopointer(t, `{"foo": {"bar": "baz"}}`, "set", "/foo/bar2/4", `"qux"`)
	assert.Error(t, err, "CLI should fail for a missing intermediate key")
	assert.Contains(t, stderr, "Pointer error (intermediate path missing)")
	assert.Contains(t, stderr, "pointer to non-existing key must be the last item")
}

// TestCLI_InvalidJSON tests the CLI with invalid JSON input
func TestCLI_InvalidJSON(t *testing.T) {
	_, stderr, err := gopointer(t, `{"name": "Invalid JSON, "age": 30}`, "get")
	assert.Error(t, err, "CLI should fail with invalid JSON")
	assert.Contains(t, stderr, "JSON parsing error: invalid JSON near offset")
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	_, stderr, err := gopointer(t, "", "get")
	assert.Error(t, err, "CLI should fail with empty input")
	assert.Contains(t, stderr, "empty input")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	cmd := exec.Command("go", "run", "../..", "-v")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "0.1.0")
}

// TestCLI_Help tests the help output
func TestCLI_Help(t *testing.T) {
	cmd := exec.Command("go", "run", "../..", "--help")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)

	helpOutput := string(output)
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "-i, --input")
	assert.Contains(t, helpOutput, "-c, --compact")
	assert.Contains(t, helpOutput, "get")
	assert.Contains(t, helpOutput, "set")
	assert.Contains(t, helpOutput, "paths")
}
