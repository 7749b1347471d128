package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/morfx/internal/diagnostics"
)

func TestFileTranslatesFixture(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "add.addaat")
	require.NoError(t, os.WriteFile(src, []byte("int add(int a, int b)\n{\n    return a + b;\n}\n"), 0o644))

	res, err := File(src, Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "add.c"), res.OutputPath)
	assert.Contains(t, res.Generated, "int32_t add(int32_t a, int32_t b)")
	assert.NotNil(t, res.Tree)

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, res.Generated, string(out))
}

func TestFileRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "add.txt")
	require.NoError(t, os.WriteFile(src, []byte("int x;\n"), 0o644))

	_, err := File(src, Options{})
	require.Error(t, err)
	cliErr, ok := err.(diagnostics.CLIError)
	require.True(t, ok)
	assert.Equal(t, diagnostics.ErrArgument, cliErr.Code)
}

func TestFileReportsParseFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.addaat")
	require.NoError(t, os.WriteFile(src, []byte("int ???"), 0o644))

	_, err := File(src, Options{})
	require.Error(t, err)
	cliErr, ok := err.(diagnostics.CLIError)
	require.True(t, ok)
	assert.Equal(t, diagnostics.ErrParse, cliErr.Code)
}
