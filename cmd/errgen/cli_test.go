package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mailru/errgen/internal/pkg/config"
	"github.com/mailru/errgen/internal/pkg/testutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const declaration = `package declaration

type MyError struct {
	NotFound struct{ ID uint32 }
}
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := createRootCmd(&testutil.TestAppInfo)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func prepareErrorsDir(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	src := filepath.Join(root, "errors", "declaration")

	require.NoError(t, os.MkdirAll(src, 0750))
	require.NoError(t, testutil.WriteDeclaration(src, "myerr.go", declaration))

	return filepath.Join(root, "errors")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, testutil.TestAppInfo.String())
	require.Contains(t, out, "Go version:")
}

func TestRootCmd_generate(t *testing.T) {
	path := prepareErrorsDir(t)

	out, err := runCmd(t, "--path", path, "--module", "example.com/app", "--color", "never", "--verbose")
	require.NoError(t, err, out)

	data, err := os.ReadFile(filepath.Join(path, "generated", "myerr", "myerr.go"))
	require.NoError(t, err)
	require.Contains(t, string(data), "func MyErrorFromUint32(v uint32) MyError")

	require.Contains(t, out, "generation finished")
}

func TestRootCmd_config(t *testing.T) {
	path := prepareErrorsDir(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("path: /non/exists\nmodule: example.com/app\ndestination: out\ncolor: never\n"), 0600))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("destinaton: out\n"), 0600))

	// --path важнее значения из файла, destination берётся из файла
	out, err := runCmd(t, "--config", good, "--path", path)
	require.NoError(t, err, out)

	_, err = os.Stat(filepath.Join(path, "out", "myerr", "myerr.go"))
	require.NoError(t, err)

	_, err = runCmd(t, "--config", bad, "--path", path)
	require.Error(t, err)
	require.Equal(t, config.ErrDecodeConfig, errors.Cause(errors.Unwrap(err)))
}

func TestRootCmd_invalidFlags(t *testing.T) {
	path := prepareErrorsDir(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown color", args: []string{"--path", path, "--module", "example.com/app", "--color", "rainbow"}},
		{name: "same dirs", args: []string{"--path", path, "--module", "example.com/app", "--destination", "declaration"}},
		{name: "positional args", args: []string{"--path", path, "extra"}},
		{name: "missing declarations", args: []string{"--path", filepath.Join(path, "nope"), "--module", "example.com/app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestExecute(t *testing.T) {
	require.Equal(t, 0, Execute([]string{"version"}))
	require.Equal(t, 1, Execute([]string{"--color", "never", "--path", filepath.Join(t.TempDir(), "nope"), "--module", "example.com/app"}))
}

func Test_colorize(t *testing.T) {
	got := colorize("error generate: ErrGeneratorPkg Name: `foo`;\n\tErrGeneratorPhases Phase: `parse`;\n\tboom")

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	require.False(t, strings.Contains(lines[0], "\033["))
	require.True(t, strings.HasPrefix(lines[1], colorDim))
	require.True(t, strings.HasPrefix(lines[2], colorRed))

	require.Equal(t, "single line", colorize("single line"))
}
