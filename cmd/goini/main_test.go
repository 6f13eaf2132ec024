package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `; servers
[FTP]
FTPPort=21 ; the ftp port
FTPDir=/home/ftp

[BACKUP_SERVERS]
PrimaryIP=192.168.0.13
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.ini", sample)
	bad := writeFile(t, "bad.ini", "[ok]\n[]\n")

	out, _, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, good+": ok (3 sections)")

	out, _, err = run(t, "", "check", good, bad)
	assert.EqualError(t, err, "1 of 2 files failed to parse")
	assert.Contains(t, out, bad+": "+bad+":2:2: empty section name")
}

func TestCheckStdin(t *testing.T) {
	out, _, err := run(t, "k=v\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "-: ok (1 sections)")
}

func TestGet(t *testing.T) {
	path := writeFile(t, "t.ini", sample)

	out, _, err := run(t, "", "get", path, "FTP", "FTPDir")
	require.NoError(t, err)
	assert.Equal(t, "/home/ftp\n", out)

	out, _, err = run(t, "", "get", path, "PrimaryIP")
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.13\n", out)

	_, _, err = run(t, "", "get", path, "FTP", "missing")
	assert.ErrorIs(t, err, errNotFound)

	_, _, err = run(t, "", "get", path, "NOPE", "FTPDir")
	assert.ErrorIs(t, err, errNotFound)

	_, _, err = run(t, "", "get", path, "missing")
	assert.ErrorIs(t, err, errNotFound)
}

func TestFmt(t *testing.T) {
	out, _, err := run(t, sample, "fmt")
	require.NoError(t, err)
	want := "[<Default Section>]\n\n[FTP]\nFTPPort=21 \nFTPDir=/home/ftp\n\n[BACKUP_SERVERS]\nPrimaryIP=192.168.0.13\n"
	assert.Equal(t, want, out)

	_, _, err = run(t, sample, "fmt", "-w")
	assert.EqualError(t, err, "-w requires a file argument")
}

func TestFmtWrite(t *testing.T) {
	path := writeFile(t, "t.ini", "[a]\nk=v ; note\n")
	_, _, err := run(t, "", "fmt", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[a]\nk=v \n", string(data))
}

func TestFmtDiff(t *testing.T) {
	out, _, err := run(t, "[a]\nk=v\n; gone\n", "fmt", "--diff")
	require.NoError(t, err)
	assert.Contains(t, out, " [a]\n")
	assert.Contains(t, out, " k=v\n")
	assert.Contains(t, out, "-; gone\n")
}

func TestExport(t *testing.T) {
	out, _, err := run(t, "[a]\nk=v\n", "export", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"k\": \"v\"\n  }\n}\n", out)

	_, _, err = run(t, "[a]\n", "export", "-f", "xml")
	assert.Error(t, err)
}

func TestParserFlags(t *testing.T) {
	out, _, err := run(t, "[a]|k=v|", "get", "--line-separator", "|", "-", "a", "k")
	require.NoError(t, err)
	assert.Equal(t, "v\n", out)

	out, _, err = run(t, "[a]\nc=#fff\n", "get", "--comment-chars", ";", "-", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "#fff\n", out)

	_, _, err = run(t, "[a]\n", "check", "--buffer-size", "3")
	assert.Error(t, err)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("GOINI_COMMENT_CHARS", "!")
	out, _, err := run(t, "[a]\nc=#fff ! note\n", "get", "-", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "#fff \n", out)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "goini.yaml", "comment-chars: \"!\"\nlog-level: debug\n")
	out, stderr, err := run(t, "[a]\nc=#fff\n", "--config", cfg, "get", "-", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "#fff\n", out)
	assert.Contains(t, stderr, "goini")
}

func TestParseSeparator(t *testing.T) {
	for in, want := range map[string]byte{`\n`: '\n', `\r`: '\r', "|": '|', "\n": '\n'} {
		got, err := parseSeparator(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, got)
	}
	_, err := parseSeparator("ab")
	assert.Error(t, err)
}
