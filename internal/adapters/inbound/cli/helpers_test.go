package cli_test

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/zestyzomato/zesty/internal/adapters/inbound/cli"
)

// run executes the root command against a data file inside dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, dir, "", args...)
}

func runWithInput(t *testing.T, dir, input string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(input))
	base := []string{"--config", filepath.Join(dir, ".zesty.yaml")}
	if !slices.Contains(args, "--data") {
		base = append(base, "--data", filepath.Join(dir, "zesty.json"))
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return buf.String(), err
}

// runWithConfig executes the root command with only --config set, so the data
// path comes from the config file and the other flags.
func runWithConfig(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, ".zesty.yaml")}, args...))
	err := cmd.Execute()
	return buf.String(), err
}
