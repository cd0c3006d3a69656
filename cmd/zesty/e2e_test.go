package main_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestyzomato/zesty/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "zesty-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "zesty")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// fixtureData copies testdata/snapshot.json into a temp dir and returns its path.
func fixtureData(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "snapshot.json"))
	require.NoError(t, err)
	dest := filepath.Join(t.TempDir(), "zesty.json")
	require.NoError(t, os.WriteFile(dest, data, 0644))
	return dest
}

func run(t *testing.T, data string, args ...string) (string, int) {
	t.Helper()
	full := append([]string{"--config", filepath.Join(filepath.Dir(data), ".zesty.yaml"), "--data", data}, args...)
	cmd := exec.Command(binaryPath, full...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, filepath.Join(t.TempDir(), "zesty.json"), "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "zesty")
}

func TestE2E_ListFixtureOrders(t *testing.T) {
	data := fixtureData(t)

	out, code := run(t, data, "order", "list", "--json")
	require.Equal(t, 0, code, out)

	var orders []domain.Order
	require.NoError(t, json.Unmarshal([]byte(out), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "Alice", orders[0].CustomerName)
	assert.Equal(t, "Bob", orders[1].CustomerName)
}

func TestE2E_TotalsFollowMenu(t *testing.T) {
	data := fixtureData(t)

	out, code := run(t, data, "order", "total", "2")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "$3.00")

	_, code = run(t, data, "dish", "add", "D2", "Soda", "2.00")
	require.Equal(t, 0, code)

	out, code = run(t, data, "order", "total", "2")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "$4.00")
}

func TestE2E_NewOrderContinuesCounter(t *testing.T) {
	data := fixtureData(t)

	out, code := run(t, data, "order", "take", "Carol", "D1")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Order 3 received")
}

func TestE2E_RejectedOrderExitsNonZero(t *testing.T) {
	data := fixtureData(t)

	out, code := run(t, data, "order", "take", "Carol", "D1,D3")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "D3")

	listOut, code := run(t, data, "order", "list", "--json")
	require.Equal(t, 0, code)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal([]byte(listOut), &orders))
	assert.Len(t, orders, 2, "rejected order must not be stored")
}

func TestE2E_UnknownOrder(t *testing.T) {
	out, code := run(t, fixtureData(t), "order", "status", "99", "served")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "invalid order id")
}

func TestE2E_CorruptData(t *testing.T) {
	data := filepath.Join(t.TempDir(), "zesty.json")
	require.NoError(t, os.WriteFile(data, []byte("{"), 0644))

	out, code := run(t, data, "dish", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "corrupt")
}
