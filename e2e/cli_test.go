package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "leaderboard-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/leaderboard")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{binaryPath: binaryPath}
}

// run executes the binary and returns stdout and stderr separately
func (r *cliRunner) run(stdin string, args ...string) (string, string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = append(os.Environ(), "LEADERBOARD_OUTPUT=", "LEADERBOARD_VERBOSE=")
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	cli := newCLIRunner(t)

	t.Run("demo prints sample ranking", func(t *testing.T) {
		stdout, _, err := cli.run("", "demo")
		require.NoError(t, err)
		assert.Equal(t, "Charlie: 1500\nAlice: 1200\nBob: 950\nTop player: Charlie\n", stdout)
	})

	t.Run("rank from args and stdin", func(t *testing.T) {
		stdout, _, err := cli.run("# extra\nDan=2000\n", "rank", "Alice=100", "Alice=200", "--stdin")
		require.NoError(t, err)
		assert.Equal(t, "Dan: 2000\nAlice: 200\nTop player: Dan\n", stdout)
	})

	t.Run("rank json", func(t *testing.T) {
		stdout, _, err := cli.run("", "--output", "json", "rank", "Alice=1.5")
		require.NoError(t, err)

		var result struct {
			Ranked []struct {
				Player string  `json:"player"`
				Score  float64 `json:"score"`
			} `json:"ranked"`
			TopPlayer *string `json:"top_player"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &result))
		require.Len(t, result.Ranked, 1)
		assert.Equal(t, "Alice", result.Ranked[0].Player)
		assert.Equal(t, 1.5, result.Ranked[0].Score)
		require.NotNil(t, result.TopPlayer)
		assert.Equal(t, "Alice", *result.TopPlayer)
	})

	t.Run("top on empty input", func(t *testing.T) {
		stdout, _, err := cli.run("", "top")
		require.NoError(t, err)
		assert.Equal(t, "Top player: none\n", stdout)
	})

	t.Run("malformed entry exits non-zero", func(t *testing.T) {
		stdout, stderr, err := cli.run("", "rank", "Alice")
		require.Error(t, err)

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.ExitCode())
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "NAME=SCORE")
	})
}
