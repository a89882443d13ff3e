package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/testutil"
)

func TestMain(m *testing.M) {
	cli.IsInteractive = func() bool { return false }
	m.Run()
}

func newSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	home := filepath.Join(root, "src", "pages", "Home.jsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(home), 0o755))
	require.NoError(t, os.WriteFile(home, []byte("<h1>Your Name</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<title>Your Name</title>"), 0o644))
	return root
}

func TestSetupCommand_Human(t *testing.T) {
	root := newSite(t)
	cmd := SetupCmd()
	testutil.SetupCobraCommand(cmd, []string{"--root", root, "--name", "Jamie Doe", "--yes"})

	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)

	plain := ansi.Strip(output)
	assert.Contains(t, plain, "Updated src/pages/Home.jsx")
	assert.Contains(t, plain, "Skipped src/pages/About.jsx (not found)")
	assert.Contains(t, plain, "2 of 6 files updated")

	content, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<title>Jamie Doe</title>", string(content))
}

func TestSetupCommand_JSON(t *testing.T) {
	root := newSite(t)
	cmd := SetupCmd()
	testutil.SetupCobraCommand(cmd, []string{"--root", root, "--json"})

	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)

	files := testutil.ParseJSON(t, output)["files"].([]any)
	require.Len(t, files, 6)
	first := files[0].(map[string]any)
	assert.Equal(t, "src/pages/Home.jsx", first["path"])
	assert.Equal(t, "unchanged", first["status"])
}

func TestSetupCommand_InvalidEmail(t *testing.T) {
	root := newSite(t)
	cmd := SetupCmd()
	testutil.SetupCobraCommand(cmd, []string{"--root", root, "--email", "not-an-email", "--json"})

	output, err := testutil.ExecuteCommand(t, cmd)
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, "VALIDATION_ERROR", testutil.ParseJSON(t, output)["error"].(map[string]any)["code"])
}

func TestSetupCommand_MissingRoot(t *testing.T) {
	cmd := SetupCmd()
	testutil.SetupCobraCommand(cmd, []string{"--root", filepath.Join(t.TempDir(), "nope"), "--json"})

	output, err := testutil.ExecuteCommand(t, cmd)
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Equal(t, "SETUP_FAILED", testutil.ParseJSON(t, output)["error"].(map[string]any)["code"])
}
