package systemdgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillaja/totalmapper/internal/layout"
)

func withTempPaths(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	origConfig, origUdev, origService, origRun := globalConfigPath, udevRulePath, serviceUnitPath, runCommand
	globalConfigPath = filepath.Join(dir, "totalmapper.json")
	udevRulePath = filepath.Join(dir, "80-totalmapper.rules")
	serviceUnitPath = filepath.Join(dir, "totalmapper@.service")
	t.Cleanup(func() {
		globalConfigPath, udevRulePath, serviceUnitPath, runCommand = origConfig, origUdev, origService, origRun
	})
	return dir
}

func sampleLayout(t *testing.T) layout.Layout {
	t.Helper()
	l, err := layout.ParseLayout([]byte(`{"mappings":[{"from":"CAPSLOCK","to":[]}]}`))
	require.NoError(t, err)
	return l
}

func TestInstallWritesAllThreeFilesAndRunsRefreshCommands(t *testing.T) {
	withTempPaths(t)

	var ran [][]string
	runCommand = func(name string, args ...string) error {
		ran = append(ran, append([]string{name}, args...))
		return nil
	}

	require.NoError(t, Install(sampleLayout(t)))

	configData, err := os.ReadFile(globalConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(configData), "CAPSLOCK")

	rule, err := os.ReadFile(udevRulePath)
	require.NoError(t, err)
	assert.Contains(t, string(rule), "totalmapper@%N.service")

	unit, err := os.ReadFile(serviceUnitPath)
	require.NoError(t, err)
	assert.Contains(t, string(unit), "ExecStart=/usr/bin/totalmapper remap")

	require.Len(t, ran, 3)
	assert.Equal(t, []string{"/usr/bin/udevadm", "control", "--reload"}, ran[0])
	assert.Equal(t, []string{"/usr/bin/udevadm", "trigger"}, ran[1])
	assert.Equal(t, []string{"/usr/bin/systemctl", "daemon-reload"}, ran[2])
}

func TestInstallStopsAtFirstFailingRefresh(t *testing.T) {
	withTempPaths(t)

	calls := 0
	runCommand = func(name string, args ...string) error {
		calls++
		if name == "/usr/bin/udevadm" && len(args) > 0 && args[0] == "trigger" {
			return assert.AnError
		}
		return nil
	}

	err := Install(sampleLayout(t))
	require.Error(t, err)
	assert.Equal(t, 2, calls) // never reaches systemctl daemon-reload
}
