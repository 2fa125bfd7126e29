package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayoutFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mappings":[{"from":"CAPSLOCK","to":[]}]}`), 0o644))

	l, err := loadLayout(path, "")
	require.NoError(t, err)
	assert.Len(t, l.Mappings, 1)
}

func TestLoadLayoutFromDefault(t *testing.T) {
	l, err := loadLayout("", "caps-q-for-esc")
	require.NoError(t, err)
	assert.NotEmpty(t, l.Mappings)
}

func TestLoadLayoutRequiresOneSource(t *testing.T) {
	_, err := loadLayout("", "")
	assert.Error(t, err)
}

func TestLoadLayoutRejectsUnknownDefault(t *testing.T) {
	_, err := loadLayout("", "does-not-exist")
	assert.Error(t, err)
}

func TestLoadLayoutRejectsMissingFile(t *testing.T) {
	_, err := loadLayout(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}

func TestRootCommandRegistersEverySubcommand(t *testing.T) {
	root := newRootCmd()
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"remap",
		"list-keyboards",
		"list-default-layouts",
		"print-default-layout",
		"monitor",
		"monitor-raw",
		"monitor-tablet-mode",
		"add-systemd-service",
	} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
