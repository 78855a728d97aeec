package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "helix.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("helix:\n  turns: 4\n  radius: 5\n  height: 30\n"), 0o644))
	t.Setenv("HELIX_RADIUS", "6")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", yamlPath, "--env", filepath.Join(dir, "none.env"), "--height", "12"}))

	cfg, err := loadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Helix.Turns)
	assert.Equal(t, 6.0, cfg.Helix.Radius)
	assert.Equal(t, 12.0, cfg.Helix.Height)
}

func TestLoadConfigRejectsBadHelix(t *testing.T) {
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--height", "0", "--env", ""}))
	_, err := loadConfig(root)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "helix ")
}

func TestHeadlessSnapshot(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "frame.png")
	root := newRootCmd()
	root.SetArgs([]string{"headless", "--env", "", "--hz", "500", "--frames", "3", "--snapshot", snap})
	require.NoError(t, root.Execute())

	f, err := os.Open(snap)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
}
