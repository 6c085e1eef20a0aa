package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/focusnav/internal/application/replay"
	"github.com/younwookim/focusnav/internal/application/system"
)

func TestNewLoader(t *testing.T) {
	t.Run("embedded configs", func(t *testing.T) {
		loader, err := newLoader("")
		require.NoError(t, err)

		cfg, err := loader.LoadNavigation()
		require.NoError(t, err)
		assert.Equal(t, 480, cfg.Display.ScreenWidth)

		layout, err := loader.LoadLayout("settings")
		require.NoError(t, err)
		assert.Equal(t, "volume", layout.InitialFocus)
	})

	t.Run("directory configs", func(t *testing.T) {
		loader, err := newLoader("configs")
		require.NoError(t, err)

		_, err = loader.LoadLayout("main_menu")
		assert.NoError(t, err)
	})
}

func TestRunReplay(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadNavigation()
	require.NoError(t, err)

	rec := replay.NewRecorder("main_menu")
	for _, in := range []system.InputState{
		{Down: true}, {},
		{Down: true}, {},
		{Submit: true}, {},
	} {
		rec.RecordFrame(in)
	}
	path := filepath.Join(t.TempDir(), "trail.json")
	require.NoError(t, rec.Save(path))

	var out bytes.Buffer
	require.NoError(t, runReplay(cfg, loader, path, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "6 frames, layout main_menu")
	assert.Equal(t, "  0 play", lines[1])
	assert.Equal(t, "  1 options", lines[2])
	assert.Equal(t, "  2 credits", lines[3])
	assert.Equal(t, "activated credits", lines[4])
}

func TestRunReplay_Errors(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadNavigation()
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		err := runReplay(cfg, loader, filepath.Join(t.TempDir(), "none.json"), &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("unknown layout", func(t *testing.T) {
		rec := replay.NewRecorder("no_such_layout")
		rec.RecordFrame(system.InputState{})
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, rec.Save(path))

		err := runReplay(cfg, loader, path, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load replay layout")
	})
}
