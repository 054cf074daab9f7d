package gui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/events"
	"github.com/backmassage/foldernorm/internal/pipeline"
)

func newSession(t *testing.T, dir string) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Dir = dir
	s, err := NewSession(&cfg)
	require.NoError(t, err)
	return s
}

func TestSession_NoDirectory(t *testing.T) {
	s := newSession(t, "")
	require.NoError(t, s.Refresh())
	assert.Empty(t, s.Items())
	assert.Equal(t, pipeline.PreviewStats{}, s.Stats())
}

func TestSession_ToggleRefreshesPreview(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Nueva Carpeta 1.5"), 0o755))

	s := newSession(t, "")
	require.NoError(t, s.SetDir(dir))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "nueva_carpeta_1_5", s.Items()[0].NewName)

	switches := s.Switches()
	require.Len(t, switches, 6)
	assert.Equal(t, "Preserve dots", switches[5].Label)
	*switches[5].Value = true
	require.NoError(t, s.Refresh())
	assert.Equal(t, "nueva_carpeta_1.5", s.Items()[0].NewName)
	assert.True(t, s.Options().PreserveDots)

	assert.Equal(t, []string{"[ 1/1] 🔄 'Nueva Carpeta 1.5' → 'nueva_carpeta_1.5'"}, s.Lines())
}

func TestSession_InvalidDirectory(t *testing.T) {
	s := newSession(t, "")
	err := s.SetDir(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, pipeline.ErrInvalidDirectory))
	assert.Equal(t, err, s.Err())
	assert.Empty(t, s.Items())
}

func TestSession_CommitThenRefresh(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"Mi Carpeta", "a b", "a-b", "ok"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, n), 0o755))
	}
	s := newSession(t, dir)
	require.NoError(t, s.Refresh())
	assert.Equal(t, pipeline.PreviewStats{Total: 4, Unchanged: 1, Pending: 2, Conflicts: 1}, s.Stats())

	stats := events.Drain(s.Commit(), nil)
	assert.Equal(t, 2, stats.Renamed)
	assert.Equal(t, 1, stats.Conflicts)

	require.NoError(t, s.Refresh())
	assert.Equal(t, pipeline.PreviewStats{Total: 4, Unchanged: 3, Conflicts: 1}, s.Stats())
}

func TestSession_Examples(t *testing.T) {
	s := newSession(t, "")
	ex := s.Examples()
	require.Len(t, ex, 6)
	assert.Equal(t, "fotos_vacaciones_2024", ex[1].Normalized)
}
