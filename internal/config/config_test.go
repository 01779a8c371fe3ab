package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/cn/internal/callsession"
	"github.com/marcus/cn/internal/models"
)

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("CN_DATA_DIR", "/env/dir")

	assert.Equal(t, "/flag/dir", DataDir("/flag/dir"), "explicit flag wins")
	assert.Equal(t, "/env/dir", DataDir(""))

	t.Setenv("CN_DATA_DIR", "")
	got := DataDir("")
	assert.Equal(t, "cn", filepath.Base(got), "falls back to the XDG data home")
}

func TestLoadMissingConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{SearchQuery: "quote", GroupMode: "folder"}
	require.NoError(t, Save(dir, cfg))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "quote", got.SearchQuery)
	assert.Equal(t, "folder", got.GroupMode)
}

func TestSessionRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Fresh directory yields an idle session
	session, err := LoadSession(dir)
	require.NoError(t, err)
	assert.False(t, session.Active())

	contact := &models.Contact{ID: "ct-1", Name: "Maria"}
	require.NoError(t, session.StartCall(contact, models.DirectionOutbound, time.Now()))
	require.NoError(t, SaveSession(dir, session))

	restored, err := LoadSession(dir)
	require.NoError(t, err)
	assert.True(t, restored.Active())
	assert.Equal(t, "ct-1", restored.ContactID)
	assert.Equal(t, callsession.PhaseCallStarted, restored.Phase)
}

func TestIdleSessionStoredAsAbsent(t *testing.T) {
	dir := t.TempDir()

	contact := &models.Contact{ID: "ct-1", Name: "Maria"}
	session := callsession.New()
	require.NoError(t, session.StartCall(contact, models.DirectionOutbound, time.Now()))
	require.NoError(t, SaveSession(dir, session))

	// Ending the flow resets to idle; saving clears the persisted session
	require.NoError(t, session.EndCall(time.Now()))
	_, err := session.Skip()
	require.NoError(t, err)
	require.NoError(t, SaveSession(dir, session))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg.Session)
}

func TestSaveSessionPreservesOtherFields(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(dir, &Config{SearchQuery: "quote"}))

	contact := &models.Contact{ID: "ct-1", Name: "Maria"}
	session := callsession.New()
	require.NoError(t, session.StartCall(contact, models.DirectionOutbound, time.Now()))
	require.NoError(t, SaveSession(dir, session))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "quote", cfg.SearchQuery)
	require.NotNil(t, cfg.Session)
}
