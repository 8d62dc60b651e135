package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
	"github.com/tatianab/seattle-noir/internal/world"
)

func newTestManager(t *testing.T, maxAutoSaves int, maxBytes int64) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), maxAutoSaves, maxBytes, logging.Discard())
	require.NoError(t, err)
	return m
}

func testRecord(t *testing.T) *Record {
	t.Helper()
	st := state.New()
	st.SetFlag(state.SpokeToWitness, true)
	st.AddCounter(state.CipherAttempts, 2)

	w := world.New(logging.Discard())
	w.TakeItem("badge")

	inv := item.NewInventory(logging.Discard())
	inv.Take("badge", []string{"badge"}, st)

	return &Record{
		CurrentLocation: w.Current(),
		GameState:       st.Snapshot(),
		LocationStates:  w.Snapshot(),
		InventoryState:  inv.Snapshot(),
		PuzzleStates: map[string]map[string]interface{}{
			"cipher_puzzle": {"solved_ciphers": []string{"ZLHAASL"}},
		},
		TrolleyPosition: 1,
		Combinations:    []string{"case_file+coffee"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := newTestManager(t, 3, 1<<20)

	require.NoError(t, m.Save("chapter one", testRecord(t)))

	rec, err := m.Load("chapter one")
	require.NoError(t, err)
	assert.Equal(t, "chapter_one", rec.SaveName)
	assert.Equal(t, Version, rec.Version)
	assert.Equal(t, "police_station", rec.CurrentLocation)
	assert.Equal(t, true, rec.GameState[state.SpokeToWitness])
	assert.Equal(t, []string{"badge"}, rec.InventoryState.Inventory)
	assert.Equal(t, 1, rec.TrolleyPosition)
	assert.NotContains(t, rec.LocationStates["police_station"].Items, "badge")
	assert.Equal(t, []string{"case_file+coffee"}, rec.Combinations)
}

func TestLoadMissingSaveFailsCleanly(t *testing.T) {
	m := newTestManager(t, 3, 1<<20)

	_, err := m.Load("never_written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsMissingRequiredSections(t *testing.T) {
	for _, section := range requiredSections {
		t.Run(section, func(t *testing.T) {
			m := newTestManager(t, 3, 1<<20)
			require.NoError(t, m.Save("mangled", testRecord(t)))

			path := filepath.Join(m.dir, "mangled"+fileExt)
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &raw))
			delete(raw, section)
			data, err = json.Marshal(raw)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, data, 0o644))

			_, err = m.Load("mangled")
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadRejectsCorruptContent(t *testing.T) {
	m := newTestManager(t, 3, 1<<20)

	tests := []struct {
		name  string
		bytes []byte
	}{
		{"truncated", []byte(`{"save_name": "x", "game_st`)},
		{"unknown flag", mustMarshal(t, map[string]interface{}{
			"current_location": "police_station",
			"game_state":       map[string]interface{}{"mystery_flag": true},
			"location_states":  map[string]interface{}{},
			"inventory_state":  map[string]interface{}{},
		})},
		{"unknown location", mustMarshal(t, map[string]interface{}{
			"current_location": "atlantis",
			"game_state":       map[string]interface{}{},
			"location_states":  map[string]interface{}{},
			"inventory_state":  map[string]interface{}{},
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(m.dir, "bad"+fileExt)
			require.NoError(t, os.WriteFile(path, tt.bytes, 0o644))

			_, err := m.Load("bad")
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestAutoSaveRotation(t *testing.T) {
	const keep = 3
	m := newTestManager(t, keep, 1<<20)

	for i := 0; i < keep+2; i++ {
		require.NoError(t, m.AutoSave(testRecord(t)))
	}

	autos, err := m.autoSaveFiles()
	require.NoError(t, err)
	assert.Len(t, autos, keep, "rotation keeps exactly the retention count")

	// The survivors are the newest; List shows them newest first.
	infos, err := m.List()
	require.NoError(t, err)
	require.Len(t, infos, keep)
	for i := 1; i < len(infos); i++ {
		assert.False(t, infos[i].SavedAt.After(infos[i-1].SavedAt))
	}
}

func TestNamedSavesSurviveRotation(t *testing.T) {
	m := newTestManager(t, 1, 1<<20)

	require.NoError(t, m.Save("keeper", testRecord(t)))
	for i := 0; i < 4; i++ {
		require.NoError(t, m.AutoSave(testRecord(t)))
	}

	_, err := m.Load("keeper")
	assert.NoError(t, err)
}

func TestByteCeilingPrunesOldAutoSaves(t *testing.T) {
	// A ceiling smaller than one record forces the pre-write sweep to prune
	// down to one survivor each round, so after the write two remain: the
	// sweep's survivor and the record just written. The newest auto-save is
	// never the one removed.
	m := newTestManager(t, 10, 64)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.AutoSave(testRecord(t)))
	}

	autos, err := m.autoSaveFiles()
	require.NoError(t, err)
	assert.Len(t, autos, 2, "the sweep runs before each write")
}

func TestListSkipsForeignFiles(t *testing.T) {
	m := newTestManager(t, 3, 1<<20)
	require.NoError(t, m.Save("real", testRecord(t)))
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "junk.json"), []byte("{"), 0o644))

	infos, err := m.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "real", infos[0].Name)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Chapter One", "chapter_one"},
		{"  spaced  ", "spaced"},
		{"../../etc/passwd", "....etcpasswd"},
		{"CASE-42", "case_42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, sanitizeName(tt.in))
	}
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	m := newTestManager(t, 3, 1<<20)
	require.NoError(t, m.Save("clean", testRecord(t)))

	entries, err := os.ReadDir(m.dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), tempSuffix), e.Name())
	}
}
