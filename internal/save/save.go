// Package save persists playthroughs as JSON records in the save directory.
// Loads fail closed: a record missing any required section is rejected
// without touching live game state. Writes are atomic via a temp file and
// rename, so a crash never leaves a record a later load would accept.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
	"github.com/tatianab/seattle-noir/internal/world"
)

// Version is the save format version written into every record.
const Version = "1.0.0"

const (
	fileExt        = ".json"
	autoSavePrefix = "autosave_"
	tempSuffix     = ".tmp"
)

var (
	// ErrNotFound means no record exists under the requested name.
	ErrNotFound = errors.New("save not found")
	// ErrMalformed means a record exists but fails validation.
	ErrMalformed = errors.New("malformed save record")
)

// Record is the persisted save format. The first seven fields are the
// compatibility contract; the remaining sections are optional and absent
// records load with fresh defaults for them.
type Record struct {
	SaveName        string                            `json:"save_name"`
	SaveDate        time.Time                         `json:"save_date"`
	Version         string                            `json:"version"`
	CurrentLocation string                            `json:"current_location"`
	GameState       map[string]interface{}            `json:"game_state"`
	LocationStates  map[string]world.LocationState    `json:"location_states"`
	InventoryState  item.State                        `json:"inventory_state"`
	PuzzleStates    map[string]map[string]interface{} `json:"puzzle_states,omitempty"`
	TrolleyPosition int                               `json:"trolley_position,omitempty"`
	Combinations    []string                          `json:"discovered_combinations,omitempty"`
}

// Info is a save directory listing entry.
type Info struct {
	Name     string
	SavedAt  time.Time
	Location string
	AutoSave bool
}

// Manager owns the save directory: naming, atomic writes, validation on
// load, auto-save rotation, and the directory byte ceiling.
type Manager struct {
	dir          string
	maxAutoSaves int
	maxBytes     int64
	log          *logging.Logger
}

func NewManager(dir string, maxAutoSaves int, maxBytes int64, log *logging.Logger) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	return &Manager{
		dir:          dir,
		maxAutoSaves: maxAutoSaves,
		maxBytes:     maxBytes,
		log:          log,
	}, nil
}

// sanitizeName reduces a player-supplied save name to a safe file stem.
func sanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Save writes a record under the given name. An empty name gets a
// timestamped default. The stored record's name, date, and version are set
// here, not by the caller.
func (m *Manager) Save(name string, rec *Record) error {
	stem := sanitizeName(name)
	if stem == "" {
		stem = "save_" + time.Now().Format("20060102_150405")
	}
	return m.write(stem, rec)
}

// AutoSave writes a timestamp-named auto-save. The directory byte ceiling
// is enforced before the write so the new record lands in a directory
// already under the limit; rotation by count runs after.
func (m *Manager) AutoSave(rec *Record) error {
	if err := m.enforceByteCeiling(); err != nil {
		m.log.Warn("save directory size check: %v", err)
	}
	// Nanosecond precision keeps names unique and lexically ordered even
	// when auto-saves land in the same second.
	stem := autoSavePrefix + time.Now().Format("20060102_150405.000000000")
	if err := m.write(stem, rec); err != nil {
		return err
	}
	if err := m.rotateAutoSaves(); err != nil {
		m.log.Warn("auto-save rotation: %v", err)
	}
	return nil
}

func (m *Manager) write(stem string, rec *Record) error {
	rec.SaveName = stem
	rec.SaveDate = time.Now()
	rec.Version = Version

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save record: %w", err)
	}

	final := filepath.Join(m.dir, stem+fileExt)
	temp := final + tempSuffix
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	if err := os.Rename(temp, final); err != nil {
		os.Remove(temp)
		return fmt.Errorf("finalizing save file: %w", err)
	}
	m.log.Info("saved game as %s", stem)
	return nil
}

// requiredSections must all be present in a record for a load to succeed.
var requiredSections = []string{
	"game_state",
	"current_location",
	"location_states",
	"inventory_state",
}

// Load reads and validates a record. It returns ErrNotFound for a missing
// name and ErrMalformed for anything that fails validation; in either case
// no live state has been touched, since loading is the caller's second step.
func (m *Manager) Load(name string) (*Record, error) {
	stem := sanitizeName(name)
	if stem == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(m.dir, stem+fileExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, stem)
		}
		return nil, fmt.Errorf("reading save file: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, section := range requiredSections {
		if _, ok := raw[section]; !ok {
			return nil, fmt.Errorf("%w: missing section %q", ErrMalformed, section)
		}
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if rec.CurrentLocation == "" {
		return nil, fmt.Errorf("%w: empty current_location", ErrMalformed)
	}
	if err := state.Validate(rec.GameState); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := world.ValidateSnapshot(rec.LocationStates, rec.CurrentLocation); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &rec, nil
}

// List returns the saves in the directory, newest first. Unreadable or
// malformed files are skipped with a log line rather than failing the
// listing.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("reading save directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			m.log.Warn("listing saves: %v", err)
			continue
		}
		rec, err := decode(data)
		if err != nil {
			m.log.Warn("listing saves: skipping %s: %v", entry.Name(), err)
			continue
		}
		infos = append(infos, Info{
			Name:     rec.SaveName,
			SavedAt:  rec.SaveDate,
			Location: rec.CurrentLocation,
			AutoSave: strings.HasPrefix(rec.SaveName, autoSavePrefix),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})
	return infos, nil
}

// Delete removes a named record.
func (m *Manager) Delete(name string) error {
	stem := sanitizeName(name)
	err := os.Remove(filepath.Join(m.dir, stem+fileExt))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, stem)
	}
	return err
}

// rotateAutoSaves deletes auto-saves beyond the retention count, oldest
// first. Named saves are never rotated.
func (m *Manager) rotateAutoSaves() error {
	autos, err := m.autoSaveFiles()
	if err != nil {
		return err
	}
	for len(autos) > m.maxAutoSaves {
		oldest := autos[len(autos)-1]
		if err := os.Remove(oldest.path); err != nil {
			return err
		}
		m.log.Debug("rotated out auto-save %s", oldest.path)
		autos = autos[:len(autos)-1]
	}
	return nil
}

// enforceByteCeiling prunes the oldest auto-saves until the directory fits
// under the configured size, keeping at least the newest one. Named saves
// are the player's to manage and are never deleted here.
func (m *Manager) enforceByteCeiling() error {
	total, err := m.dirSize()
	if err != nil {
		return err
	}
	if total <= m.maxBytes {
		return nil
	}
	autos, err := m.autoSaveFiles()
	if err != nil {
		return err
	}
	for total > m.maxBytes && len(autos) > 1 {
		oldest := autos[len(autos)-1]
		if err := os.Remove(oldest.path); err != nil {
			return err
		}
		m.log.Info("save directory over %d bytes, removed %s", m.maxBytes, oldest.path)
		total -= oldest.size
		autos = autos[:len(autos)-1]
	}
	if total > m.maxBytes {
		m.log.Warn("save directory still over limit (%d > %d bytes)", total, m.maxBytes)
	}
	return nil
}

type autoSaveFile struct {
	path string
	size int64
}

// autoSaveFiles returns auto-saves newest first (the timestamped names sort
// lexically).
func (m *Manager) autoSaveFiles() ([]autoSaveFile, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}
	var out []autoSaveFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, autoSavePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, autoSaveFile{
			path: filepath.Join(m.dir, name),
			size: info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].path > out[j].path
	})
	return out, nil
}

func (m *Manager) dirSize() (int64, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
