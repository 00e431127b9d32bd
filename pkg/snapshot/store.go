package snapshot

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/Diavel78/product-trainer/pkg/constants"
	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/logging"
)

// Store owns the on-disk snapshot file. It is read once at run start and
// overwritten once at run end; no partial writes or concurrent access are
// assumed.
type Store struct {
	path string
}

// NewStore creates a store over the given snapshot file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the previous run's snapshot. An absent, unreadable, or
// corrupt file yields (nil, nil), putting the run in first-run mode, so
// the current run's report stays available even when prior state is
// lost. Only the load is degraded; the run will still overwrite the
// file at the end.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn().
				Str("path", s.path).
				Err(err).
				Msg("Snapshot unreadable, treating as first run")
		}
		return nil, nil
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		logging.Warn().
			Str("path", s.path).
			Err(err).
			Msg("Snapshot corrupt, treating as first run")
		return nil, nil
	}
	return &snap, nil
}

// Save overwrites the snapshot file with the given snapshot.
func (s *Store) Save(snap *Snapshot) error {
	if snap == nil {
		return errors.NewValidationError("snapshot", nil, "cannot persist a nil snapshot")
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return errors.WrapParse("yaml", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(s.path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", s.path, err)
	}

	logging.Debug().
		Str("path", s.path).
		Int("units", snap.Len()).
		Msg("Snapshot saved")
	return nil
}
