package store

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/util"
)

// Storage keys are a fixed contract; every key holds one JSON document and a
// save rewrites all three as a full snapshot.
const (
	keyEntries = "apocalypse_entries"
	keyStats   = "apocalypse_stats"
	keyCrafted = "apocalypse_crafted_items"
)

// Store persists the whole application state as string-keyed JSON documents.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates the key-value store under the configured base path.
func Open(cfg util.Config) (*Store, error) {
	basePath, err := homedir.Expand(cfg.BasePath)
	if err != nil {
		return nil, errors.Wrap(err, "resolve store path")
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

// BasePath reports where documents live on disk.
func (s *Store) BasePath() string { return s.basePath }

// Load reads the three documents. A missing key yields its default: no
// entries, seeded stats, no crafted items. A key that exists but holds
// malformed JSON is an error; callers treat that as fatal to the load path.
func (s *Store) Load() (journal.State, error) {
	st := journal.NewState()
	if err := s.readInto(keyEntries, &st.Entries); err != nil {
		return journal.State{}, err
	}
	if err := s.readInto(keyStats, &st.Stats); err != nil {
		return journal.State{}, err
	}
	if err := s.readInto(keyCrafted, &st.CraftedItems); err != nil {
		return journal.State{}, err
	}
	return st, nil
}

// Save writes the full state. The write always supersedes the prior
// snapshot; there are no incremental deltas.
func (s *Store) Save(st journal.State) error {
	if err := s.write(keyEntries, st.Entries); err != nil {
		return err
	}
	if err := s.write(keyStats, st.Stats); err != nil {
		return err
	}
	return s.write(keyCrafted, st.CraftedItems)
}

func (s *Store) readInto(key string, target any) error {
	if !s.d.Has(key) {
		return nil
	}
	raw, err := s.d.Read(key)
	if err != nil {
		// diskv reports a file deleted between Has and Read through the
		// read itself; treat that the same as an absent key.
		if strings.Contains(err.Error(), "no such file") {
			return nil
		}
		return errors.Wrapf(err, "read %s", key)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "decode %s", key)
	}
	return nil
}

func (s *Store) write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	if err := s.d.Write(key, raw); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}
	return nil
}
