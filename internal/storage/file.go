package storage

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/yourname/calorietracker/internal"
)

type entriesDoc struct {
	Seeded  bool                 `json:"seeded"`
	Entries []internal.FoodEntry `json:"entries"`
}

type prefsDoc struct {
	Profile  *internal.ProfileData `json:"profile,omitempty"`
	Settings *internal.Settings    `json:"settings,omitempty"`
	Account  *internal.AccountInfo `json:"account,omitempty"`
	User     *internal.User        `json:"user,omitempty"`
}

// FileStorage is MemoryStorage mirrored to two JSON files. Writes are
// batched by background workers; Close flushes synchronously.
type FileStorage struct {
	*MemoryStorage
	entriesFile      string
	prefsFile        string
	saveEntriesChan  chan struct{}
	savePrefsChan    chan struct{}
	shutdownChan     chan struct{}
	saveEntriesDelay time.Duration
	savePrefsDelay   time.Duration
	wg               sync.WaitGroup
	closeOnce        sync.Once
	logger           internal.Logger
}

func NewFileStorage(entriesFile, prefsFile string, logger internal.Logger) (*FileStorage, error) {
	return newFileStorage(entriesFile, prefsFile, 500*time.Millisecond, logger)
}

func newFileStorage(entriesFile, prefsFile string, delay time.Duration, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		MemoryStorage:    NewMemoryStorage(),
		entriesFile:      entriesFile,
		prefsFile:        prefsFile,
		saveEntriesChan:  make(chan struct{}, 1),
		savePrefsChan:    make(chan struct{}, 1),
		shutdownChan:     make(chan struct{}),
		saveEntriesDelay: delay,
		savePrefsDelay:   delay,
		logger:           logger,
	}

	if err := s.loadEntries(); err != nil {
		logger.Errorf("storage: failed to load food entries: %v", err)
		return nil, err
	}
	if err := s.loadPrefs(); err != nil {
		logger.Errorf("storage: failed to load preferences: %v", err)
		return nil, err
	}

	s.MemoryStorage.onChange = s.signal

	s.wg.Add(2)
	go s.saveWorker(s.saveEntriesChan, s.saveEntriesDelay, "food entries", s.saveEntries)
	go s.saveWorker(s.savePrefsChan, s.savePrefsDelay, "preferences", s.savePrefs)

	return s, nil
}

// decodeFile reads JSON from path into v; a missing or empty file is not an error.
func decodeFile(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStorage) loadEntries() error {
	docs := map[string]entriesDoc{}
	if err := decodeFile(s.entriesFile, &docs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, d := range docs {
		st := s.state(userID)
		st.Seeded = d.Seeded
		st.Entries = d.Entries
	}
	return nil
}

func (s *FileStorage) loadPrefs() error {
	docs := map[string]prefsDoc{}
	if err := decodeFile(s.prefsFile, &docs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, d := range docs {
		st := s.state(userID)
		st.Profile = d.Profile
		st.Settings = d.Settings
		st.Account = d.Account
		st.User = d.User
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveEntries() error {
	s.mu.RLock()
	docs := make(map[string]entriesDoc, len(s.users))
	for userID, st := range s.users {
		entries := make([]internal.FoodEntry, len(st.Entries))
		copy(entries, st.Entries)
		docs[userID] = entriesDoc{Seeded: st.Seeded, Entries: entries}
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.entriesFile, docs)
}

func (s *FileStorage) savePrefs() error {
	s.mu.RLock()
	docs := make(map[string]prefsDoc, len(s.users))
	for userID, st := range s.users {
		if st.Profile == nil && st.Settings == nil && st.Account == nil && st.User == nil {
			continue
		}
		docs[userID] = prefsDoc{Profile: st.Profile, Settings: st.Settings, Account: st.Account, User: st.User}
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.prefsFile, docs)
}

// signal is called with the memory lock held, so it must not block.
func (s *FileStorage) signal(kind changeKind) {
	ch := s.saveEntriesChan
	if kind == changePrefs {
		ch = s.savePrefsChan
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

// saveWorker writes once the delay has passed with no new signal.
func (s *FileStorage) saveWorker(signal <-chan struct{}, delay time.Duration, what string, save func() error) {
	defer s.wg.Done()
	timer := time.NewTimer(delay)
	defer timer.Stop()
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-signal:
			timer.Reset(delay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.shutdownChan)
		s.wg.Wait()

		// Save pending data synchronously on shutdown
		if err = s.saveEntries(); err != nil {
			return
		}
		err = s.savePrefs()
	})
	return err
}

// --- Compile-time assertions ---
var _ Repositories = (*FileStorage)(nil)
