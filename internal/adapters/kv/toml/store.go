package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	fileMode        = 0o600
	dirMode         = 0o700
	tempFilePattern = ".session-*.toml.tmp"
)

// Store keeps every entry in a single TOML document. Stores opened on the
// same path share one lock, so concurrent writers in a process never lose
// each other's updates.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLocks      = map[string]*sync.RWMutex{}
)

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("session file path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session file path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Store{path: absPath, mu: lockForPath(absPath)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		return "", err
	}
	i, ok := file.find(key)
	if !ok {
		return "", fmt.Errorf("toml entry %q: %w", key, domain.ErrEntryNotFound)
	}
	return file.Entries[i].Value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("entry key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	if i, ok := file.find(key); ok {
		file.Entries[i].Value = value
	} else {
		file.Entries = append(file.Entries, entrySchema{Key: key, Value: value})
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write(file)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	i, ok := file.find(key)
	if !ok {
		return nil
	}
	file.Entries = slices.Delete(file.Entries, i, i+1)
	return s.write(file)
}

func (s *Store) read() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return fileSchema{Version: currentSchemaVersion}, nil
	}
	if err != nil {
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()
	return file, nil
}

func (s *Store) write(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	temp, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tempName := temp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := temp.Chmod(fileMode); err != nil {
		_ = temp.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}
	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	committed = true
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLocks[path]; ok {
		return mu
	}
	mu := &sync.RWMutex{}
	pathLocks[path] = mu
	return mu
}
