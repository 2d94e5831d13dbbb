package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const (
	dirMode         = 0o700
	entryFileMode   = 0o600
	tempFilePattern = ".entry-*.tmp"
)

// Store keeps one file per key below root. Keys are slash-separated
// relative paths such as "fit/session/token".
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create entry directory: %w", err)
	}
	return writeAtomic(path, []byte(value))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("file entry %q: %w", key, domain.ErrEntryNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read file entry %q: %w", key, err)
	}
	return string(data), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete file entry %q: %w", key, err)
	}
	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("entry key is empty")
	}

	cleaned := filepath.Clean(filepath.FromSlash(trimmed))
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid entry key %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

// writeAtomic replaces path so a reader never sees a half-written token.
func writeAtomic(path string, data []byte) error {
	temp, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp entry: %w", err)
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
		return fmt.Errorf("write temp entry: %w", err)
	}
	if err := temp.Chmod(entryFileMode); err != nil {
		_ = temp.Close()
		return fmt.Errorf("chmod temp entry: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close temp entry: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace entry: %w", err)
	}
	committed = true
	return nil
}
