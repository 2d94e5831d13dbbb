package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

var ErrUnavailable = fmt.Errorf("pass command: %w", ports.ErrStoreUnavailable)

// missingMarker is what pass prints on stderr for an unknown entry.
const missingMarker = "is not in the password store"

type runFunc func(ctx context.Context, stdin string, args ...string) (stdout string, stderr string, err error)

// Store keeps entries in the user's pass(1) password store.
type Store struct {
	run runFunc
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPass}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, value+"\n", "insert", "--multiline", "--force", key); err != nil {
		return commandError("insert", key, err, stderr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", key)
	if err != nil {
		if strings.Contains(stderr, missingMarker) {
			return "", fmt.Errorf("pass entry %q: %w", key, domain.ErrEntryNotFound)
		}
		return "", commandError("show", key, err, stderr)
	}
	return strings.TrimRight(stdout, "\r\n"), nil
}

// Delete treats an already-missing entry as deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "--force", key)
	if err != nil && !strings.Contains(stderr, missingMarker) {
		return commandError("rm", key, err, stderr)
	}
	return nil
}

func runPass(ctx context.Context, stdin string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if errors.Is(err, exec.ErrNotFound) {
		return "", "", ErrUnavailable
	}
	if err != nil {
		return "", "", fmt.Errorf("locate pass: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func commandError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}
