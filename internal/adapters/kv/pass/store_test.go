package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

type call struct {
	stdin string
	args  []string
}

func scriptedStore(stdout, stderr string, err error) (*Store, *[]call) {
	calls := &[]call{}
	return &Store{
		run: func(_ context.Context, stdin string, args ...string) (string, string, error) {
			*calls = append(*calls, call{stdin: stdin, args: args})
			return stdout, stderr, err
		},
	}, calls
}

func TestStorePutInsertsMultiline(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore("", "", nil)
	require.NoError(t, store.Put(context.Background(), "fit/session/token", "jwt-value"))

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"insert", "--multiline", "--force", "fit/session/token"}, (*calls)[0].args)
	assert.Equal(t, "jwt-value\n", (*calls)[0].stdin)
}

func TestStoreGetTrimsLineEndings(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore("{\"id\":\"1\"}\r\n", "", nil)
	value, err := store.Get(context.Background(), "fit/session/identity")
	require.NoError(t, err)

	assert.Equal(t, `{"id":"1"}`, value)
	assert.Equal(t, []string{"show", "fit/session/identity"}, (*calls)[0].args)
}

func TestStoreGetMapsMissingEntry(t *testing.T) {
	t.Parallel()

	store, _ := scriptedStore("", "Error: fit/session/token is not in the password store.", errors.New("exit status 1"))
	_, err := store.Get(context.Background(), "fit/session/token")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestStoreGetReportsCommandFailure(t *testing.T) {
	t.Parallel()

	store, _ := scriptedStore("", "gpg: decryption failed", errors.New("exit status 2"))
	_, err := store.Get(context.Background(), "fit/session/token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEntryNotFound)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, "gpg: decryption failed")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store, calls := scriptedStore("", "Error: fit/session/token is not in the password store.", errors.New("exit status 1"))
	require.NoError(t, store.Delete(context.Background(), "fit/session/token"))
	assert.Equal(t, []string{"rm", "--force", "fit/session/token"}, (*calls)[0].args)
}

func TestStoreUnavailablePassPropagates(t *testing.T) {
	t.Parallel()

	store, _ := scriptedStore("", "", ErrUnavailable)
	err := store.Put(context.Background(), "fit/session/token", "v")
	require.ErrorIs(t, err, ErrUnavailable)
}
