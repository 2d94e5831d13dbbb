package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModelTracksPhases(t *testing.T) {
	t.Parallel()

	model := newProgressModel[string]("Saving activity...", nil)

	next, _ := model.Update(phaseMsg("Requesting AI recommendations..."))
	model = next.(progressModel[string])
	next, _ = model.Update(phaseMsg("Requesting AI recommendations..."))
	model = next.(progressModel[string])

	assert.Equal(t, []string{"Saving activity..."}, model.finished)
	assert.Equal(t, "Requesting AI recommendations...", model.phase)
	view := model.View()
	assert.Contains(t, view, "✓ Saving activity...")
	assert.Contains(t, view, "Requesting AI recommendations...")

	next, cmd := model.Update(jobDoneMsg[string]{value: "a1"})
	model = next.(progressModel[string])
	require.NotNil(t, cmd)
	assert.True(t, model.done)
	assert.Equal(t, "a1", model.value)
	assert.Empty(t, model.View())
}

func TestRunProgressReturnsWorkResult(t *testing.T) {
	t.Parallel()

	var phases []string
	value, err := runProgress(context.Background(), &bytes.Buffer{}, "first",
		func(_ context.Context, advance func(string)) (int, error) {
			phases = append(phases, "first")
			advance("second")
			phases = append(phases, "second")
			return 42, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, []string{"first", "second"}, phases)

	workErr := errors.New("gateway down")
	_, err = runProgress(context.Background(), &bytes.Buffer{}, "first",
		func(context.Context, func(string)) (string, error) {
			return "", workErr
		})
	require.ErrorIs(t, err, workErr)
}
