package prompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailed(t *testing.T) {
	t.Parallel()

	require.NoError(t, Failed(nil))

	err := Failed(ErrAborted)
	require.ErrorIs(t, err, ErrPromptFailed)
	require.ErrorIs(t, err, ErrAborted)

	assert.Same(t, err, Failed(err), "already failed errors are not wrapped twice")
}

func TestAnswers(t *testing.T) {
	t.Parallel()

	answers := NewAnswers(1, 0).WithInputs("alice", "")
	ctx := context.Background()

	index, err := answers.Select(ctx, Request{Prompt: "first"})
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	index, err = answers.Select(ctx, Request{Prompt: "second"})
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	_, err = answers.Select(ctx, Request{Prompt: "third"})
	require.ErrorIs(t, err, ErrPromptFailed)
	require.ErrorIs(t, err, ErrNoAnswer)
	assert.ErrorContains(t, err, `"third"`)

	text, err := answers.Input(ctx, Request{Prompt: "name"})
	require.NoError(t, err)
	assert.Equal(t, "alice", text)

	text, err = answers.Input(ctx, Request{Prompt: "team", DefaultText: "blue"})
	require.NoError(t, err)
	assert.Equal(t, "blue", text)

	_, err = answers.Input(ctx, Request{Prompt: "more"})
	require.ErrorIs(t, err, ErrNoAnswer)

	assert.Equal(t, 3, answers.Selects)
	assert.Equal(t, 3, answers.Inputs)
	assert.Len(t, answers.Requests, 6)
}

func TestParseAnswers(t *testing.T) {
	t.Parallel()

	answers := ParseAnswers(" 1, alice ,, 0 ")
	assert.Equal(t, []int{1, 0}, answers.selections)
	assert.Equal(t, []string{"alice"}, answers.inputs)

	assert.Empty(t, ParseAnswers("").selections)
}

func TestFuncAdapters(t *testing.T) {
	t.Parallel()

	var sel Selector = SelectorFunc(func(_ context.Context, req Request) (int, error) {
		return len(req.Items) - 1, nil
	})

	index, err := sel.Select(context.Background(), Request{Items: []string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, 2, index)

	failure := errors.New("closed")

	var in Inputer = InputerFunc(func(context.Context, Request) (string, error) {
		return "", failure
	})

	_, err = in.Input(context.Background(), Request{})
	require.ErrorIs(t, err, failure)
}

func TestIsTruthy(t *testing.T) {
	t.Parallel()

	for _, val := range []string{"1", "true", "TRUE", " yes ", "on"} {
		assert.True(t, isTruthy(val), val)
	}

	for _, val := range []string{"", "0", "false", "off", "no", "maybe"} {
		assert.False(t, isTruthy(val), val)
	}
}

func TestIsInteractive(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("NO_INTERACTIVE", "")

	file, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	assert.False(t, IsInteractive(file), "regular files are not terminals")
	assert.False(t, IsInteractive(nil))
}

func TestIsInteractiveEnvOverride(t *testing.T) {
	t.Setenv("CI", "true")

	assert.False(t, IsInteractive(os.Stdin))
	assert.False(t, Stdin())
}
