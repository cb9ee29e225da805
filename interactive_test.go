package interactive_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/interactive"
	"github.com/reeflective/interactive/prompt"
	"github.com/reeflective/interactive/variant"
)

type profile struct {
	Name string
}

type action int

const (
	actionPlan action = iota
	actionApply
)

var actions = variant.Must(
	variant.Of(actionPlan, "plan", "Show what would change"),
	variant.Of(actionApply, "apply", "Apply the changes"),
)

func (*action) Variants() []variant.Info     { return actions.Infos() }
func (a *action) SetVariant(index int) error { return actions.Set(a, index) }

// ChooseVariant skips the prompt for the production profile.
func (a *action) ChooseVariant(ctx context.Context, sel prompt.Selector) error {
	if prof, ok := interactive.ContextValue[profile](ctx); ok && prof.Name == "production" {
		*a = actionPlan
		return nil
	}

	chosen, err := variant.Resolver[action]{Table: actions, Selector: sel}.ChooseVariant(ctx, nil)
	if err != nil {
		return err
	}

	*a = chosen

	return nil
}

type terraform struct {
	Workspace string  `long:"workspace" short:"w" default:"default" validate:"alphanum" env:"-"`
	Action    *action `subcommand:"actions"`

	ran bool
}

func (t *terraform) Execute(_ []string) error {
	t.ran = true
	return nil
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (*cobra.Command, error) {
	t.Helper()

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{}, args...))

	return cmd.ExecuteC()
}

func TestGenerateChooser(t *testing.T) {
	t.Parallel()

	data := &terraform{}
	answers := prompt.NewAnswers(1)

	cmd, err := interactive.Generate(data,
		interactive.WithSelector(answers),
		interactive.WithContext(profile{Name: "staging"}),
		interactive.WithValidation(),
	)
	require.NoError(t, err)
	cmd.Use = "tf"

	executed, err := run(t, cmd)
	require.NoError(t, err)

	assert.True(t, data.ran)
	assert.Equal(t, actionApply, *data.Action)
	assert.Equal(t, 1, answers.Selects)
	assert.Equal(t, "tf apply", interactive.CommandLine(executed))
}

func TestGenerateContextValue(t *testing.T) {
	t.Parallel()

	data := &terraform{}
	answers := prompt.NewAnswers()

	cmd, err := interactive.Generate(data,
		interactive.WithSelector(answers),
		interactive.WithContext(profile{Name: "production"}),
	)
	require.NoError(t, err)

	_, err = run(t, cmd)
	require.NoError(t, err)

	assert.Equal(t, actionPlan, *data.Action)
	assert.Zero(t, answers.Selects)
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	cmd, err := interactive.Generate(&terraform{}, interactive.WithValidation(), interactive.WithInteractive(false))
	require.NoError(t, err)

	_, err = run(t, cmd, "plan", "--workspace", "not valid!")
	assert.ErrorContains(t, err, "is not a valid alphanum")
}

func TestGenerateCustomValidator(t *testing.T) {
	t.Parallel()

	custom := validator.New()
	require.NoError(t, custom.RegisterValidation("alphanum", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "default" || fl.Field().String() == "staging"
	}))

	cmd, err := interactive.Generate(&terraform{}, interactive.WithValidator(custom), interactive.WithInteractive(false))
	require.NoError(t, err)

	_, err = run(t, cmd, "plan", "-w", "staging")
	require.NoError(t, err)

	_, err = run(t, cmd, "plan", "-w", "other")
	assert.ErrorContains(t, err, "`other` is not a valid alphanum")
}

func TestGenerateNotInteractive(t *testing.T) {
	t.Parallel()

	cmd, err := interactive.Generate(&terraform{}, interactive.WithInteractive(false))
	require.NoError(t, err)

	_, err = run(t, cmd)
	require.ErrorIs(t, err, interactive.ErrPromptFailed)
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	_, err := interactive.Generate(terraform{})
	require.ErrorIs(t, err, interactive.ErrNotPointerToStruct)
	require.ErrorIs(t, err, interactive.ErrParse)

	_, err = interactive.Generate(&struct {
		Action string `subcommand:""`
	}{})
	require.ErrorIs(t, err, interactive.ErrNotEnum)
}

type prefixed struct {
	LogFormat string `desc:"Log output format" default:"text" env:"-"`
}

func (p *prefixed) Execute(_ []string) error { return nil }

func TestBindOptions(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "app"}
	data := &prefixed{}

	err := interactive.Bind(root, data,
		interactive.WithParseAll(),
		interactive.WithPrefix("app_"),
		interactive.WithFlagDivider("_"),
		interactive.WithEnvPrefix("APP_"),
		interactive.WithEnvDivider("__"),
		interactive.WithLogger(slog.New(slog.DiscardHandler)),
		interactive.WithInputer(prompt.NewAnswers()),
	)
	require.NoError(t, err)

	flag := root.Flags().Lookup("app_log_format")
	require.NotNil(t, flag)
	assert.Equal(t, "Log output format", flag.Usage)

	executed, err := run(t, root, "--app_log_format", "json")
	require.NoError(t, err)
	assert.Equal(t, "json", data.LogFormat)
	assert.Equal(t, "app --app_log_format=json", interactive.CommandLine(executed))
}

func TestBindError(t *testing.T) {
	t.Parallel()

	err := interactive.Bind(&cobra.Command{}, &struct {
		Count chan int `long:"count"`
	}{})
	require.ErrorIs(t, err, interactive.ErrNotValue)
}

func TestCommandLineNotRun(t *testing.T) {
	t.Parallel()

	assert.Empty(t, interactive.CommandLine(nil))
	assert.Empty(t, interactive.CommandLine(&cobra.Command{}))
}

func TestContextValueMissing(t *testing.T) {
	t.Parallel()

	_, found := interactive.ContextValue[profile](context.Background())
	assert.False(t, found)
}

func TestErrorCategories(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(prompt.Failed(prompt.ErrAborted), interactive.ErrPromptFailed))
}
