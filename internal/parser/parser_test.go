package parser

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/interactive/internal/errors"
)

func TestCamelToFlag(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Network":    "network",
		"StringFlag": "string-flag",
		"HTTPServer": "http-server",
		"Node2Id":    "node2-id",
		"ID":         "id",
		"LogLevel":   "log-level",
	}

	for src, want := range tests {
		assert.Equal(t, want, CamelToFlag(src, "-"), src)
	}

	assert.Equal(t, "log.level", CamelToFlag("LogLevel", "."))
}

func TestFlagToEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LOG_LEVEL", FlagToEnv("log-level", "-", "_"))
	assert.Equal(t, "NETWORK", FlagToEnv("network", "-", "_"))
}

func TestTagParse(t *testing.T) {
	t.Parallel()

	field := reflect.StructField{
		Name: "Network",
		Tag:  `long:"network" alias:"a" alias:"b" desc:"say \"hi\"" hidden:""`,
	}

	tag, none, err := GetFieldTag(field)
	require.NoError(t, err)
	assert.False(t, none)

	long, ok := tag.Get("long")
	require.True(t, ok)
	assert.Equal(t, "network", long)

	assert.Equal(t, []string{"a", "b"}, tag.GetMany("alias"))

	desc, ok := tag.Lookup("description", "desc")
	require.True(t, ok)
	assert.Equal(t, `say "hi"`, desc)

	assert.True(t, tag.IsSet("hidden"))
	assert.False(t, tag.IsSet("required"))
}

func TestTagParseInvalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`long`, `long:network`, `long:"network`, `:"x"`} {
		_, _, err := GetFieldTag(reflect.StructField{Name: "F", Tag: reflect.StructTag(raw)})
		require.ErrorIs(t, err, errors.ErrInvalidTag, raw)
	}

	tag, none, err := GetFieldTag(reflect.StructField{Name: "F"})
	require.NoError(t, err)
	assert.True(t, none)
	assert.Empty(t, *tag)
}

func TestTagIsSetFalsy(t *testing.T) {
	t.Parallel()

	tag := Tag{"required": {"false"}, "hidden": {"yes"}, "persistent": {"0"}}

	assert.False(t, tag.IsSet("required"))
	assert.True(t, tag.IsSet("hidden"))
	assert.False(t, tag.IsSet("persistent"))
}

type scanned struct {
	Network string `long:"network"`
	Count   int
	hidden  string
}

func TestScan(t *testing.T) {
	t.Parallel()

	data := &scanned{hidden: "x"}

	var names []string

	err := Scan(data, func(_ reflect.Value, field *reflect.StructField) (bool, error) {
		names = append(names, field.Name)
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Network", "Count"}, names)

	require.ErrorIs(t, Scan(scanned{}, nil), errors.ErrNotPointerToStruct)
	require.ErrorIs(t, Scan((*scanned)(nil), nil), errors.ErrNotPointerToStruct)

	var notStruct int
	require.ErrorIs(t, Scan(&notStruct, nil), errors.ErrNotPointerToStruct)
}

func TestScanUnexportedTagged(t *testing.T) {
	t.Parallel()

	type bad struct {
		network string `long:"network" prompt:"Which network"` //nolint:unused
	}

	err := Scan(&bad{}, func(reflect.Value, *reflect.StructField) (bool, error) { return true, nil })
	require.ErrorIs(t, err, errors.ErrUnexportedField)
	assert.ErrorContains(t, err, "long, prompt")
}

type flagFields struct {
	Network  string   `long:"network" short:"n" desc:"Network to use" default:"testnet" choice:"mainnet testnet" prompt:"Which network" required:"true"`
	LogLevel string   `flag:"log-level l"`
	Tags     []string `choice:"a b" choice:"c"`
	Home     string   `env:"~HOME,HOME_DIR"`
	Secret   string   `env:"-" hidden:""`
	Skipped  string   `flag:"-"`
	NoFlag   string   `no-flag:""`
	Untagged string
	Channel  chan int `long:"channel"`
	Short    string   `short:"ab"`
}

func parseField(t *testing.T, name string, opts *Opts) (*Flag, error) {
	t.Helper()

	data := &flagFields{}
	val := reflect.ValueOf(data).Elem()

	field, found := val.Type().FieldByName(name)
	require.True(t, found)

	return ParseFlag(val.FieldByIndex(field.Index), field, opts)
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	opts := DefOpts().Apply(EnvPrefix("APP_"))

	flag, err := parseField(t, "Network", opts)
	require.NoError(t, err)
	require.NotNil(t, flag)

	assert.Equal(t, "network", flag.Name)
	assert.Equal(t, "n", flag.Short)
	assert.Equal(t, "Network to use", flag.Usage)
	assert.Equal(t, "testnet", flag.Default)
	assert.True(t, flag.HasDefault)
	assert.Equal(t, []string{"mainnet", "testnet"}, flag.Choices)
	assert.Equal(t, "Which network", flag.Prompt)
	assert.True(t, flag.Required)
	assert.Equal(t, []string{"APP_NETWORK"}, flag.EnvNames)

	flag, err = parseField(t, "LogLevel", opts)
	require.NoError(t, err)
	assert.Equal(t, "log-level", flag.Name)
	assert.Equal(t, "l", flag.Short)
	assert.Equal(t, []string{"APP_LOG_LEVEL"}, flag.EnvNames)

	flag, err = parseField(t, "Tags", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, flag.Choices)

	flag, err = parseField(t, "Home", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"HOME", "APP_HOME_DIR"}, flag.EnvNames)

	flag, err = parseField(t, "Secret", opts)
	require.NoError(t, err)
	assert.Empty(t, flag.EnvNames)
	assert.True(t, flag.Hidden)
}

func TestParseFlagSkipped(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Skipped", "NoFlag", "Untagged"} {
		flag, err := parseField(t, name, DefOpts())
		require.NoError(t, err)
		assert.Nil(t, flag, name)
	}

	flag, err := parseField(t, "Untagged", DefOpts().Apply(ParseAll()))
	require.NoError(t, err)
	require.NotNil(t, flag)
	assert.Equal(t, "untagged", flag.Name)
}

func TestParseFlagPrefix(t *testing.T) {
	t.Parallel()

	flag, err := parseField(t, "Network", DefOpts().Apply(Prefix("client-")))
	require.NoError(t, err)
	assert.Equal(t, "client-network", flag.Name)
	assert.Equal(t, []string{"CLIENT_NETWORK"}, flag.EnvNames)
}

func TestParseFlagErrors(t *testing.T) {
	t.Parallel()

	_, err := parseField(t, "Channel", DefOpts())
	require.ErrorIs(t, err, errors.ErrNotValue)

	_, err = parseField(t, "Short", DefOpts())
	require.ErrorIs(t, err, errors.ErrInvalidTag)
}

func TestOptsInteractive(t *testing.T) {
	t.Parallel()

	opts := DefOpts().Apply(Interactive(false), Selector(nil))
	assert.False(t, opts.IsInteractive())

	opts = DefOpts().Apply(Interactive(true))
	assert.True(t, opts.IsInteractive())

	copied := opts.Copy()
	copied.Prefix = "other-"
	assert.Empty(t, opts.Prefix)
}
