package values

import (
	"errors"
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// level is a custom flag value.
type level int

func (l *level) Set(s string) error {
	switch s {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return errors.New("unknown level")
	}

	return nil
}

func (l *level) String() string { return [...]string{"", "low", "high"}[*l] }
func (l *level) Type() string   { return "level" }

type kinds struct {
	Name     string
	Enabled  bool
	Count    int
	Small    int8
	Port     uint16
	Ratio    float64
	Timeout  time.Duration
	Hosts    []string
	Ports    []int
	Level    level
	LevelPtr *level
	IP       net.IP
	Nested   [][]string
	Channel  chan int
}

func valueOf(t *testing.T, data *kinds, name string) (Value, reflect.Value) {
	t.Helper()

	field := reflect.ValueOf(data).Elem().FieldByName(name)
	require.True(t, field.IsValid(), name)

	return NewValue(field), field
}

func TestNewValueKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		args  []string
		want  any
		typ   string
	}{
		{field: "Name", args: []string{"alice"}, want: "alice", typ: "string"},
		{field: "Enabled", args: []string{"true"}, want: true, typ: "bool"},
		{field: "Count", args: []string{"0x10"}, want: 16, typ: "int"},
		{field: "Small", args: []string{"-3"}, want: int8(-3), typ: "int8"},
		{field: "Port", args: []string{"8080"}, want: uint16(8080), typ: "uint16"},
		{field: "Ratio", args: []string{"0.5"}, want: 0.5, typ: "float64"},
		{field: "Timeout", args: []string{"1m30s"}, want: 90 * time.Second, typ: "time.Duration"},
		{field: "Hosts", args: []string{"a,b", "c"}, want: []string{"a", "b", "c"}, typ: "stringSlice"},
		{field: "Ports", args: []string{"1, 2"}, want: []int{1, 2}, typ: "intSlice"},
		{field: "Level", args: []string{"high"}, want: level(2), typ: "level"},
		{field: "IP", args: []string{"127.0.0.1"}, want: net.ParseIP("127.0.0.1"), typ: "IP"},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			t.Parallel()

			val, field := valueOf(t, &kinds{}, test.field)
			require.NotNil(t, val)

			for _, arg := range test.args {
				require.NoError(t, val.Set(arg))
			}

			assert.Equal(t, test.want, field.Interface())
			assert.Equal(t, test.typ, val.Type())
		})
	}
}

func TestNewValueUnsupported(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Nested", "Channel"} {
		val, _ := valueOf(t, &kinds{}, name)
		assert.Nil(t, val, name)
		assert.False(t, Supports(reflect.TypeOf(kinds{}).Field(indexOf(name)).Type), name)
	}

	assert.True(t, Supports(reflect.TypeOf("")))
	assert.True(t, Supports(reflect.TypeOf(level(0))))
}

func indexOf(name string) int {
	field, _ := reflect.TypeOf(kinds{}).FieldByName(name)
	return field.Index[0]
}

func TestNewValuePointer(t *testing.T) {
	t.Parallel()

	data := &kinds{}

	val, _ := valueOf(t, data, "LevelPtr")
	require.NotNil(t, val)
	require.NotNil(t, data.LevelPtr, "nil pointers are allocated")

	require.NoError(t, val.Set("low"))
	assert.Equal(t, level(1), *data.LevelPtr)
	assert.Equal(t, "low", val.String())
}

func TestSliceDefaultsReset(t *testing.T) {
	t.Parallel()

	data := &kinds{Hosts: []string{"default"}}

	val, _ := valueOf(t, data, "Hosts")
	assert.Equal(t, "default", val.String())
	assert.True(t, IsSlice(val))

	require.NoError(t, val.Set("a"))
	require.NoError(t, val.Set("b"))
	assert.Equal(t, []string{"a", "b"}, data.Hosts)
	assert.Equal(t, "a,b", val.String())
}

func TestSetErrors(t *testing.T) {
	t.Parallel()

	data := &kinds{}

	for field, arg := range map[string]string{
		"Count":   "ten",
		"Enabled": "maybe",
		"Port":    "70000",
		"Timeout": "soon",
		"Ports":   "1,x",
		"Level":   "medium",
	} {
		val, _ := valueOf(t, data, field)
		assert.Error(t, val.Set(arg), field)
	}
}

func TestIsBool(t *testing.T) {
	t.Parallel()

	data := &kinds{}

	enabled, _ := valueOf(t, data, "Enabled")
	name, _ := valueOf(t, data, "Name")

	assert.True(t, IsBool(enabled))
	assert.False(t, IsBool(name))
	assert.True(t, IsBool(&Validated{Value: enabled}))
	assert.False(t, IsSlice(name))
}

func TestValidated(t *testing.T) {
	t.Parallel()

	data := &kinds{}
	name, _ := valueOf(t, data, "Name")

	validated := &Validated{
		Value: name,
		Validate: func(val string) error {
			if strings.ContainsRune(val, ' ') {
				return errors.New("no spaces")
			}

			return nil
		},
	}

	require.Error(t, validated.Set("alice smith"))
	assert.Empty(t, data.Name)

	require.NoError(t, validated.Set("alice"))
	assert.Equal(t, "alice", data.Name)

	hosts, _ := valueOf(t, data, "Hosts")
	assert.True(t, IsSlice(&Validated{Value: hosts}))
}
