package gen

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/interactive/internal/interfaces"
)

// CommandLineAnnotation is the annotation key under which a run stores
// the non-interactive command line equivalent to its resolved values.
const CommandLineAnnotation = "interactive:command-line"

// recordCommandLine stores on cmd the words of an invocation that would
// reach the same values without prompting. Each command of the path is
// followed by the local flags it parsed itself, and the executed one by
// the variant if it was chosen interactively, then all its other flags.
func (ctx *scope) recordCommandLine(cmd *cobra.Command, index int) {
	var chain []*cobra.Command
	for parent := cmd.Parent(); parent != nil; parent = parent.Parent() {
		chain = append([]*cobra.Command{parent}, chain...)
	}

	var words []string

	seen := make(map[*pflag.Flag]bool)
	changed := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(flag *pflag.Flag) {
			if !flag.Changed || seen[flag] {
				return
			}

			seen[flag] = true
			words = append(words, flagWord(flag))
		})
	}

	for _, parent := range chain {
		words = append(words, parent.Name())
		changed(parent.LocalNonPersistentFlags())
	}

	words = append(words, cmd.Name())

	if ctx.enum != nil && index == noVariant {
		if current, found := ctx.enum.current(); found {
			words = append(words, ctx.enum.table.Names()[current])
		}
	}

	changed(cmd.Flags())

	for i, word := range words {
		words[i] = quoteWord(word)
	}

	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}

	cmd.Annotations[CommandLineAnnotation] = strings.Join(words, " ")
	ctx.opts.Logger.Debug("resolved command line", "args", cmd.Annotations[CommandLineAnnotation])
}

func flagWord(flag *pflag.Flag) string {
	val := flag.Value.String()

	if flag.NoOptDefVal != "" && val == flag.NoOptDefVal {
		return "--" + flag.Name
	}

	return "--" + flag.Name + "=" + val
}

func quoteWord(word string) string {
	if word == "" || strings.ContainsAny(word, " \t\n\"'\\$`") {
		return strconv.Quote(word)
	}

	return word
}

// current returns the index of the variant held by the field, found by
// comparing it with each variant in turn.
func (e *enumField) current() (int, bool) {
	if e.value.Kind() == reflect.Ptr && e.value.IsNil() {
		return noVariant, false
	}

	held := reflect.Indirect(e.value).Interface()

	for index := range e.table.Len() {
		probe := reflect.New(e.elem)

		choice, _ := probe.Interface().(interfaces.Enum)
		if choice.SetVariant(index) != nil {
			continue
		}

		if reflect.DeepEqual(probe.Elem().Interface(), held) {
			return index, true
		}
	}

	return noVariant, false
}
