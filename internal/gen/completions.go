package gen

import (
	"github.com/rsteube/carapace"

	"github.com/reeflective/interactive/internal/interfaces"
	"github.com/reeflective/interactive/internal/values"
)

// completions registers carapace completions on the command and all its
// children. It runs once the tree is complete, so that carapace attaches
// its hidden completion command to the real root.
func (ctx *scope) completions() {
	comps := carapace.Gen(ctx.cmd)

	flagComps := carapace.ActionMap{}

	for _, bound := range ctx.flags {
		if action, found := flagCompletion(bound); found {
			flagComps[bound.spec.Name] = action
		}
	}

	if len(flagComps) > 0 {
		comps.FlagCompletion(flagComps)
	}

	for _, child := range ctx.children {
		child.completions()
	}
}

// flagCompletion returns the completion of a flag: its value completer if
// it implements one, or its choices.
func flagCompletion(bound *boundFlag) (carapace.Action, bool) {
	if completer := findCompleter(bound.spec.Value); completer != nil {
		return carapace.ActionCallback(completer.Complete), true
	}

	if len(bound.spec.Choices) > 0 {
		return carapace.ActionValues(bound.spec.Choices...), true
	}

	return carapace.Action{}, false
}

func findCompleter(val values.Value) interfaces.Completer {
	if validated, ok := val.(*values.Validated); ok {
		val = validated.Value
	}

	completer, _ := val.(interfaces.Completer)

	return completer
}
