package interfaces

import (
	"context"

	"github.com/rsteube/carapace"

	"github.com/reeflective/interactive/prompt"
	"github.com/reeflective/interactive/variant"
)

// Enum is implemented by closed choice types that can be tagged as a
// `subcommand`: each of its variants becomes a subcommand, and a missing
// one is asked for interactively.
type Enum interface {
	// Variants returns the variants in declaration order.
	Variants() []variant.Info

	// SetVariant sets the receiver to the variant declared at index.
	SetVariant(index int) error
}

// Chooser is implemented by enums wanting to drive their own interactive
// selection, instead of the default one built from their variants.
// The context carries the value given with WithContext.
type Chooser interface {
	ChooseVariant(ctx context.Context, sel prompt.Selector) error
}

// Completer is the interface for types that can provide their own shell
// completion suggestions.
type Completer interface {
	Complete(ctx carapace.Context) carapace.Action
}

type userContextKey struct{}

// WithUserContext returns a copy of ctx carrying the user context value.
func WithUserContext(ctx context.Context, val any) context.Context {
	if val == nil {
		return ctx
	}

	return context.WithValue(ctx, userContextKey{}, val)
}

// UserContext returns the user context value carried by ctx, if any.
func UserContext(ctx context.Context) any {
	if ctx == nil {
		return nil
	}

	return ctx.Value(userContextKey{})
}
