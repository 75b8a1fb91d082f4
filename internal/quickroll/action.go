package quickroll

//go:generate mockgen -destination=mock/mock_action.go -package=mockquickroll -source=action.go

import (
	"context"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

// Use lets an ActionFunc stand in wherever an Action is expected
func (f ActionFunc) Use(ctx context.Context, opts ActionOptions) error {
	return f(ctx, opts)
}

// ActionKind is the tag of a ResolvedAction
type ActionKind int

const (
	// ActionAbsent means nothing is registered under the identifier
	ActionAbsent ActionKind = iota

	// ActionCallable is a direct ActionFunc
	ActionCallable

	// ActionInvokable is an object with a Use method
	ActionInvokable
)

// ResolvedAction is a registry hit resolved to exactly one shape
type ResolvedAction struct {
	kind   ActionKind
	fn     ActionFunc
	action Action
}

// CallableAction wraps a direct callable
func CallableAction(fn ActionFunc) ResolvedAction {
	if fn == nil {
		return ResolvedAction{kind: ActionAbsent}
	}
	return ResolvedAction{kind: ActionCallable, fn: fn}
}

// InvokableAction wraps an object with a Use method
func InvokableAction(action Action) ResolvedAction {
	if action == nil {
		return ResolvedAction{kind: ActionAbsent}
	}
	if fn, ok := action.(ActionFunc); ok {
		return CallableAction(fn)
	}
	return ResolvedAction{kind: ActionInvokable, action: action}
}

// Kind reports which shape the registry returned. The zero value is ActionAbsent.
func (r ResolvedAction) Kind() ActionKind {
	return r.kind
}

// Invoke runs the resolved action
func (r ResolvedAction) Invoke(ctx context.Context, opts ActionOptions) error {
	switch r.kind {
	case ActionCallable:
		return r.fn(ctx, opts)
	case ActionInvokable:
		return r.action.Use(ctx, opts)
	default:
		return qrerr.New(qrerr.CodeNotFound, "no action to invoke")
	}
}

// ActionRegistry resolves action identifiers for the parser
type ActionRegistry interface {
	ResolveAction(ctx context.Context, id string) (ResolvedAction, error)
}

// ActionLookup returns a registered action by identifier.
// A nil action or a not_found error means the action is not registered.
type ActionLookup interface {
	Get(ctx context.Context, id string) (Action, error)
}

type lookupRegistry struct {
	lookup ActionLookup
}

// LookupRegistry adapts an ActionLookup into an ActionRegistry
func LookupRegistry(lookup ActionLookup) ActionRegistry {
	if lookup == nil {
		return nil
	}
	return &lookupRegistry{lookup: lookup}
}

func (r *lookupRegistry) ResolveAction(ctx context.Context, id string) (ResolvedAction, error) {
	action, err := r.lookup.Get(ctx, id)
	if err != nil {
		if qrerr.IsNotFound(err) {
			return ResolvedAction{kind: ActionAbsent}, nil
		}
		return ResolvedAction{}, err
	}
	return InvokableAction(action), nil
}

// ActionEntry holds either a direct callable or an invokable action
type ActionEntry struct {
	Func   ActionFunc
	Action Action
}

// ActionMap maps identifiers directly to registered actions
type ActionMap map[string]ActionEntry

// ResolveAction implements ActionRegistry
func (m ActionMap) ResolveAction(_ context.Context, id string) (ResolvedAction, error) {
	entry, ok := m[id]
	if !ok {
		return ResolvedAction{kind: ActionAbsent}, nil
	}
	if entry.Func != nil {
		return CallableAction(entry.Func), nil
	}
	return InvokableAction(entry.Action), nil
}

func (p *Parser) invokeAction(ctx context.Context, id string) *qrerr.Error {
	unavailable := qrerr.Unavailable("action '" + id + "' unavailable").WithMeta("action", id)

	if p.host.Actions == nil {
		return unavailable
	}

	var resolved ResolvedAction
	err := guard("action registry", func() error {
		var resolveErr error
		resolved, resolveErr = p.host.Actions.ResolveAction(ctx, id)
		return resolveErr
	})
	if err != nil {
		return internalError(err)
	}

	if resolved.Kind() == ActionAbsent {
		return unavailable
	}

	err = guard("action "+id, func() error {
		return resolved.Invoke(ctx, DefaultActionOptions())
	})
	if err != nil {
		return internalError(err)
	}

	return nil
}
