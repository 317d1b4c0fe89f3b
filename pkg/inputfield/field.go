package inputfield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/payinput/pkg/logger"
)

// ErrNilPolicy is the panic value when a Field is built without a Policy.
var ErrNilPolicy = errors.New("inputfield: nil policy")

// Policy decides which edits a field accepts and when its value is complete.
// postcode.Checker and securitycode.Checker implement it.
type Policy interface {
	ShouldAccept(candidate string) bool
	IsComplete(text string) bool
}

// Event reports the validity of a field after its text changed.
// It carries the text length, never the text itself.
type Event struct {
	FieldID        uuid.UUID
	Classification string
	Length         int
	Valid          bool
}

// Observer receives an Event after every committed change.
type Observer interface {
	Notify(ctx context.Context, e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, e Event)

// Notify calls f.
func (f ObserverFunc) Notify(ctx context.Context, e Event) {
	f(ctx, e)
}

// Option configures a Field.
type Option func(*Field)

// WithObserver sets the receiver of validity events; nil is ignored.
func WithObserver(o Observer) Option {
	return func(f *Field) {
		if o != nil {
			f.observer = o
		}
	}
}

// WithLogger sets the logger for edit decisions; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.log = l
		}
	}
}

// WithText seeds the field without running ShouldAccept; validity is still
// computed. No event is emitted for the seed.
func WithText(text string) Option {
	return func(f *Field) {
		f.text = text
	}
}

// WithID overrides the random field identifier reported in events and logs.
func WithID(id uuid.UUID) Option {
	return func(f *Field) {
		f.id = id
	}
}

// Field holds the accepted text of one input and applies edits through a
// Policy. It is owned by a single UI thread and is not safe for concurrent use.
type Field struct {
	id       uuid.UUID
	text     string
	valid    bool
	policy   Policy
	observer Observer
	log      *slog.Logger
}

// New creates a field validated by policy. Panics with ErrNilPolicy when
// policy is nil.
func New(policy Policy, opts ...Option) *Field {
	if policy == nil {
		panic(ErrNilPolicy)
	}

	f := &Field{
		id:     uuid.New(),
		policy: policy,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.log = f.log.With(logger.Component("inputfield"), logger.FieldID(f.id.String()))
	f.valid = policy.IsComplete(f.text)
	return f
}

// ID, Text, Valid, Policy and Len report field state; Len counts runes.
func (f *Field) ID() uuid.UUID  { return f.id }
func (f *Field) Text() string   { return f.text }
func (f *Field) Valid() bool    { return f.valid }
func (f *Field) Policy() Policy { return f.policy }
func (f *Field) Len() int       { return utf8.RuneCountInString(f.text) }

// Propose applies e if the policy accepts the resulting text. Accepted
// edits are committed, re-validated and reported to the observer; rejected
// edits leave the field untouched and report nothing.
func (f *Field) Propose(ctx context.Context, e Edit) bool {
	candidate := Proposal{Text: f.text, Edit: e}.Candidate()

	if !f.policy.ShouldAccept(candidate) {
		f.log.DebugContext(ctx, "edit rejected",
			logger.Classification(classification(f.policy)),
			logger.Length(utf8.RuneCountInString(candidate)),
		)
		return false
	}

	f.text = candidate
	f.evaluate(ctx)
	return true
}

// Type appends s at the end of the text.
func (f *Field) Type(ctx context.Context, s string) bool {
	return f.Propose(ctx, Insert(f.Len(), s))
}

// Backspace removes the last rune. It reports false on an empty field.
func (f *Field) Backspace(ctx context.Context) bool {
	n := f.Len()
	if n == 0 {
		return false
	}
	return f.Propose(ctx, Delete(n-1, n))
}

// Clear empties the field. Empty text is always accepted.
func (f *Field) Clear(ctx context.Context) bool {
	return f.Propose(ctx, Delete(0, f.Len()))
}

// SetPolicy switches the classification, e.g. after the user picks another
// billing country or the card number reveals a different network. The
// current text is re-validated and reported; it is not trimmed to the new
// policy's limits.
func (f *Field) SetPolicy(ctx context.Context, p Policy) {
	if p == nil {
		panic(ErrNilPolicy)
	}
	f.policy = p
	f.evaluate(ctx)
}

func (f *Field) evaluate(ctx context.Context) {
	f.valid = f.policy.IsComplete(f.text)

	e := Event{
		FieldID:        f.id,
		Classification: classification(f.policy).String(),
		Length:         f.Len(),
		Valid:          f.valid,
	}

	f.log.DebugContext(ctx, "input changed",
		logger.Classification(classification(f.policy)),
		logger.Length(e.Length),
		logger.Valid(e.Valid),
	)

	if f.observer != nil {
		f.observer.Notify(ctx, e)
	}
}

type label string

func (l label) String() string { return string(l) }

// classification names the policy for events and logs.
func classification(p Policy) fmt.Stringer {
	if s, ok := p.(fmt.Stringer); ok {
		return s
	}
	return label(fmt.Sprintf("%T", p))
}
