package form

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field binds a named value slot to its rules.
type Field struct {
	Name  string
	Rules []validator.Rule
}

// Change is delivered to subscribers after a field is re-validated.
type Change struct {
	Field     string
	Value     string
	Status    validator.Status
	FormValid bool
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for change records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithName sets the form name attached to log records.
func WithName(name string) Option {
	return func(f *Form) { f.name = name }
}

type fieldState struct {
	rules     []validator.Rule
	value     string
	status    validator.Status
	validated bool
}

type subscription struct {
	id uint64
	fn func(Change)
}

// Form tracks field values and their validation statuses.
// A field counts as invalid until it has been validated at least once, so a
// fresh form with fields is not valid. All methods are safe for concurrent use.
//
// Changes reach subscribers in the order the state was updated. Callbacks may
// read the form but must not call Set or ValidateAll.
type Form struct {
	// deliverMu is taken before mu is released so that concurrent updates
	// notify in the order they were applied.
	deliverMu sync.Mutex

	mu     sync.RWMutex
	name   string
	log    *slog.Logger
	order  []string
	fields map[string]*fieldState
	valid  bool

	subsMu sync.Mutex
	subs   []subscription
	nextID uint64
}

// New creates a form from the field declarations.
func New(fields []Field, opts ...Option) (*Form, error) {
	f := &Form{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]*fieldState, len(fields)),
	}
	for _, opt := range opts {
		opt(f)
	}

	for _, field := range fields {
		if field.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, ok := f.fields[field.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, field.Name)
		}
		f.order = append(f.order, field.Name)
		f.fields[field.Name] = &fieldState{rules: field.Rules}
	}
	f.valid = len(f.order) == 0

	return f, nil
}

// Set stores value for the named field, validates it against the field's own
// rules and notifies subscribers.
func (f *Form) Set(name, value string) (validator.Status, error) {
	f.mu.Lock()
	state, ok := f.fields[name]
	if !ok {
		f.mu.Unlock()
		return validator.Status{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	state.value = value
	state.status = validator.Validate(value, state.rules...)
	state.validated = true
	f.valid = f.aggregate()
	change := Change{Field: name, Value: value, Status: state.status, FormValid: f.valid}
	f.deliverMu.Lock()
	f.mu.Unlock()
	defer f.deliverMu.Unlock()

	f.log.Debug("form field validated",
		logger.Form(f.name),
		logger.Field(name),
		logger.Valid(change.Status.Valid),
		slog.String("message", change.Status.Message),
		slog.Bool("form_valid", change.FormValid),
	)
	f.notify(change)

	return change.Status, nil
}

// ValidateAll validates every field with its current value and returns the
// form validity. Subscribers receive one Change per field.
func (f *Form) ValidateAll() bool {
	f.mu.Lock()
	changes := make([]Change, 0, len(f.order))
	for _, name := range f.order {
		state := f.fields[name]
		state.status = validator.Validate(state.value, state.rules...)
		state.validated = true
		changes = append(changes, Change{Field: name, Value: state.value, Status: state.status})
	}
	f.valid = f.aggregate()
	valid := f.valid
	f.deliverMu.Lock()
	f.mu.Unlock()
	defer f.deliverMu.Unlock()

	f.log.Debug("form validated", logger.Form(f.name), logger.Valid(valid))
	for _, change := range changes {
		change.FormValid = valid
		f.notify(change)
	}

	return valid
}

// Valid reports whether every field has been validated and passed.
func (f *Form) Valid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valid
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	state, ok := f.fields[name]
	if !ok {
		return "", false
	}
	return state.value, true
}

// Status returns the last status of the named field. The second result is
// false when the field is unknown or has not been validated yet.
func (f *Form) Status(name string) (validator.Status, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	state, ok := f.fields[name]
	if !ok || !state.validated {
		return validator.Status{}, false
	}
	return state.status, true
}

// Fields returns field names in declaration order.
func (f *Form) Fields() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.order...)
}

// Err returns ValidationErrors for every validated field that failed, or nil.
func (f *Form) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var errs ValidationErrors
	for _, name := range f.order {
		state := f.fields[name]
		if state.validated && !state.status.Valid {
			errs = append(errs, ValidationError{Field: name, Message: state.status.Message})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Subscribe registers fn to run after every field validation. Callbacks run
// synchronously in registration order, outside the form lock.
func (f *Form) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	f.subsMu.Lock()
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscription{id: id, fn: fn})
	f.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.subsMu.Lock()
			defer f.subsMu.Unlock()
			for i, sub := range f.subs {
				if sub.id == id {
					f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (f *Form) notify(change Change) {
	f.subsMu.Lock()
	subs := append([]subscription(nil), f.subs...)
	f.subsMu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}

// aggregate must be called with mu held.
func (f *Form) aggregate() bool {
	for _, name := range f.order {
		state := f.fields[name]
		if !state.validated || !state.status.Valid {
			return false
		}
	}
	return true
}
