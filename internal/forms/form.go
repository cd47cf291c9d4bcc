package forms

import (
	"context"
	"fmt"
	"reflect"
)

// Kind identifies which authentication form was submitted.
type Kind int

const (
	KindLogin Kind = iota
	KindSignup
	KindForgotPassword
)

func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindSignup:
		return "signup"
	case KindForgotPassword:
		return "forgot-password"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is the lifecycle position of a form.
type State int

const (
	Pristine State = iota
	Editing
	Validating
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Pristine:
		return "pristine"
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Values is a record of form field name to submitted value.
type Values map[string]string

// Submitter receives a form that passed validation.
type Submitter interface {
	Submit(ctx context.Context, kind Kind, values Values) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, kind Kind, values Values) error

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, kind Kind, values Values) error {
	return f(ctx, kind, values)
}

// Form wraps one mounted form: its schema-typed input, the current state and
// the messages of the last validation.
type Form[T any] struct {
	kind   Kind
	input  T
	state  State
	errors FieldErrors
}

// New mounts a pristine form. T must be one of the schema structs.
func New[T any](kind Kind, input T) *Form[T] {
	return &Form[T]{kind: kind, input: input, state: Pristine, errors: FieldErrors{}}
}

// Kind returns which form this is.
func (f *Form[T]) Kind() Kind { return f.kind }

// State returns the current lifecycle state.
func (f *Form[T]) State() State { return f.state }

// Errors returns the messages of the last validation.
func (f *Form[T]) Errors() FieldErrors { return f.errors }

// Input returns the typed input.
func (f *Form[T]) Input() T { return f.input }

// Set changes one field, addressed by its form name, and moves the form to
// Editing.
func (f *Form[T]) Set(field, value string) error {
	v := reflect.ValueOf(&f.input).Elem()
	for i := 0; i < v.NumField(); i++ {
		sf := v.Type().Field(i)
		if sf.Tag.Get("form") != field || sf.Type.Kind() != reflect.String {
			continue
		}
		v.Field(i).SetString(value)
		f.state = Editing
		return nil
	}
	return fmt.Errorf("%s form has no field %q", f.kind, field)
}

// Submit validates every field. An invalid form keeps its messages and never
// reaches the submitter. A valid form is handed to the submitter exactly once.
func (f *Form[T]) Submit(ctx context.Context, sub Submitter) error {
	f.state = Validating
	f.errors = Validate(f.input)
	if len(f.errors) > 0 {
		f.state = Invalid
		return nil
	}

	f.state = Valid
	if sub == nil {
		return nil
	}
	if err := sub.Submit(ctx, f.kind, f.values(false)); err != nil {
		return fmt.Errorf("submit %s form: %w", f.kind, err)
	}
	return nil
}

// Values returns the fields for re-rendering. Secret fields are blanked.
func (f *Form[T]) Values() Values {
	return f.values(true)
}

func (f *Form[T]) values(redact bool) Values {
	out := Values{}
	v := reflect.ValueOf(f.input)
	for i := 0; i < v.NumField(); i++ {
		sf := v.Type().Field(i)
		name := sf.Tag.Get("form")
		if name == "" || sf.Type.Kind() != reflect.String {
			continue
		}
		if redact && sf.Tag.Get("secret") == "true" {
			out[name] = ""
			continue
		}
		out[name] = v.Field(i).String()
	}
	return out
}

// Redact returns a copy of values with every schema secret replaced by a
// fixed mask, for logging.
func Redact(values Values) Values {
	out := make(Values, len(values))
	for k, v := range values {
		if _, secret := secretFields[k]; secret && v != "" {
			v = "[redacted]"
		}
		out[k] = v
	}
	return out
}

var secretFields = collectSecrets(LoginInput{}, SignupInput{}, ForgotPasswordInput{})

func collectSecrets(schemas ...any) map[string]struct{} {
	out := map[string]struct{}{}
	for _, s := range schemas {
		t := reflect.TypeOf(s)
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("secret") == "true" {
				out[t.Field(i).Tag.Get("form")] = struct{}{}
			}
		}
	}
	return out
}
