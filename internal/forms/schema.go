// Package forms declares the validation schemas of the authentication forms
// and the small state machine each submitted form goes through.
package forms

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error messages shown next to the offending field.
const (
	MsgInvalidEmail  = "Invalid email address"
	MsgShortPassword = "Password must be at least 6 characters"
)

// MinPasswordLength is the shortest password the forms accept.
const MinPasswordLength = 6

// Rule aliases used by the schemas, each mapped to one message.
const (
	ruleEmail    = "email_address"
	rulePassword = "password"
)

var ruleMessages = map[string]string{
	ruleEmail:    MsgInvalidEmail,
	rulePassword: MsgShortPassword,
}

// LoginInput is the schema of the sign-in form.
type LoginInput struct {
	Email    string `form:"email" validate:"email_address"`
	Password string `form:"password" validate:"password" secret:"true"`
}

// SignupInput is the schema of the account creation form.
type SignupInput struct {
	Email    string `form:"email" validate:"email_address"`
	Password string `form:"password" validate:"password" secret:"true"`
}

// ForgotPasswordInput is the schema of the password reset request form.
type ForgotPasswordInput struct {
	Email string `form:"email" validate:"email_address"`
}

// FieldErrors maps a form field name to the message displayed for it.
type FieldErrors map[string]string

// Has reports whether field failed validation.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator configured with the form tags.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("tld", func(fl validator.FieldLevel) bool {
			return hasTopLevelDomain(fl.Field().String())
		})
		_ = v.RegisterValidation("plain_local", func(fl validator.FieldLevel) bool {
			return hasPlainLocalPart(fl.Field().String())
		})
		v.RegisterAlias(ruleEmail, "email,plain_local,tld")
		v.RegisterAlias(rulePassword, "min="+strconv.Itoa(MinPasswordLength))

		validateInst = v
	})
	return validateInst
}

// plainLocalPart allows unquoted ASCII letters, digits and _'+-. with no
// leading dot, no doubled dot and no trailing quote or dot.
var plainLocalPart = regexp.MustCompile(`^[A-Za-z0-9_+-]([A-Za-z0-9_'+.-]*[A-Za-z0-9_+-])?$`)

func hasPlainLocalPart(addr string) bool {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return false
	}
	local := addr[:at]
	return plainLocalPart.MatchString(local) && !strings.Contains(local, "..")
}

// hasTopLevelDomain requires the domain part to end in a label of at least
// two letters, so "a@b" and "a@b.c" are rejected.
func hasTopLevelDomain(addr string) bool {
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return false
	}
	domain := addr[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	if dot <= 0 {
		return false
	}
	tld := domain[dot+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// Validate checks input against its schema and returns the first message of
// every failing field. input must be a struct or a pointer to one.
func Validate(input any) FieldErrors {
	errs := FieldErrors{}

	err := Validator().Struct(input)
	if err == nil {
		return errs
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_form"] = err.Error()
		return errs
	}

	for _, fe := range ves {
		if errs.Has(fe.Field()) {
			continue
		}
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := ruleMessages[fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " failed the " + fe.Tag() + " rule"
}
