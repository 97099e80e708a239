// Package validator checks user input and configuration with
// go-playground/validator.
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/go-playground/validator/v10"
)

// Ensure Validator implements tldr.URLValidator at compile time.
var _ tldr.URLValidator = (*Validator)(nil)

// ValidationErrors collects the failed rules of a struct.
type ValidationErrors struct {
	Errors []string
}

func (ve ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "no validation errors"
	}
	return strings.Join(ve.Errors, "; ")
}

// Validator wraps a shared validator.Validate instance.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// ValidateURL accepts absolute http and https URLs with a host.
func (v *Validator) ValidateURL(raw string) error {
	if err := v.v.Var(raw, "required,url"); err != nil {
		return fmt.Errorf("malformed URL %q", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

// ValidateStruct validates s against its `validate` tags. Returns nil when
// every rule passes.
func (v *Validator) ValidateStruct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := ValidationErrors{}
	for _, e := range ve {
		out.Errors = append(out.Errors, fmt.Sprintf("%s %s", e.Namespace(), e.ActualTag()))
	}
	return out
}
