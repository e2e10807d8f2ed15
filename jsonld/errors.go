package jsonld

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of configuration error.
type ErrorCode string

const (
	// ErrCodeConflictingTermDecl indicates a scope declares both Term and Terms.
	ErrCodeConflictingTermDecl ErrorCode = "term-and-terms"
	// ErrCodeDuplicateTerm indicates a scope declares the same term twice.
	ErrCodeDuplicateTerm ErrorCode = "duplicate-term"
)

var (
	// ErrConfig is wrapped by every *ConfigError.
	ErrConfig = errors.New("jsonld: invalid declaration")
	// ErrUnsupportedValue is returned for field values the serializer cannot write.
	ErrUnsupportedValue = errors.New("jsonld: unsupported value")
)

// ConfigError reports a static declaration defect. It is fatal: the document
// being serialized is aborted.
type ConfigError struct {
	Code  ErrorCode
	Scope string // package path, type or mixin the declaration belongs to
	Term  string // offending term, if any
}

func (e *ConfigError) Error() string {
	switch e.Code {
	case ErrCodeConflictingTermDecl:
		return fmt.Sprintf("jsonld: found both term and terms in %s, use either one or the other", e.Scope)
	case ErrCodeDuplicateTerm:
		return fmt.Sprintf("jsonld: duplicate definition of term %q in %s", e.Term, e.Scope)
	default:
		return fmt.Sprintf("jsonld: [%s] invalid declaration in %s", e.Code, e.Scope)
	}
}

// Unwrap makes errors.Is(err, ErrConfig) hold.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
