// Package diagnostics formats the translator's user-facing errors: a
// uniform CLIError payload plus the parse-failure report described in §6
// (max matched length, line, column and rule stack at the point of
// furthest failure).
package diagnostics

import "encoding/json"

// These codes enumerate the error kinds §7 distinguishes.
const (
	ErrArgument = "ERR_ARGUMENT"
	ErrIO       = "ERR_IO"
	ErrGrammar  = "ERR_GRAMMAR_DEFINITION"
	ErrParse    = "ERR_PARSE"
	ErrSemantic = "ERR_SEMANTIC"
	ErrInternal = "ERR_INTERNAL"
)

// CLIError is a uniform error payload for both human and JSON output. When
// printed with %s it returns Message, followed by ": " and Detail when
// Detail is set; callers that want JSON use JSON.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e CLIError) String() string {
	return e.Error()
}

func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a CLIError with code and wraps inner's message as detail.
func Wrap(code, msg string, inner error) error {
	return CLIError{Code: code, Message: msg, Detail: inner.Error()}
}
