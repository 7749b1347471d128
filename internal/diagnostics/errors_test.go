package diagnostics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorMessage(t *testing.T) {
	err := CLIError{Code: ErrParse, Message: "failed to parse foo.addaat"}
	assert.Equal(t, "failed to parse foo.addaat", err.Error())
}

func TestWrapJoinsUnderlyingError(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrIO, "failed to write output file", cause)

	cliErr, ok := err.(CLIError)
	assert.True(t, ok)
	assert.Equal(t, ErrIO, cliErr.Code)
	assert.Contains(t, err.Error(), "failed to write output file")
	assert.Contains(t, err.Error(), "permission denied")
}
