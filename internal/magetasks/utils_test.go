package magetasks

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	t.Parallel()

	assert.False(t, IsCommandNotFound(nil))
	assert.True(t, IsCommandNotFound(exec.ErrNotFound))
	assert.True(t, IsCommandNotFound(errors.New("exec: \"nope\": executable file not found in $PATH")))
	assert.False(t, IsCommandNotFound(errors.New("exit status 1")))
}
