package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageString(t *testing.T) {
	assert.Equal(t, "start", StageStart.String())
	assert.Equal(t, "handle_freed", StageHandleFreed.String())
	assert.Equal(t, "failed", StageFailed.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
