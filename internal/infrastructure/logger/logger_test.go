package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	log, err := New("debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = New("loud")
	assert.Error(t, err)
}

func TestWithRequest(t *testing.T) {
	assert.Nil(t, WithRequest(nil, "abc"))
	assert.NotNil(t, WithRequest(zap.NewNop(), "abc"))
}
