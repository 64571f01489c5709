package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	o, err := Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, o.DatabasePath)
	assert.False(t, o.NoBackup)
	assert.False(t, o.Verbose)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HERCNAV_DB", "/tmp/user_data.db")
	t.Setenv("HERCNAV_NO_BACKUP", "true")
	t.Setenv("HERCNAV_VERBOSE", "1")

	o, err := Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/tmp/user_data.db", o.DatabasePath)
	assert.True(t, o.NoBackup)
	assert.True(t, o.Verbose)
}
