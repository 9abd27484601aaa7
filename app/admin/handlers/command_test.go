package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand([]string{"seed"})
	require.NoError(t, err)
	assert.Equal(t, CommandSeed, cmd.Name)

	cmd, err = ParseCommand([]string{"grant", "--user", "ann1", "-r", "Editor"})
	require.NoError(t, err)
	assert.Equal(t, "ann1", cmd.Username)
	assert.Equal(t, "Editor", cmd.Role)

	cmd, err = ParseCommand([]string{"create-admin", "-u", "root", "-p", "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "root", cmd.Nickname)
	assert.Equal(t, constants.RoleNameAdmin, cmd.Role)
}

func TestParseCommand_Errors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"destroy"},
		{"grant", "--user", "ann1"},
		{"create-admin", "--user", "root"},
		{"seed", "--unknown"},
	} {
		_, err := ParseCommand(args)
		assert.Error(t, err, "%v", args)
	}
}
