package yacht

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsStatusToActive(t *testing.T) {
	y := &Yacht{Name: "Sea Breeze", Capacity: 8, CategoryID: 1}

	require.NoError(t, y.Validate(context.Background()))
	assert.Equal(t, StatusActive, y.Status)
}

func TestValidate_KeepsExplicitStatus(t *testing.T) {
	y := &Yacht{Name: "Sea Breeze", Capacity: 8, CategoryID: 1, Status: StatusMaintenance}

	require.NoError(t, y.Validate(context.Background()))
	assert.Equal(t, StatusMaintenance, y.Status)
}
