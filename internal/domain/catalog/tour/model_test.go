package tour

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsStatusToActive(t *testing.T) {
	tr := &Tour{Name: "Snorkel Bay", CategoryID: 1}

	require.NoError(t, tr.Validate(context.Background()))
	assert.Equal(t, StatusActive, tr.Status)
}
