package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/fridok/fridok/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind service.HapticKind
		want string
	}{
		{service.HapticImpact, "\a"},
		{service.HapticSuccess, "\a"},
		{service.HapticError, "\a\a"},
	}

	for _, tc := range tests {
		var out bytes.Buffer
		require.NoError(t, (&Bell{Out: &out}).Trigger(context.Background(), tc.kind))
		assert.Equal(t, tc.want, out.String(), string(tc.kind))
	}
}
