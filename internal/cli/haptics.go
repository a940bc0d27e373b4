package cli

import (
	"context"
	"io"

	"github.com/fridok/fridok/internal/service"
)

// Verify interface compliance at compile time
var _ service.Haptics = (*Bell)(nil)

// Bell is the terminal stand-in for a haptic engine: it rings the bell twice
// for a wrong answer and once for anything else.
type Bell struct {
	Out io.Writer
}

// Trigger implements service.Haptics.
func (b *Bell) Trigger(_ context.Context, kind service.HapticKind) error {
	pulse := "\a"
	if kind == service.HapticError {
		pulse = "\a\a"
	}
	_, err := io.WriteString(b.Out, pulse)
	return err
}
