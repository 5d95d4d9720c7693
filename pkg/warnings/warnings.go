// Package warnings writes user-facing warnings that do not abort a run.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ajxudir/tsvsort/pkg/constants"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning line prefixed with the warning icon.
//
// A trailing newline is added when the message does not end with one.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprint(w, constants.IconWarn+"  "+msg)
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: New destination; nil resets to os.Stderr
//
// Returns:
//   - func(): Restores the previous writer
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
