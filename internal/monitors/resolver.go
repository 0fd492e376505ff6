package monitors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/cursorlock/internal/platform"
)

var (
	// ErrInvalidSelection is returned for input that is not an in-range
	// 1-based monitor number.
	ErrInvalidSelection = errors.New("invalid monitor selection")

	// ErrNoCurrentMonitor is returned when empty input asks for the monitor
	// under the cursor but none resolved.
	ErrNoCurrentMonitor = errors.New("no monitor under the cursor")
)

// Resolve maps a user's selection line to a catalog entry. Empty input picks
// the monitor at current (the one under the cursor) when haveCurrent is set;
// otherwise the input must be a 1-based index into the catalog. Any other
// input is an invalid selection and the caller must abort startup.
func Resolve(input string, cat Catalog, current int, haveCurrent bool) (platform.Monitor, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		if !haveCurrent {
			return platform.Monitor{}, ErrNoCurrentMonitor
		}
		return cat.Get(current), nil
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > cat.Len() {
		return platform.Monitor{}, fmt.Errorf("%w: %q (expected 1-%d)", ErrInvalidSelection, input, cat.Len())
	}
	return cat.Get(n - 1), nil
}
