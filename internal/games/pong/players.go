package pong

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrMissingPlayers is returned when fewer than two names are given.
	ErrMissingPlayers = errors.New("please input two player names")

	// ErrInvalidPlayers is returned for empty or duplicate names.
	ErrInvalidPlayers = errors.New("invalid player names")
)

// ParsePlayers extracts the left and right player names from args.
// Names are trimmed and NFC-normalized so visually equal names compare
// equal; they must be non-empty and distinct because the score table is
// keyed by name. Arguments after the second are ignored.
func ParsePlayers(args []string) (left, right string, err error) {
	if len(args) < 2 {
		return "", "", ErrMissingPlayers
	}

	left = norm.NFC.String(strings.TrimSpace(args[0]))
	right = norm.NFC.String(strings.TrimSpace(args[1]))

	if left == "" || right == "" {
		return "", "", fmt.Errorf("%w: names must not be empty", ErrInvalidPlayers)
	}
	if left == right {
		return "", "", fmt.Errorf("%w: both players are named %q", ErrInvalidPlayers, left)
	}
	return left, right, nil
}
