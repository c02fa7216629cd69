package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayers(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLeft  string
		wantRight string
		wantErr   error
	}{
		{"two names", []string{"alice", "bob"}, "alice", "bob", nil},
		{"extra args ignored", []string{"alice", "bob", "carol"}, "alice", "bob", nil},
		{"trimmed", []string{"  alice ", "\tbob"}, "alice", "bob", nil},
		{"no args", nil, "", "", ErrMissingPlayers},
		{"one arg", []string{"alice"}, "", "", ErrMissingPlayers},
		{"blank name", []string{"alice", "   "}, "", "", ErrInvalidPlayers},
		{"duplicate", []string{"alice", "alice"}, "", "", ErrInvalidPlayers},
		{"duplicate after normalization", []string{"caf\u00e9", "cafe\u0301"}, "", "", ErrInvalidPlayers},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, right, err := ParsePlayers(tc.args)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLeft, left)
			assert.Equal(t, tc.wantRight, right)
		})
	}
}
