package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, Email("alice@x.com"))
	assert.True(t, Email("a.b+c@sub.domain.io"))
	assert.False(t, Email(""))
	assert.False(t, Email("not-an-email"))
	assert.False(t, Email("spaces in@local.part"))
}

func TestUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple", "alice", true},
		{"underscore and digits", "ghost_99", true},
		{"min length", "abc", true},
		{"max length", "a2345678901234567890", true},
		{"too short", "ab", false},
		{"too long", "a23456789012345678901", false},
		{"hyphen", "bad-name", false},
		{"space", "bad name", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Username(tt.in))
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"strong", "Abc123!@", ""},
		{"all classes minimal", "Aa1!xx", ""},
		{"too short", "Aa1!", "Password must be at least 6 characters long"},
		{"no uppercase or special", "abc12345", "Password must contain at least one uppercase letter"},
		{"no lowercase", "ABC123!@", "Password must contain at least one lowercase letter"},
		{"no digit", "Abcdef!@", "Password must contain at least one number"},
		{"no special", "Abc12345", "Password must contain at least one special character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
