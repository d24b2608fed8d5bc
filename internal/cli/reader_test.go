package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadContract(t *testing.T) {
	tests := []struct {
		reader      io.Reader
		name        string
		expected    string
		expectError bool
	}{
		{
			name:     "reads everything verbatim",
			reader:   strings.NewReader("Clause 1.\r\n\tClause 2.\n"),
			expected: "Clause 1.\r\n\tClause 2.\n",
		},
		{
			name:     "empty input",
			reader:   strings.NewReader(""),
			expected: "",
		},
		{
			name:        "read failure",
			reader:      failingReader{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ReadContract(context.Background(), tt.reader)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestReadContract_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ReadContract(ctx, pr)

	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestReadContract_NilReader(t *testing.T) {
	_, err := ReadContract(context.Background(), nil)
	assert.Error(t, err)
}
