package printer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/printer"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrint(t *testing.T) {
	cases := []struct {
		name    string
		content string
		lines   []string
		want    string
	}{
		{
			name:    "Content then matches",
			content: "Rust:\nDuck tape.",
			lines:   []string{"Duck tape."},
			want:    "Rust:\nDuck tape.\nDuck tape.\n",
		},
		{
			name:    "No matches",
			content: "abc",
			lines:   []string{},
			want:    "abc\n",
		},
		{
			name:    "Empty content",
			content: "",
			lines:   nil,
			want:    "\n",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printer.Print(&buf, tt.content, tt.lines))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintWriteError(t *testing.T) {
	err := printer.Print(failingWriter{}, "abc", []string{"abc"})
	require.ErrorContains(t, err, "disk full")
}
