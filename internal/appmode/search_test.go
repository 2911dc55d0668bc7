package appmode_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/stretchr/testify/require"
)

const poem = "Rust:\nsécurité, rapidité, productivité.\nObtenez les trois en même temps.\nC'est pas rustique.\n"

func TestRunSearch(t *testing.T) {
	dir := t.TempDir()
	poemFile := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(poemFile, []byte(poem), 0o600))

	cases := []struct {
		name    string
		ai      *model.AppInit
		wantOut string
		wantErr error
	}{
		{
			name:    "Positive - case sensitive",
			ai:      &model.AppInit{Mode: model.ModeSearch, Query: "duct", FilePath: poemFile, CaseSensitive: true},
			wantOut: poem + "\n" + "sécurité, rapidité, productivité.\n",
		},
		{
			name:    "Positive - case insensitive",
			ai:      &model.AppInit{Mode: model.ModeSearch, Query: "rUsT", FilePath: poemFile},
			wantOut: poem + "\n" + "Rust:\nC'est pas rustique.\n",
		},
		{
			name:    "Positive - no matches prints content only",
			ai:      &model.AppInit{Mode: model.ModeSearch, Query: "xyz", FilePath: poemFile, CaseSensitive: true},
			wantOut: poem + "\n",
		},
		{
			name:    "Negative - missing file",
			ai:      &model.AppInit{Mode: model.ModeSearch, Query: "duct", FilePath: filepath.Join(dir, "missing.txt")},
			wantErr: model.ErrIO,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := appmode.RunSearch(tt.ai, &out)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, out.String(), "nothing must be printed before the file is loaded")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOut, out.String())
		})
	}
}
