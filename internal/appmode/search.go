// Package appmode provides 2 methods to work in preliminarily defined mode 'search' and 'serve'
package appmode

import (
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/printer"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
)

// RunSearch loads ai.FilePath, prints it to out and then prints the lines matching ai.Query.
// The file is fully read before any search runs, so I/O errors never leave partial matches behind.
func RunSearch(ai *model.AppInit, out io.Writer) error {
	content, err := reader.ReadContent(ai.FilePath)
	if err != nil {
		return err
	}

	search := matcher.Select(ai.CaseSensitive)
	return printer.Print(out, content, search(ai.Query, content))
}
