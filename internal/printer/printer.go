// Package printer writes loaded content and matched lines to an output stream
package printer

import (
	"fmt"
	"io"
)

// Print writes content as loaded, then each matched line on its own line in the given order.
func Print(w io.Writer, content string, lines []string) error {
	if _, err := fmt.Fprintln(w, content); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
