// Package reader loads a whole file into memory as UTF-8 text
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// ReadContent returns the full text of fileName. Every failure wraps model.ErrIO.
func ReadContent(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: error opening file %q: %v", model.ErrIO, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified source filename %q is a directory", model.ErrIO, fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't read file %q: %v", model.ErrIO, fileName, err)
	}

	text, err := decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: file %q: %v", model.ErrIO, fileName, err)
	}
	return text, nil
}

func decode(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16BE), bytes.HasPrefix(raw, bomUTF16LE):
		// UTF-16 с BOM перекодируем в UTF-8, BOM при этом отбрасывается
		decoded, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
		if err != nil {
			return "", fmt.Errorf("invalid UTF-16 text: %v", err)
		}
		raw = decoded
	default:
		raw = bytes.TrimPrefix(raw, bomUTF8)
	}

	if !utf8.Valid(raw) {
		return "", errors.New("content is not valid UTF-8 text")
	}
	return string(raw), nil
}
