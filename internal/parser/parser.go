// Package parser puts command-line args and environment into AppInit structure and validates it for any issues
package parser

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

const usage = "Usage: minigrep [-serve address] query file"

// LookupEnv matches os.LookupEnv, so tests can pass a map-backed lookup instead of touching the process environment.
type LookupEnv func(key string) (string, bool)

func InitAppMode(args []string, lookupEnv LookupEnv) (*model.AppInit, error) {
	var appInit model.AppInit

	// режим поиска: значение переменной не важно, только её наличие
	_, verbose := lookupEnv(model.VerboseEnv)
	_, ignoreCase := lookupEnv(model.IgnoreCaseEnv)
	appInit.CaseSensitive = !verbose && !ignoreCase

	// флаги разбираем только для search-node, иначе запрос вида "-x" ушёл бы во flag-парсер
	if len(args) > 0 && isServeFlag(args[0]) {
		flagParser := flag.NewFlagSet("minigrep", flag.ContinueOnError)
		flagParser.SetOutput(io.Discard)
		addr := flagParser.String("serve", "", "run as search-node listening on the given address instead of searching a file")

		if err := flagParser.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %v\n%s", model.ErrConfig, err, usage)
		}
		if *addr == "" {
			return nil, fmt.Errorf("%w: empty search-node address\n%s", model.ErrConfig, usage)
		}

		appInit.Mode = model.ModeServe
		appInit.Address = *addr
		return &appInit, nil
	}

	// разбираемся с паттерном и файлом
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: not enough arguments\n%s", model.ErrConfig, usage)
	}

	appInit.Mode = model.ModeSearch
	appInit.Query = args[0]
	appInit.FilePath = args[1]

	return &appInit, nil
}

func isServeFlag(arg string) bool {
	for _, prefix := range []string{"-serve", "--serve"} {
		if arg == prefix || strings.HasPrefix(arg, prefix+"=") {
			return true
		}
	}
	return false
}
