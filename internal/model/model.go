// Package model contains launch parameters, search-node DTOs and the error kinds shared by all layers
package model

import "errors"

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeServe  = AppMode("serve")
)

// Переменные окружения, само наличие любой из которых включает поиск без учета регистра.
// IgnoreCaseEnv - более понятный алиас для VerboseEnv
const (
	VerboseEnv    = "VERBOSE"
	IgnoreCaseEnv = "IGNORE_CASE"
)

var (
	ErrConfig = errors.New("configuration error")
	ErrIO     = errors.New("i/o error")
)

type AppInit struct {
	Mode          AppMode
	Address       string // адрес search-node, только для ModeServe
	Query         string
	FilePath      string
	CaseSensitive bool
}

// SearchTask - задание для search-node: текст уже загружен вызывающей стороной
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`
	Content    string `json:"content"`
	IgnoreCase bool   `json:"ignore_case"`
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
