// Package processor runs a search task received by the search-node and sends result back to transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	// задание могли отменить, пока оно ждало обработки
	select {
	case <-ctx.Done():
	default:
		result.Output = matcher.Select(!task.IgnoreCase)(task.Query, task.Content)
	}

	// считаем общий хеш
	result.HashSumm = hasher(ctx, result.Output)

	return &result
}

func hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
