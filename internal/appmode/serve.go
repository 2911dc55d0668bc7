package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
)

// RunServe blocks until ctx is done, then shuts the search-node down. A listen failure calls stop and is returned.
func RunServe(ctx context.Context, stop context.CancelFunc, ai *model.AppInit) error {
	// получить экземпляр сервера
	srv := transport.NewSearchServer(ai.Address, processor.Processor{})

	// запуск сервера
	listenErr := make(chan error, 1)
	go func() {
		log.Printf("Search-node running on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server stopped: %v", err)
			listenErr <- err
			stop()
			return
		}
		log.Println("Server gracefully stopping...")
	}()

	<-ctx.Done()

	select {
	case err := <-listenErr:
		return err
	default:
	}

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown search-node %q correctly: %q", ai.Address, err.Error())
		return err
	}
	log.Printf("Search-node %q server is closed.", ai.Address)
	return nil
}
