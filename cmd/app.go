package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
)

func main() {
	// инициализировать параметры запуска - режим, запрос, файл
	appParam, err := parser.InitAppMode(os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Printf("Problem parsing arguments: %v", err)
		os.Exit(1)
	}

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeServe:
		// готовим слушатель прерываний - контекст для search-node
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = appmode.RunServe(ctx, stop, appParam)
		stop()
	default:
		err = appmode.RunSearch(appParam, os.Stdout)
	}

	if err != nil {
		log.Printf("Application error: %v", err)
		os.Exit(1)
	}
}
