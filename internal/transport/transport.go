// Package transport provides a new server-entity(by ginext) for search-node mode with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type InputProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc InputProcessor
}

func NewSearchServer(addr string, proc InputProcessor) *http.Server {
	h := handlers{proc: proc}

	engine := ginext.New(gin.ReleaseMode)
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}
	log.Printf("Received task %q: %d bytes of content, ignore_case=%t", task.TaskID, len(task.Content), task.IgnoreCase)

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	log.Printf("Task %q done: %d matching lines", res.TaskID, len(res.Output))

	ctx.JSON(http.StatusOK, res)
}
