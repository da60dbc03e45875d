package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"paceflow/blog-gateway/store"
	"paceflow/blog-gateway/stream"
	"paceflow/blog-gateway/ws"
)

// Summarizer defines the summarization call handlers expect from the blog
// service client. This allows for decoupling and easier testing.
// The concrete implementation is provided by the blogclient package.
type Summarizer interface {
	Summarize(ctx context.Context, content, style string) (string, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Controller *stream.Controller
	Store      *store.DocumentStore
	Summarizer Summarizer
	Hub        *ws.ProgressHub
	Logger     *logrus.Logger
	Validate   *validator.Validate
	ExportDir  string
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(controller *stream.Controller, docStore *store.DocumentStore, summarizer Summarizer, hub *ws.ProgressHub, logger *logrus.Logger, exportDir string) *ApplicationHandler {
	return &ApplicationHandler{
		Controller: controller,
		Store:      docStore,
		Summarizer: summarizer,
		Hub:        hub,
		Logger:     logger,
		Validate:   validator.New(),
		ExportDir:  exportDir,
	}
}
