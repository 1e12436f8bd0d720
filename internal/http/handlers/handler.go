package handlers

import (
	"github.com/NotAnsar/orava-api/internal/analytics"
	"github.com/NotAnsar/orava-api/internal/config"
	"github.com/NotAnsar/orava-api/internal/queue"
	"github.com/NotAnsar/orava-api/internal/search"
	"github.com/NotAnsar/orava-api/internal/storage"
	"github.com/NotAnsar/orava-api/internal/store"

	"go.uber.org/zap"
)

type Handler struct {
	Store     *store.Store
	Logger    *zap.Logger
	Config    config.Config
	Queue     *queue.Client
	Storage   *storage.ObjectStore
	Analytics *analytics.Service
	Search    *search.Engine
}
