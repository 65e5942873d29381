package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonie-n/valodash-backend/internal/store"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Store          store.Store
	Logger         *zap.Logger
	AllowedOrigins []string
}

type Handler struct {
	store          store.Store
	logger         *zap.SugaredLogger
	validator      *validator.Validate
	allowedOrigins []string
}

func New(cfg Config) *Handler {
	return &Handler{
		store:          cfg.Store,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		allowedOrigins: cfg.AllowedOrigins,
	}
}
