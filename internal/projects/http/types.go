package http

import (
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc    *service.ProjectService
	logger *zap.Logger

	// lenientJSON treats an unparsable body as an empty payload instead of a 400.
	lenientJSON bool
}

func New(svc *service.ProjectService, logger *zap.Logger, lenientJSON bool) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger, lenientJSON: lenientJSON}
}
