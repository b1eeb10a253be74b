package bid_stats_get

import (
	"net/http"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Error(w, h.log, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.service.BidStatistics(r.Context(), userID)
	if err != nil {
		respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.BidStatsFromDomain(stats))
}
