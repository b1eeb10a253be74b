package chat_messages_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
	"bharatloads/internal/service/chat"
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
	chatID := mux.Vars(r)["id"]

	limit, offset, err := parsePagination(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	messages, err := h.service.ListMessages(r.Context(), userID, chatID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrChatNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, chat.ErrNotParticipant):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.ChatMessagesFromDomain(messages))
}

func parsePagination(r *http.Request) (int, int, error) {
	var limit, offset int
	var err error
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, errors.New("invalid limit")
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			return 0, 0, errors.New("invalid offset")
		}
	}
	return limit, offset, nil
}
