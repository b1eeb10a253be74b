package chat_message_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var messageDTO dto.ChatMessageCreate
	if err := json.NewDecoder(r.Body).Decode(&messageDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	sent, err := h.service.SendMessage(r.Context(), userID, chatID, messageDTO.Content)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrMissingRequiredFields),
			errors.Is(err, chat.ErrEmptyMessage):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, chat.ErrChatNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, chat.ErrNotParticipant):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.ChatMessageFromDomain(*sent))
}
