// Package respond единый конверт ответов внешнего API:
// {"success": true, "data": ...} на успех,
// {"success": false, "message": "..."} на ошибку.
package respond

import (
	"encoding/json"
	"net/http"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/pkg/logger"
)

type envelope struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message,omitempty"`
	Data       any           `json:"data,omitempty"`
	Pagination *dto.PageInfo `json:"pagination,omitempty"`
}

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// JSON пишет успешный ответ. Ошибка сериализации логируется:
// статус к этому моменту уже ушел клиенту.
func JSON(w http.ResponseWriter, log errorLogger, statusCode int, data any) {
	write(w, log, statusCode, envelope{Success: true, Data: data})
}

// Page как JSON, но с блоком пагинации.
func Page(w http.ResponseWriter, log errorLogger, statusCode int, data any, page dto.PageInfo) {
	write(w, log, statusCode, envelope{Success: true, Data: data, Pagination: &page})
}

// Error пишет ошибку с человекочитаемым сообщением.
func Error(w http.ResponseWriter, log errorLogger, statusCode int, message string) {
	write(w, log, statusCode, envelope{Success: false, Message: message})
}

func write(w http.ResponseWriter, log errorLogger, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		if log != nil {
			log.Error("encode JSON response", logger.NewField("error", err))
		}
	}
}
