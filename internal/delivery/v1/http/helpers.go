package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет ошибку с HTTP-статусом и текстом для клиента.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidItemID),
		errors.Is(err, e.ErrUnknownTypeFilter),
		errors.Is(err, e.ErrConfirmRequired):
		return http.StatusBadRequest, e.MessageOr(err, e.ErrStatusBadRequest.Error())
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, e.ErrForbidden.Error()
	case errors.Is(err, e.ErrItemNotFound):
		return http.StatusNotFound, e.ErrItemNotFound.Error()
	case errors.Is(err, e.ErrArchivePending):
		return http.StatusConflict, e.ErrArchivePending.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// parseItemID читает {id} из пути.
func parseItemID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, e.ErrInvalidItemID
	}

	return id, nil
}

// listParams — состояние экрана, которое переносится между запросами через URL.
type listParams struct {
	Query       string
	Type        string
	HasType     bool
	TableSearch string
}

func readListParams(values url.Values) listParams {
	// Пустой type тоже проверяется: ParseTypeFilter его не пропускает.
	_, hasType := values["type"]
	return listParams{
		Query:       values.Get("q"),
		Type:        values.Get("type"),
		HasType:     hasType,
		TableSearch: values.Get("tq"),
	}
}

// encode собирает query-строку, пропуская пустые значения.
func (p listParams) encode() string {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.HasType && p.Type != "" {
		v.Set("type", p.Type)
	}
	if p.TableSearch != "" {
		v.Set("tq", p.TableSearch)
	}

	return v.Encode()
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}

	return path + "?" + query
}
