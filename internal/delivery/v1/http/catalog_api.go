package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/browser"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       string      `json:"price"`
	Duration    string      `json:"duration"`
	Kind        domain.Kind `json:"kind"`
	Badge       string      `json:"badge,omitempty"`
	IsActive    bool        `json:"is_active"`
}

type ArchiveRequest struct {
	Confirm bool `json:"confirm"`
}

type ArchiveResponse struct {
	Outcome       browser.ArchiveOutcome `json:"outcome"`
	Notifications []Toast                `json:"notifications"`
	Message       string                 `json:"message,omitempty"`
}

// getCatalog
//
//	@Summary		Экран каталога услуг
//	@Description	Возвращает состояние экрана: сводку, фильтры, компактный список и таблицу
//	@Tags			catalog
//	@Produce		json
//	@Param			q		query		string			false	"Поиск по названию и описанию"
//	@Param			type	query		string			false	"Фильтр типа: all, service, addon, package"
//	@Param			tq		query		string			false	"Поиск по таблице"
//	@Success		200		{object}	browser.View
//	@Failure		400		{object}	ErrorResponse	"Неизвестный фильтр"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/catalog [get]
func (h *CatalogHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	params := readListParams(r.URL.Query())

	b := h.newBrowser(r, &collectNotifier{})
	if err := applyListParams(b, params); err != nil {
		h.logger.Warnf("%d %s: %q", http.StatusBadRequest, err.Error(), params.Type)
		WriteError(w, err)
		return
	}

	// Ошибка чтения отдаётся внутри View как состояние экрана.
	if err := b.Load(r.Context()); err != nil {
		h.logger.Warnf("failed to load catalog: %v", err)
	}

	WriteSuccess(w, http.StatusOK, b.Render())
}

// getItem
//
//	@Summary		Карточка услуги
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"ID услуги"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/{id} [get]
func (h *CatalogHandler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	ctx, cancel := withOptionalTimeout(r.Context(), h.readTimeout)
	defer cancel()

	item, err := h.catalogUC.Get(ctx, id)
	if err != nil {
		h.logger.Warnf("failed to get service %s: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toItemResponse(item))
}

func toItemResponse(item *domain.CatalogItem) ItemResponse {
	kind := item.Kind()
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       browser.FormatPrice(item.Price),
		Duration:    browser.FormatDuration(item.DurationMinutes),
		Kind:        kind,
		Badge:       kind.Label(),
		IsActive:    item.IsActive,
	}
}

// archiveItem
//
//	@Summary		Архивация услуги
//	@Description	Деактивирует услугу. Требует роль владельца и явного подтверждения
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"ID услуги"
//	@Param			request	body		ArchiveRequest	true	"Подтверждение"
//	@Success		200		{object}	ArchiveResponse
//	@Failure		400		{object}	ArchiveResponse	"Нет подтверждения"
//	@Failure		403		{object}	ArchiveResponse
//	@Failure		404		{object}	ArchiveResponse
//	@Failure		409		{object}	ArchiveResponse	"Архивация уже идёт"
//	@Router			/catalog/{id}/archive [post]
func (h *CatalogHandler) archiveItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	var req ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	notifier := &collectNotifier{}
	b := h.newBrowser(r, notifier)

	outcome, err := b.Archive(r.Context(), id, func(string) bool { return req.Confirm })

	resp := ArchiveResponse{Outcome: outcome, Notifications: notifier.toasts}
	status := http.StatusOK
	switch outcome {
	case browser.ArchiveDeclined:
		status, resp.Message = ToHTTPResponse(e.ErrConfirmRequired)
	case browser.ArchiveRefused:
		h.logger.Warnf("archive of %s refused: %v", id, err)
		status, resp.Message = ToHTTPResponse(err)
	case browser.ArchiveFailed:
		h.logger.Errorf(err, "failed to archive service %s", id)
		status, resp.Message = ToHTTPResponse(err)
	}
	if resp.Notifications == nil {
		resp.Notifications = []Toast{}
	}

	WriteSuccess(w, status, resp)
}
