package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/browser"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/gorilla/sessions"
)

const confirmYes = "yes"

type CatalogHandler struct {
	catalogUC      usecase.CatalogUC
	logger         logger.Logger
	nav            *PathNavigator
	store          sessions.Store
	pages          *pageRenderer
	readTimeout    time.Duration
	archiveTimeout time.Duration
}

func NewCatalogHandler(
	catalogUC usecase.CatalogUC,
	logger logger.Logger,
	nav *PathNavigator,
	store sessions.Store,
	pages *pageRenderer,
	readTimeout, archiveTimeout time.Duration,
) *CatalogHandler {
	return &CatalogHandler{
		catalogUC:      catalogUC,
		logger:         logger,
		nav:            nav,
		store:          store,
		pages:          pages,
		readTimeout:    readTimeout,
		archiveTimeout: archiveTimeout,
	}
}

// newBrowser собирает экран каталога для пользователя текущего запроса.
func (h *CatalogHandler) newBrowser(r *http.Request, notifier browser.Notifier) *browser.Browser {
	actor := RoleFromContext(r.Context())
	source := &catalogSource{
		uc:             h.catalogUC,
		actor:          actor,
		readTimeout:    h.readTimeout,
		archiveTimeout: h.archiveTimeout,
	}

	return browser.New(source, h.nav, notifier, domain.CanManageCatalog, actor)
}

type pageData struct {
	Title   string
	ListURL string
	Toasts  []Toast
}

type listPageData struct {
	pageData
	View             browser.View
	Params           listParams
	ReturnQuery      string
	ClearURL         string
	EmptyCreateLabel string
}

type detailItem struct {
	Name        string
	Description string
	Category    string
	Price       string
	Duration    string
	Kind        domain.Kind
	Badge       string
	IsActive    bool
}

type detailPageData struct {
	pageData
	Item       detailItem
	ArchiveURL string
}

type confirmPageData struct {
	pageData
	Name      string
	Prompt    string
	ActionURL string
	Params    listParams
}

type errorPageData struct {
	pageData
	Code    int
	Message string
}

func (h *CatalogHandler) basePage(w http.ResponseWriter, r *http.Request, title string) pageData {
	return pageData{
		Title:   title,
		ListURL: h.nav.ListURL(),
		Toasts:  popToasts(h.store, w, r, h.logger),
	}
}

func (h *CatalogHandler) listPage(w http.ResponseWriter, r *http.Request) {
	params := readListParams(r.URL.Query())

	inline := &collectNotifier{}
	b := h.newBrowser(r, inline)
	if err := applyListParams(b, params); err != nil {
		h.logger.Warnf("%d %s: %q", http.StatusBadRequest, err.Error(), params.Type)
		inline.Notify(browser.NotifyError, e.MessageOr(err, e.ErrStatusBadRequest.Error()))
		params.Type, params.HasType = "", false
	}

	if err := b.Load(r.Context()); err != nil {
		h.logger.Warnf("failed to load catalog: %v", err)
	}

	current := h.currentParams(b)
	data := listPageData{
		pageData:         h.basePage(w, r, "Services"),
		View:             b.Render(),
		Params:           params,
		ReturnQuery:      current.encode(),
		ClearURL:         withQuery(h.nav.ListURL(), listParams{TableSearch: current.TableSearch}.encode()),
		EmptyCreateLabel: browser.EmptyCreateLabel,
	}
	data.Toasts = append(data.Toasts, inline.toasts...)

	h.pages.render(w, http.StatusOK, "list", data)
}

// currentParams возвращает параметры, которые экран реально применил.
func (h *CatalogHandler) currentParams(b *browser.Browser) listParams {
	f := b.TypeFilter()
	return listParams{
		Query:       b.Query(),
		Type:        string(f),
		HasType:     f != domain.FilterAll,
		TableSearch: b.TableSearch(),
	}
}

func (h *CatalogHandler) detailPage(w http.ResponseWriter, r *http.Request) {
	base := h.basePage(w, r, "Service")

	id, err := parseItemID(r)
	if err != nil {
		h.pages.renderError(w, base, err)
		return
	}

	ctx, cancel := withOptionalTimeout(r.Context(), h.readTimeout)
	defer cancel()

	item, err := h.catalogUC.Get(ctx, id)
	if err != nil {
		h.logger.Warnf("failed to get service %s: %v", id, err)
		h.pages.renderError(w, base, err)
		return
	}

	kind := item.Kind()
	base.Title = item.Name
	data := detailPageData{
		pageData: base,
		Item: detailItem{
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Price:       browser.FormatPrice(item.Price),
			Duration:    browser.FormatDuration(item.DurationMinutes),
			Kind:        kind,
			Badge:       kind.Label(),
			IsActive:    item.IsActive,
		},
	}
	if data.Item.Description == "" {
		data.Item.Description = browser.Placeholder
	}
	if data.Item.Category == "" {
		data.Item.Category = browser.Placeholder
	}
	if item.IsActive && domain.CanManageCatalog(RoleFromContext(r.Context())) {
		data.ArchiveURL = h.nav.ArchiveURL(id)
	}

	h.pages.render(w, http.StatusOK, "detail", data)
}

// confirmPage показывает запрос подтверждения архивации.
func (h *CatalogHandler) confirmPage(w http.ResponseWriter, r *http.Request) {
	base := h.basePage(w, r, "Archive service")

	id, err := parseItemID(r)
	if err != nil {
		h.pages.renderError(w, base, err)
		return
	}

	if !domain.CanManageCatalog(RoleFromContext(r.Context())) {
		h.logger.Warnf("%d archive page for %s", http.StatusForbidden, id)
		h.pages.renderError(w, base, e.ErrForbidden)
		return
	}

	ctx, cancel := withOptionalTimeout(r.Context(), h.readTimeout)
	defer cancel()

	item, err := h.catalogUC.Get(ctx, id)
	if err != nil {
		h.logger.Warnf("failed to get service %s: %v", id, err)
		h.pages.renderError(w, base, err)
		return
	}

	h.pages.render(w, http.StatusOK, "confirm", confirmPageData{
		pageData:  base,
		Name:      item.Name,
		Prompt:    browser.ArchivePrompt,
		ActionURL: h.nav.ArchiveURL(id),
		Params:    readListParams(r.URL.Query()),
	})
}

// archive принимает ответ на подтверждение и возвращает пользователя к списку
// с теми же фильтрами. Итог показывается flash-уведомлением.
func (h *CatalogHandler) archive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		h.pages.renderError(w, h.basePage(w, r, "Archive service"), e.ErrStatusBadRequest)
		return
	}

	id, err := parseItemID(r)
	if err != nil {
		h.pages.renderError(w, h.basePage(w, r, "Archive service"), err)
		return
	}

	params := readListParams(r.PostForm)
	confirmed := r.PostForm.Get("confirm") == confirmYes

	notifier := newFlashNotifier(h.store, w, r, h.logger)
	b := h.newBrowser(r, notifier)

	outcome, err := b.Archive(r.Context(), id, func(string) bool { return confirmed })
	switch outcome {
	case browser.ArchiveRefused:
		h.logger.Warnf("archive of %s refused: %v", id, err)
		notifier.Notify(browser.NotifyError, e.MessageOr(err, browser.ArchiveFailureMessage))
	case browser.ArchiveFailed:
		h.logger.Errorf(err, "failed to archive service %s", id)
	}

	http.Redirect(w, r, withQuery(h.nav.ListURL(), params.encode()), http.StatusSeeOther)
}
