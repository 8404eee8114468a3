package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/browser"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/gorilla/sessions"
)

const flashSessionName = "catalog-flash"

// Toast — уведомление, готовое к показу.
type Toast struct {
	Kind    browser.NotificationKind `json:"kind"`
	Message string                   `json:"message"`
}

// flashNotifier складывает уведомления во flash-сообщения cookie-сессии,
// чтобы показать их после редиректа.
type flashNotifier struct {
	store  sessions.Store
	w      http.ResponseWriter
	r      *http.Request
	logger logger.Logger
}

func newFlashNotifier(store sessions.Store, w http.ResponseWriter, r *http.Request, logger logger.Logger) *flashNotifier {
	return &flashNotifier{store: store, w: w, r: r, logger: logger}
}

func (n *flashNotifier) Notify(kind browser.NotificationKind, message string) {
	session, err := n.store.Get(n.r, flashSessionName)
	if err != nil {
		// Подпись не сошлась: сессия новая, продолжаем с ней.
		n.logger.Debugf("flash session reset: %v", err)
	}

	session.AddFlash(message, string(kind))
	if err := session.Save(n.r, n.w); err != nil {
		n.logger.Warnf("failed to save flash: %v", err)
	}
}

// popToasts забирает накопленные уведомления. Вызывать до записи тела ответа.
func popToasts(store sessions.Store, w http.ResponseWriter, r *http.Request, logger logger.Logger) []Toast {
	session, err := store.Get(r, flashSessionName)
	if err != nil {
		logger.Debugf("flash session reset: %v", err)
	}

	var toasts []Toast
	for _, kind := range []browser.NotificationKind{browser.NotifySuccess, browser.NotifyError} {
		for _, f := range session.Flashes(string(kind)) {
			if msg, ok := f.(string); ok {
				toasts = append(toasts, Toast{Kind: kind, Message: msg})
			}
		}
	}

	if len(toasts) > 0 {
		if err := session.Save(r, w); err != nil {
			logger.Warnf("failed to clear flashes: %v", err)
		}
	}

	return toasts
}

// collectNotifier копит уведомления в памяти для JSON-ответа.
type collectNotifier struct {
	toasts []Toast
}

func (n *collectNotifier) Notify(kind browser.NotificationKind, message string) {
	n.toasts = append(n.toasts, Toast{Kind: kind, Message: message})
}
