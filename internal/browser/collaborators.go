package browser

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

// DataSource отдаёт снимок каталога и архивирует позиции.
type DataSource interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Archive(ctx context.Context, id uuid.UUID) error
}

// PermissionFunc решает, может ли роль управлять каталогом.
// Вызывается при каждом рендере и при каждой попытке архивации.
type PermissionFunc func(role domain.Role) bool

// Navigator строит адреса переходов. Сам переход выполняет вызывающая сторона.
type Navigator interface {
	CreateServiceURL() string
	CreatePackageURL() string
	ItemURL(id uuid.UUID) string
	ArchiveURL(id uuid.UUID) string
}

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notifier показывает всплывающие уведомления. Результат не используется.
type Notifier interface {
	Notify(kind NotificationKind, message string)
}

// ConfirmFunc синхронно спрашивает пользователя и возвращает его ответ.
type ConfirmFunc func(prompt string) bool
