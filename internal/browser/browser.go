// Package browser реализует экран просмотра каталога услуг: поиск, фильтр по
// типу, сводку, два представления списка и архивацию с подтверждением.
// Пакет не знает ни про HTTP, ни про хранилище; всё внешнее приходит через
// интерфейсы из collaborators.go.
package browser

import (
	"context"
	"sync"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

const (
	ArchivePrompt         = "Archive this service? This will deactivate it but not permanently delete it."
	ArchiveSuccessMessage = "Service archived"
	ArchiveFailureMessage = "Failed to archive service"
	LoadFailureMessage    = "Failed to load services."
)

// ReadState описывает последнее чтение каталога.
type ReadState string

const (
	ReadIdle    ReadState = "idle"
	ReadLoading ReadState = "loading"
	ReadSuccess ReadState = "success"
	ReadError   ReadState = "error"
)

// ArchiveOutcome — чем закончилась попытка архивации.
type ArchiveOutcome string

const (
	// ArchiveRefused — запрос не отправлялся: нет права или архивация уже идёт.
	ArchiveRefused   ArchiveOutcome = "refused"
	ArchiveDeclined  ArchiveOutcome = "declined"
	ArchiveSucceeded ArchiveOutcome = "succeeded"
	ArchiveFailed    ArchiveOutcome = "failed"
)

// Browser хранит состояние экрана одного пользователя. Безопасен для
// конкурентного использования.
type Browser struct {
	source   DataSource
	nav      Navigator
	notifier Notifier
	can      PermissionFunc
	actor    domain.Role

	mu          sync.Mutex
	query       string
	typeFilter  domain.TypeFilter
	tableSearch string
	read        ReadState
	items       []domain.CatalogItem
	readErr     error
	pending     map[uuid.UUID]struct{}
}

func New(source DataSource, nav Navigator, notifier Notifier, can PermissionFunc, actor domain.Role) *Browser {
	return &Browser{
		source:     source,
		nav:        nav,
		notifier:   notifier,
		can:        can,
		actor:      actor,
		typeFilter: domain.FilterAll,
		read:       ReadIdle,
		pending:    make(map[uuid.UUID]struct{}),
	}
}

// Load запрашивает свежий снимок. Ошибка сохраняется в состоянии и
// возвращается вызывающему для логирования.
func (b *Browser) Load(ctx context.Context) error {
	b.mu.Lock()
	b.read = ReadLoading
	b.mu.Unlock()

	items, err := b.source.List(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.read = ReadError
		b.readErr = err
		b.items = nil
		return err
	}

	b.read = ReadSuccess
	b.readErr = nil
	b.items = items
	return nil
}

func (b *Browser) SetQuery(q string) {
	b.mu.Lock()
	b.query = q
	b.mu.Unlock()
}

// SetTypeFilter принимает только значения из domain.TypeFilterOptions.
// При ошибке состояние не меняется.
func (b *Browser) SetTypeFilter(value string) error {
	f, err := domain.ParseTypeFilter(value)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.typeFilter = f
	b.mu.Unlock()
	return nil
}

// ClearFilters сбрасывает запрос и фильтр одним шагом. Поиск таблицы не трогает.
func (b *Browser) ClearFilters() {
	b.mu.Lock()
	b.query = ""
	b.typeFilter = domain.FilterAll
	b.mu.Unlock()
}

func (b *Browser) SetTableSearch(q string) {
	b.mu.Lock()
	b.tableSearch = q
	b.mu.Unlock()
}

func (b *Browser) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

func (b *Browser) TypeFilter() domain.TypeFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.typeFilter
}

func (b *Browser) TableSearch() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tableSearch
}

func (b *Browser) ReadState() ReadState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read
}

// IsPending сообщает, идёт ли сейчас архивация позиции id.
func (b *Browser) IsPending(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.pending[id]
	return ok
}

// Archive архивирует позицию после подтверждения пользователя.
//
// Без права управления и при уже идущей архивации той же позиции запрос не
// отправляется, возвращается ArchiveRefused и ошибка. Отказ в подтверждении
// возвращает ArchiveDeclined без ошибки. Итог запроса сообщается через
// Notifier; снимок локально не меняется, свежие данные приходят следующим Load.
func (b *Browser) Archive(ctx context.Context, id uuid.UUID, confirm ConfirmFunc) (ArchiveOutcome, error) {
	if !b.can(b.actor) {
		return ArchiveRefused, e.ErrForbidden
	}

	if confirm == nil || !confirm(ArchivePrompt) {
		return ArchiveDeclined, nil
	}

	b.mu.Lock()
	if _, ok := b.pending[id]; ok {
		b.mu.Unlock()
		return ArchiveRefused, e.ErrArchivePending
	}
	b.pending[id] = struct{}{}
	b.mu.Unlock()

	err := b.source.Archive(ctx, id)

	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()

	if err != nil {
		b.notifier.Notify(NotifyError, e.MessageOr(err, ArchiveFailureMessage))
		return ArchiveFailed, err
	}

	b.notifier.Notify(NotifySuccess, ArchiveSuccessMessage)
	return ArchiveSucceeded, nil
}
