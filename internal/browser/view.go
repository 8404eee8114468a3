package browser

import (
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

const (
	compactNoDescription = "No description"
	NoResultsMessage     = "No services found."
	EmptyTitle           = "No services yet"
	EmptyText            = "Create your first service to start building packages."
	EmptyCreateLabel     = "Create service"
)

// View — снимок экрана для рендера. Строится заново при каждом вызове Render.
type View struct {
	Actor     domain.Role    `json:"actor"`
	CanManage bool           `json:"can_manage"`
	ReadState ReadState      `json:"read_state"`
	Header    *HeaderActions `json:"header,omitempty"`
	Filters   FilterState    `json:"filters"`
	Summary   Summary        `json:"summary"`
	Error     *ErrorState    `json:"error,omitempty"`
	Empty     *EmptyState    `json:"empty,omitempty"`
	Compact   *CompactView   `json:"compact,omitempty"`
	Table     *TableView     `json:"table,omitempty"`
}

// HeaderActions есть только у пользователей с правом управления.
type HeaderActions struct {
	CreateServiceURL string `json:"create_service_url"`
	CreatePackageURL string `json:"create_package_url"`
}

type FilterOption struct {
	Value    domain.TypeFilter `json:"value"`
	Label    string            `json:"label"`
	Selected bool              `json:"selected"`
}

type FilterState struct {
	Query      string            `json:"query"`
	TypeFilter domain.TypeFilter `json:"type"`
	Options    []FilterOption    `json:"options"`
}

// Summary считается по нефильтрованному снимку.
type Summary struct {
	Loading  bool `json:"loading"`
	Total    int  `json:"total"`
	Services int  `json:"services"`
	Packages int  `json:"packages"`
}

type ErrorState struct {
	Message string `json:"message"`
}

type EmptyState struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	ShowCreate bool   `json:"show_create"`
	CreateURL  string `json:"create_url,omitempty"`
}

type CompactView struct {
	Rows      []Row  `json:"rows"`
	NoResults bool   `json:"no_results"`
	Message   string `json:"message,omitempty"`
}

type TableView struct {
	Search string `json:"search"`
	Rows   []Row  `json:"rows"`
}

type Row struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       string      `json:"price"`
	Duration    string      `json:"duration"`
	Kind        domain.Kind `json:"kind"`
	Badge       string      `json:"badge,omitempty"`
	DetailURL   string      `json:"detail_url"`
	Action      RowAction   `json:"action"`
}

// RowAction: либо доступна архивация, либо показывается «нет доступа».
type RowAction struct {
	NoAccess   bool   `json:"no_access"`
	CanArchive bool   `json:"can_archive"`
	Pending    bool   `json:"pending"`
	ArchiveURL string `json:"archive_url,omitempty"`
}

// Render строит View по текущему состоянию.
func (b *Browser) Render() View {
	canManage := b.can(b.actor)

	b.mu.Lock()
	defer b.mu.Unlock()

	v := View{
		Actor:     b.actor,
		CanManage: canManage,
		ReadState: b.read,
		Filters:   b.filterState(),
		Summary:   b.summary(),
	}

	if canManage {
		v.Header = &HeaderActions{
			CreateServiceURL: b.nav.CreateServiceURL(),
			CreatePackageURL: b.nav.CreatePackageURL(),
		}
	}

	switch {
	case b.read == ReadError:
		v.Error = &ErrorState{Message: e.MessageOr(b.readErr, LoadFailureMessage)}
		return v
	case b.read == ReadSuccess && len(b.items) == 0:
		v.Empty = &EmptyState{
			Title:      EmptyTitle,
			Text:       EmptyText,
			ShowCreate: canManage,
		}
		if canManage {
			v.Empty.CreateURL = b.nav.CreateServiceURL()
		}
		return v
	}

	visible := Search(ByType(b.items, b.typeFilter), b.query)
	compact := &CompactView{Rows: b.rows(visible, compactNoDescription, canManage)}
	if len(b.items) > 0 && len(visible) == 0 {
		compact.NoResults = true
		compact.Message = NoResultsMessage
	}
	v.Compact = compact

	v.Table = &TableView{
		Search: b.tableSearch,
		Rows:   b.rows(Search(ByType(b.items, b.typeFilter), b.tableSearch), Placeholder, canManage),
	}

	return v
}

func (b *Browser) filterState() FilterState {
	opts := make([]FilterOption, 0, len(domain.TypeFilterOptions))
	for _, o := range domain.TypeFilterOptions {
		opts = append(opts, FilterOption{Value: o.Value, Label: o.Label, Selected: o.Value == b.typeFilter})
	}

	return FilterState{Query: b.query, TypeFilter: b.typeFilter, Options: opts}
}

func (b *Browser) summary() Summary {
	if b.read == ReadLoading || b.read == ReadIdle {
		return Summary{Loading: true}
	}

	s := Summary{Total: len(b.items)}
	for _, item := range b.items {
		if item.IsPackage {
			s.Packages++
		} else {
			s.Services++
		}
	}

	return s
}

func (b *Browser) rows(items []domain.CatalogItem, noDescription string, canManage bool) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		kind := item.Kind()
		row := Row{
			ID:          item.ID,
			Name:        item.Name,
			Description: orDefault(item.Description, noDescription),
			Category:    orDefault(item.Category, Placeholder),
			Price:       FormatPrice(item.Price),
			Duration:    FormatDuration(item.DurationMinutes),
			Kind:        kind,
			Badge:       kind.Label(),
			DetailURL:   b.nav.ItemURL(item.ID),
		}

		if canManage {
			_, pending := b.pending[item.ID]
			row.Action = RowAction{
				CanArchive: !pending,
				Pending:    pending,
				ArchiveURL: b.nav.ArchiveURL(item.ID),
			}
		} else {
			row.Action = RowAction{NoAccess: true}
		}

		rows = append(rows, row)
	}

	return rows
}
