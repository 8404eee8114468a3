package http

import (
	"github.com/google/uuid"
)

// PathNavigator строит ссылки админки относительно базового пути.
type PathNavigator struct {
	base string
}

func NewPathNavigator(base string) *PathNavigator {
	return &PathNavigator{base: base}
}

func (n *PathNavigator) ListURL() string {
	return n.base
}

func (n *PathNavigator) CreateServiceURL() string {
	return n.base + "/new?mode=service"
}

func (n *PathNavigator) CreatePackageURL() string {
	return n.base + "/new?mode=package"
}

func (n *PathNavigator) ItemURL(id uuid.UUID) string {
	return n.base + "/" + id.String()
}

func (n *PathNavigator) ArchiveURL(id uuid.UUID) string {
	return n.ItemURL(id) + "/archive"
}
