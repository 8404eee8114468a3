package domain

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

func TestKind_ExactlyOneClassPerCombination(t *testing.T) {
	tests := []struct {
		isPackage bool
		category  string
		want      Kind
	}{
		{isPackage: true, category: "addon", want: KindPackage},
		{isPackage: true, category: "service", want: KindPackage},
		{isPackage: true, category: "", want: KindPackage},
		{isPackage: false, category: "addon", want: KindAddon},
		{isPackage: false, category: "service", want: KindService},
		{isPackage: false, category: "", want: KindService},
		{isPackage: false, category: "Addon", want: KindService},
	}

	for _, tt := range tests {
		item := *NewCatalogItem(uuid.New(), "x", tt.category, tt.isPackage)

		if got := item.Kind(); got != tt.want {
			t.Fatalf("isPackage=%v category=%q: expected %s, got %s", tt.isPackage, tt.category, tt.want, got)
		}

		matched := 0
		for _, f := range []TypeFilter{FilterService, FilterAddon, FilterPackage} {
			if f.Matches(item) {
				matched++
			}
		}
		if matched != 1 {
			t.Fatalf("isPackage=%v category=%q: expected exactly one class, got %d", tt.isPackage, tt.category, matched)
		}
		if !FilterAll.Matches(item) {
			t.Fatalf("expected FilterAll to match every item")
		}
	}
}

func TestParseTypeFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    TypeFilter
		wantErr bool
	}{
		{in: "all", want: FilterAll},
		{in: "service", want: FilterService},
		{in: " addon ", want: FilterAddon},
		{in: "package", want: FilterPackage},
		{in: "", wantErr: true},
		{in: "bundle", wantErr: true},
		{in: "PACKAGE", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTypeFilter(tt.in)
		if tt.wantErr {
			if !errors.Is(err, e.ErrUnknownTypeFilter) {
				t.Fatalf("%q: expected ErrUnknownTypeFilter, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestKindLabel(t *testing.T) {
	if KindPackage.Label() != "Package" || KindAddon.Label() != "Add-on" || KindService.Label() != "" {
		t.Fatalf("unexpected labels: %q %q %q", KindPackage.Label(), KindAddon.Label(), KindService.Label())
	}
}

func TestCanManageCatalog(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{role: RoleOwner, want: true},
		{role: RoleAdmin, want: false},
		{role: RoleInspector, want: false},
		{role: RoleOfficeStaff, want: false},
		{role: Role(""), want: false},
		{role: Role("ROOT"), want: false},
	}

	for _, tt := range tests {
		if got := CanManageCatalog(tt.role); got != tt.want {
			t.Fatalf("%q: expected %v, got %v", tt.role, tt.want, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	if got := ParseRole(" owner "); got != RoleOwner {
		t.Fatalf("expected OWNER, got %q", got)
	}
	if PermissionsForRole(ParseRole("nobody")) != nil {
		t.Fatalf("expected no permissions for unknown role")
	}
}
