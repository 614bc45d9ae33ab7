package valorant

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// FilterOptions narrows an agent list. Zero values match everything.
type FilterOptions struct {
	FavoritesOnly bool
	IsFavorite    func(id string) bool
	// RoleID matches Role.UUID exactly.
	RoleID string
	// Name is a case-insensitive substring of DisplayName.
	Name string
}

// Filter applies favorites, role and then name filters, preserving order.
func Filter(agents []*Agent, opts FilterOptions) []*Agent {
	name := normalizedName(opts.Name)

	return lo.Filter(agents, func(a *Agent, _ int) bool {
		if opts.FavoritesOnly && (opts.IsFavorite == nil || !opts.IsFavorite(a.UUID)) {
			return false
		}
		if opts.RoleID != "" && (a.Role == nil || a.Role.UUID != opts.RoleID) {
			return false
		}
		if name != "" && !strings.Contains(strings.ToLower(a.DisplayName), name) {
			return false
		}
		return true
	})
}

// FavoriteAgents keeps only agents for which isFavorite is true.
func FavoriteAgents(agents []*Agent, isFavorite func(id string) bool) []*Agent {
	return Filter(agents, FilterOptions{FavoritesOnly: true, IsFavorite: isFavorite})
}

// Roles returns the distinct roles in order of first appearance.
func Roles(agents []*Agent) []*Role {
	roles := lo.FilterMap(agents, func(a *Agent, _ int) (*Role, bool) {
		return a.Role, a.Role != nil && a.Role.UUID != ""
	})
	return lo.UniqBy(roles, func(r *Role) string { return r.UUID })
}

// FindRole resolves a role by uuid or case-insensitive name.
func FindRole(agents []*Agent, query string) (*Role, error) {
	q := normalizedName(query)
	role, ok := lo.Find(Roles(agents), func(r *Role) bool {
		return strings.EqualFold(r.UUID, q) || normalizedName(r.DisplayName) == q
	})
	if !ok {
		return nil, fmt.Errorf("role %q: %w", query, ErrNotFound)
	}
	return role, nil
}

// DefaultMap is the first map, used when none was chosen.
func DefaultMap(maps []*Map) (*Map, bool) {
	if len(maps) == 0 {
		return nil, false
	}
	return maps[0], true
}

// FindAgent resolves query as a uuid, an exact name or the closest name.
func FindAgent(agents []*Agent, query string) (*Agent, error) {
	return find(agents, query, "agent", func(a *Agent) (string, string) { return a.UUID, a.DisplayName })
}

// FindMap resolves query as a uuid, an exact name or the closest name.
func FindMap(maps []*Map, query string) (*Map, error) {
	return find(maps, query, "map", func(m *Map) (string, string) { return m.UUID, m.DisplayName })
}

func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func find[T any](items []T, query, kind string, fields func(T) (id, name string)) (T, error) {
	var zero T
	q := normalizedName(query)
	if q == "" {
		return zero, fmt.Errorf("empty %s name: %w", kind, ErrNotFound)
	}

	if _, err := uuid.Parse(q); err == nil {
		item, ok := lo.Find(items, func(item T) bool {
			id, _ := fields(item)
			return strings.EqualFold(id, q)
		})
		if !ok {
			return zero, fmt.Errorf("%s %s: %w", kind, query, ErrNotFound)
		}
		return item, nil
	}

	if item, ok := lo.Find(items, func(item T) bool {
		_, name := fields(item)
		return normalizedName(name) == q
	}); ok {
		return item, nil
	}

	if len(items) == 0 {
		return zero, fmt.Errorf("%s %q: %w", kind, query, ErrNotFound)
	}

	closest := lo.MinBy(items, func(a, b T) bool {
		_, nameA := fields(a)
		_, nameB := fields(b)
		return levenshtein.Distance(q, normalizedName(nameA)) < levenshtein.Distance(q, normalizedName(nameB))
	})

	_, name := fields(closest)
	if levenshtein.Distance(q, normalizedName(name)) > maxDistance(q) {
		return zero, fmt.Errorf("%s %q: %w", kind, query, ErrNotFound)
	}
	return closest, nil
}

// maxDistance is how many edits a misspelled name may be away from a match.
func maxDistance(q string) int {
	return lo.Clamp(len([]rune(q))/3, 1, 3)
}
