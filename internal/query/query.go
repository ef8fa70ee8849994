// Package query computes the visible subset of the store for rendering.
//
// ComputeVisible is a pure projection: identical inputs always yield
// identical outputs, and no state is held between calls.
package query

import (
	"strings"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/store"
)

// Filter is the active category gate: All, Disasters, or one resource
// category's display label.
type Filter string

const (
	FilterAll       Filter = "All"
	FilterDisasters Filter = "Disasters"
)

// Valid reports whether f is All, Disasters, or a known resource category.
func (f Filter) Valid() bool {
	if f == FilterAll || f == FilterDisasters {
		return true
	}
	return domain.ResourceCategory(f).Valid()
}

// category returns the specific resource category the filter names, if any.
func (f Filter) category() (domain.ResourceCategory, bool) {
	if f == FilterAll || f == FilterDisasters {
		return "", false
	}
	return domain.ResourceCategory(f), true
}

// Visible is the filtered projection handed to the reconciler.
type Visible struct {
	Reports   []domain.Report     `json:"reports"`
	Resources []domain.Resource   `json:"resources"`
	Zones     []domain.HazardZone `json:"zones"`
}

// ComputeVisible applies the category gate and then the search term to each
// collection. A specific resource category excludes reports and zones
// entirely; All and Disasters pass them through. The search term is trimmed
// and matched case-insensitively against each entity's descriptive fields;
// an empty term matches everything.
func ComputeVisible(snap store.Snapshot, filter Filter, search string) Visible {
	term := strings.ToLower(strings.TrimSpace(search))
	category, categoryOnly := filter.category()

	v := Visible{
		Reports:   []domain.Report{},
		Resources: []domain.Resource{},
		Zones:     []domain.HazardZone{},
	}

	if !categoryOnly {
		for _, r := range snap.Reports {
			if matches(term, string(r.Type), r.Description, r.LocationText) {
				v.Reports = append(v.Reports, r)
			}
		}
		for _, z := range snap.Zones {
			if matches(term, z.Name, string(z.Type)) {
				v.Zones = append(v.Zones, z)
			}
		}
	}

	if filter != FilterDisasters {
		for _, res := range snap.Resources {
			if categoryOnly && res.Category != category {
				continue
			}
			if matches(term, res.Name, res.Address, string(res.Category)) {
				v.Resources = append(v.Resources, res)
			}
		}
	}

	return v
}

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
