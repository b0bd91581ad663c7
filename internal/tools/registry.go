package tools

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups related modules on the tools page.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Generation fixes the sampling settings a module sends upstream.
type Generation struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int32   `json:"maxOutputTokens,omitempty"`
	ThinkingBudget  int32   `json:"thinkingBudget,omitempty"`
}

// Module describes a single tool.
type Module struct {
	ID            string     `json:"id"`
	Category      string     `json:"category"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	NeedsPartner  bool       `json:"needsPartner"`
	UsesHoroscope bool       `json:"usesHoroscopeOptions"`
	Hidden        bool       `json:"-"`
	Generation    Generation `json:"-"`
}

// Group is a category together with its visible modules.
type Group struct {
	Category Category `json:"category"`
	Modules  []Module `json:"tools"`
}

// Registry keeps a mapping from module ids to their definitions.
type Registry struct {
	categories []Category
	modules    map[string]Module
	order      []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: map[string]Module{}}
}

// AddCategory appends a category; display order follows insertion.
func (r *Registry) AddCategory(cat Category) {
	r.categories = append(r.categories, cat)
}

// Register adds or replaces a module.
func (r *Registry) Register(m Module) {
	if r.modules == nil {
		r.modules = map[string]Module{}
	}
	if _, ok := r.modules[m.ID]; !ok {
		r.order = append(r.order, m.ID)
	}
	r.modules[m.ID] = m
}

// Resolve returns a module by id or an error if it is absent.
func (r *Registry) Resolve(id string) (Module, error) {
	if m, ok := r.modules[id]; ok {
		return m, nil
	}
	return Module{}, fmt.Errorf("tool %s is not registered", id)
}

// Search lists visible modules grouped by category, keeping modules whose
// title contains the query (case-insensitive). Empty groups are dropped.
func (r *Registry) Search(query string) []Group {
	query = strings.ToLower(strings.TrimSpace(query))

	byCategory := map[string][]Module{}
	for _, id := range r.order {
		m := r.modules[id]
		if m.Hidden {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		byCategory[m.Category] = append(byCategory[m.Category], m)
	}

	groups := make([]Group, 0, len(r.categories))
	for _, cat := range r.categories {
		mods := byCategory[cat.ID]
		if len(mods) == 0 {
			continue
		}
		groups = append(groups, Group{Category: cat, Modules: mods})
	}
	return groups
}

// IDs returns all registered module ids in sorted order.
func (r *Registry) IDs() []string {
	ids := append([]string(nil), r.order...)
	sort.Strings(ids)
	return ids
}
