package tools

import "testing"

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := Default()

	m, err := reg.Resolve(Compatibility)
	if err != nil {
		t.Fatalf("resolve compatibility: %v", err)
	}
	if !m.NeedsPartner {
		t.Fatalf("compatibility must ask for partner data")
	}
	if m.Generation.Temperature != 0.8 || m.Generation.ThinkingBudget != 32768 {
		t.Fatalf("unexpected generation settings: %+v", m.Generation)
	}

	if _, err := reg.Resolve("tarot"); err == nil {
		t.Fatalf("expected error for unknown tool")
	}
}

func TestRegistrySearch(t *testing.T) {
	t.Parallel()

	reg := Default()

	all := reg.Search("")
	if len(all) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(all))
	}
	for _, g := range all {
		for _, m := range g.Modules {
			if m.ID == CosmicWeather {
				t.Fatalf("hidden module listed")
			}
		}
	}

	hits := reg.Search("  ZODIAC ")
	if len(hits) != 1 || hits[0].Category.ID != "eastern" || len(hits[0].Modules) != 1 {
		t.Fatalf("unexpected search result: %+v", hits)
	}
	if hits[0].Modules[0].ID != "chinese" {
		t.Fatalf("unexpected module: %s", hits[0].Modules[0].ID)
	}

	if got := reg.Search("no such tool"); len(got) != 0 {
		t.Fatalf("expected no groups, got %d", len(got))
	}
}

func TestRegisterReplacesWithoutDuplicatingOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.AddCategory(Category{ID: "c"})
	reg.Register(Module{ID: "a", Category: "c", Title: "First"})
	reg.Register(Module{ID: "a", Category: "c", Title: "Second"})

	if ids := reg.IDs(); len(ids) != 1 {
		t.Fatalf("expected a single id, got %v", ids)
	}
	groups := reg.Search("")
	if len(groups) != 1 || groups[0].Modules[0].Title != "Second" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}
