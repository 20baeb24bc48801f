package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilter_TermMatchesNameOrDescription(t *testing.T) {
	products := Seed()

	byName := Filter(products, "jacket", "")
	assert.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	// "adventure" appears only in the bike's description.
	byDesc := Filter(products, "adventure", "")
	assert.Len(t, byDesc, 1)
	assert.Equal(t, "4", byDesc[0].ID)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	products := Seed()

	lower := Filter(products, "ceramic", "")
	upper := Filter(products, "CERAMIC", "")
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("case changed the result set:\n%s", diff)
	}
	assert.NotEmpty(t, lower)
}

func TestFilter_CategoryExactMatch(t *testing.T) {
	products := Seed()

	fashion := Filter(products, "", "Fashion")
	assert.Len(t, fashion, 1)
	assert.Equal(t, "Fashion", fashion[0].Category)

	// Category matching is exact, never substring.
	assert.Empty(t, Filter(products, "", "Fash"))
}

func TestFilter_TermAndCategoryCommute(t *testing.T) {
	products := append(Seed(),
		Product{ID: "5", Name: "Vintage Poster", Description: "Retro film poster", Category: "Collectibles"},
	)

	// Applying term then category must equal category then term.
	termFirst := Filter(Filter(products, "vintage", ""), "", "Collectibles")
	categoryFirst := Filter(Filter(products, "", "Collectibles"), "vintage", "")
	if diff := cmp.Diff(termFirst, categoryFirst); diff != "" {
		t.Errorf("filter order changed the result set:\n%s", diff)
	}
	assert.Len(t, termFirst, 2)
}

func TestFilter_EmptyTermAndCategoryKeepsEverything(t *testing.T) {
	products := Seed()
	assert.Len(t, Filter(products, "", ""), len(products))
	assert.Len(t, Filter(products, "  ", ""), len(products), "whitespace term is treated as empty")
}

func TestCategories_DistinctSorted(t *testing.T) {
	products := append(Seed(),
		Product{ID: "5", Name: "Scarf", Category: "Fashion"},
		Product{ID: "6", Name: "Mystery Box"}, // no category
	)

	got := Categories(products)
	want := []string{"Collectibles", "Fashion", "Home Goods", "Sports & Outdoors"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCategories_RecomputedAfterMutation(t *testing.T) {
	s := NewSeededStore()
	s.Remove("1") // the only Fashion listing

	got := Categories(s.List())
	assert.NotContains(t, got, "Fashion")

	_ = s.Add(Product{ID: "9", Name: "Beret", Category: "Fashion"})
	got = Categories(s.List())
	assert.Contains(t, got, "Fashion")
}
