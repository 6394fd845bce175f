package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Key: 0, Name: "Blue Shirt", Fields: []string{"Blue Shirt", "A cotton shirt", "Cairo Bazaar"}, Price: 19.99, Quantity: 10, Rating: 4.5},
		{Key: 1, Name: "Amulet", Fields: []string{"Amulet", "Replica scarab amulet", "Giza Gifts"}, Price: 9.5, Quantity: 3, Rating: 2.0},
		{Key: 2, Name: "Papyrus Print", Fields: []string{"Papyrus Print", "Hand painted papyrus", "Luxor Crafts"}, Price: 35, Quantity: 0, Rating: 5.0},
		{Key: 3, Name: "T-SHIRT deluxe", Fields: []string{"T-SHIRT deluxe", "Premium tee", "Cairo Bazaar"}, Price: 45, Quantity: 7, Rating: 3.5},
	}
}

func TestApply_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		wantKeys []int
	}{
		{
			name:     "matches name",
			search:   "shirt",
			wantKeys: []int{0, 3},
		},
		{
			name:     "matches description",
			search:   "PAPYRUS",
			wantKeys: []int{2},
		},
		{
			name:     "matches seller",
			search:   "giza",
			wantKeys: []int{1},
		},
		{
			name:     "no match",
			search:   "sphinx",
			wantKeys: []int{},
		},
		{
			name:     "empty search matches everything",
			search:   "",
			wantKeys: []int{0, 1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(testItems(), Criteria{Search: tt.search})

			keys := make([]int, 0, len(got))
			for _, it := range got {
				keys = append(keys, it.Key)
			}

			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestApply_NumericFilters(t *testing.T) {
	t.Run("price upper bound", func(t *testing.T) {
		got := Apply(testItems(), Criteria{FilterBy: FilterPrice, Value: 20})

		require.Len(t, got, 2)
		for _, it := range got {
			assert.LessOrEqual(t, it.Price, 20.0)
		}
	})

	t.Run("quantity lower bound", func(t *testing.T) {
		got := Apply(testItems(), Criteria{FilterBy: FilterQuantity, Value: 5})

		require.Len(t, got, 2)
		for _, it := range got {
			assert.GreaterOrEqual(t, it.Quantity, 5)
		}
	})

	t.Run("rating lower bound", func(t *testing.T) {
		got := Apply(testItems(), Criteria{FilterBy: FilterRating, Value: 4})

		require.Len(t, got, 2)
		for _, it := range got {
			assert.GreaterOrEqual(t, it.Rating, 4.0)
		}
	})
}

func TestApply_SearchCombinedWithPriceBound(t *testing.T) {
	got := Apply(testItems(), Criteria{Search: "shirt", FilterBy: FilterPrice, Value: 20})

	require.Len(t, got, 1)
	assert.Equal(t, "Blue Shirt", got[0].Name)
	assert.LessOrEqual(t, got[0].Price, 20.0)
}

func TestApply_Sorting(t *testing.T) {
	t.Run("rating descending", func(t *testing.T) {
		items := []Item{
			{Key: 0, Rating: 4.5},
			{Key: 1, Rating: 2.0},
			{Key: 2, Rating: 5.0},
		}

		got := Apply(items, Criteria{SortBy: SortRating})

		require.Len(t, got, 3)
		assert.Equal(t, []float64{5.0, 4.5, 2.0}, []float64{got[0].Rating, got[1].Rating, got[2].Rating})
	})

	t.Run("name ascending", func(t *testing.T) {
		got := Apply(testItems(), Criteria{SortBy: SortName})

		require.Len(t, got, 4)
		assert.Equal(t, "Amulet", got[0].Name)
		assert.Equal(t, "Blue Shirt", got[1].Name)
		assert.Equal(t, "Papyrus Print", got[2].Name)
		assert.Equal(t, "T-SHIRT deluxe", got[3].Name)
	})

	t.Run("price ascending", func(t *testing.T) {
		got := Apply(testItems(), Criteria{SortBy: SortPrice})

		require.Len(t, got, 4)
		assert.Equal(t, 9.5, got[0].Price)
		assert.Equal(t, 45.0, got[3].Price)
	})
}

func TestParseKeys(t *testing.T) {
	assert.Equal(t, FilterPrice, ParseFilterKey("price"))
	assert.Equal(t, FilterQuantity, ParseFilterKey("quantity"))
	assert.Equal(t, FilterRating, ParseFilterKey("rating"))
	assert.Equal(t, FilterNone, ParseFilterKey("bogus"))

	assert.Equal(t, SortName, ParseSortKey("name"))
	assert.Equal(t, SortPrice, ParseSortKey("price"))
	assert.Equal(t, SortRating, ParseSortKey("rating"))
	assert.Equal(t, SortNone, ParseSortKey("bogus"))
}
