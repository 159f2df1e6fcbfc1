package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"mock-generator/internal/match"
)

func ExampleSuggest() {
	fields := []string{"ID", "Status", "Items", "Note", "CreatedAt"}

	fmt.Println(match.Suggest("Staus", fields))
	fmt.Println(match.Suggest("created_at", fields))
	fmt.Println(match.Suggest("Weight", fields))
	// Output:
	// [Status]
	// [CreatedAt]
	// []
}

func TestRank(t *testing.T) {
	t.Parallel()

	ranked := match.Rank("Nam", []string{"Note", "Name", "Names"})

	assert.Equal(t, []string{"Name", "Names", "Note"}, ranked.Names())
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
}

func TestSuggestCapsResults(t *testing.T) {
	t.Parallel()

	known := []string{"Item1", "Item2", "Item3", "Item4", "Item5"}

	assert.Len(t, match.Suggest("Item", known), match.DefaultMaxSuggestions)
	assert.Empty(t, match.Suggest("Zzz", nil))
}
