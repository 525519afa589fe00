package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecipe(t *testing.T, name string, ingredients map[string]Ingredient, outputAmount float64) *Recipe {
	t.Helper()
	r, err := NewRecipe(name, ingredients, outputAmount)
	require.NoError(t, err)
	return r
}

func TestUnitCostLeafOnly(t *testing.T) {
	a := &Item{ItemID: "A", Price: 3.5, StackSize: 64}
	b := &Item{ItemID: "B", Price: 12, StackSize: 64}
	r := mustRecipe(t, "ab", map[string]Ingredient{
		"A": {Item: a, Amount: 2},
		"B": {Item: b, Amount: 5},
	}, 1)

	assert.InDelta(t, 2*3.5+5*12, r.UnitCost(), 1e-9)
}

func TestUnitCostAmortizesBatchSize(t *testing.T) {
	coal := &Item{ItemID: "ENCHANTED_COAL", Price: 2, StackSize: 64}
	sulphur := &Item{ItemID: "ENCHANTED_SULPHUR", Price: 100, StackSize: 64}
	sulphuricCoal := mustRecipe(t, "Sulphuric Coal", map[string]Ingredient{
		"ENCHANTED_COAL":    {Item: coal, Amount: 16},
		"ENCHANTED_SULPHUR": {Item: sulphur, Amount: 1},
	}, 4)

	// (16*2 + 1*100) / 4
	assert.InDelta(t, 33.0, sulphuricCoal.UnitCost(), 1e-9)
}

func TestUnitCostNested(t *testing.T) {
	a := &Item{ItemID: "A", Price: 2, StackSize: 64}
	inner := mustRecipe(t, "inner", map[string]Ingredient{
		"A": {Item: a, Amount: 6},
	}, 3)
	outer := mustRecipe(t, "outer", map[string]Ingredient{
		"INNER": {Recipe: inner, Amount: 5},
		"A":     {Item: a, Amount: 1},
	}, 2)

	// inner unit = 6*2/3 = 4; outer = (5*4 + 2) / 2 = 11
	assert.InDelta(t, 11.0, outer.UnitCost(), 1e-9)
}

func TestUnitCostEmptyIngredients(t *testing.T) {
	r := mustRecipe(t, "empty", map[string]Ingredient{}, 1)
	assert.Equal(t, 0.0, r.UnitCost())
}

func TestRawMaterialsScenario(t *testing.T) {
	coal := &Item{ItemID: "ENCHANTED_COAL", Price: 2, StackSize: 64}
	sulphur := &Item{ItemID: "ENCHANTED_SULPHUR", Price: 100, StackSize: 64}
	sulphuricCoal := mustRecipe(t, "Sulphuric Coal", map[string]Ingredient{
		"ENCHANTED_COAL":    {Item: coal, Amount: 16},
		"ENCHANTED_SULPHUR": {Item: sulphur, Amount: 1},
	}, 4)

	totals := sulphuricCoal.RawMaterials(8)
	require.Len(t, totals, 2)
	assert.InDelta(t, 32.0, totals["ENCHANTED_COAL"], 1e-9)
	assert.InDelta(t, 2.0, totals["ENCHANTED_SULPHUR"], 1e-9)
}

func TestRawMaterialsScaleLinearly(t *testing.T) {
	a := &Item{ItemID: "A", Price: 1, StackSize: 64}
	b := &Item{ItemID: "B", Price: 1, StackSize: 64}
	inner := mustRecipe(t, "inner", map[string]Ingredient{
		"A": {Item: a, Amount: 7},
		"B": {Item: b, Amount: 2},
	}, 3)
	outer := mustRecipe(t, "outer", map[string]Ingredient{
		"INNER": {Recipe: inner, Amount: 5},
		"B":     {Item: b, Amount: 1},
	}, 2)

	base := outer.RawMaterials(3)
	scaled := outer.RawMaterials(3 * 7)
	require.Equal(t, len(base), len(scaled))
	for id, qty := range base {
		assert.InDelta(t, qty*7, scaled[id], 1e-9, "leaf %s", id)
	}
}

func TestRawMaterialsAggregateAcrossPaths(t *testing.T) {
	shared := &Item{ItemID: "SHARED", Price: 1, StackSize: 64}
	inner := mustRecipe(t, "inner", map[string]Ingredient{
		"SHARED": {Item: shared, Amount: 3},
	}, 1)
	// SHARED is consumed directly and through the sub-recipe; the totals
	// must sum, not overwrite.
	outer := mustRecipe(t, "outer", map[string]Ingredient{
		"INNER":  {Recipe: inner, Amount: 2},
		"SHARED": {Item: shared, Amount: 4},
	}, 1)

	totals := outer.RawMaterials(1)
	assert.InDelta(t, 2*3+4, totals["SHARED"], 1e-9)
}

func TestRawMaterialsFreshAccumulatorPerCall(t *testing.T) {
	a := &Item{ItemID: "A", Price: 1, StackSize: 64}
	r := mustRecipe(t, "r", map[string]Ingredient{
		"A": {Item: a, Amount: 2},
	}, 1)

	first := r.RawMaterials(5)
	second := r.RawMaterials(5)
	assert.InDelta(t, 10.0, first["A"], 1e-9)
	assert.InDelta(t, 10.0, second["A"], 1e-9)
}

func TestNewRecipeRejectsBadIngredients(t *testing.T) {
	a := &Item{ItemID: "A", Price: 1, StackSize: 64}

	_, err := NewRecipe("r", map[string]Ingredient{
		"A": {Item: a, Amount: 0},
	}, 1)
	assert.ErrorContains(t, err, "non-positive amount")

	_, err = NewRecipe("r", map[string]Ingredient{
		"A": {Amount: 1},
	}, 1)
	assert.ErrorContains(t, err, "exactly one")

	inner := mustRecipe(t, "inner", map[string]Ingredient{}, 1)
	_, err = NewRecipe("r", map[string]Ingredient{
		"A": {Item: a, Recipe: inner, Amount: 1},
	}, 1)
	assert.ErrorContains(t, err, "exactly one")
}

func TestNewRecipeOutputAmount(t *testing.T) {
	_, err := NewRecipe("r", map[string]Ingredient{}, -2)
	assert.ErrorContains(t, err, "negative output amount")

	r := mustRecipe(t, "r", map[string]Ingredient{}, 0)
	assert.Equal(t, 1.0, r.OutputAmount)
}

func TestNewRecipeRejectsCycle(t *testing.T) {
	a := &Item{ItemID: "A", Price: 1, StackSize: 64}
	first := mustRecipe(t, "first", map[string]Ingredient{
		"A": {Item: a, Amount: 1},
	}, 1)
	second := mustRecipe(t, "second", map[string]Ingredient{
		"FIRST": {Recipe: first, Amount: 1},
	}, 1)

	// Close the loop behind the constructor's back; the next construction
	// that reaches it must notice.
	first.Ingredients["SECOND"] = Ingredient{Recipe: second, Amount: 1}

	_, err := NewRecipe("third", map[string]Ingredient{
		"SECOND": {Recipe: second, Amount: 1},
	}, 1)
	assert.ErrorContains(t, err, "cycle detected")
}
