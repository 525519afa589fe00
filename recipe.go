package main

import "fmt"

// Ingredient points at either a priced base item or another recipe, never
// both, together with the amount consumed per craft of the owning recipe.
type Ingredient struct {
	Item   *Item
	Recipe *Recipe
	Amount float64
}

// Recipe is a crafting rule: one execution consumes every ingredient once
// and yields OutputAmount units. Recipes are wired once at startup and not
// mutated afterwards.
type Recipe struct {
	Name         string
	Ingredients  map[string]Ingredient
	OutputAmount float64
}

// NewRecipe validates and builds a recipe. A zero output amount means the
// usual single-unit craft; negative amounts and ingredients that name both
// (or neither) target are rejected, as is any recipe that can reach itself
// through its sub-recipes.
func NewRecipe(name string, ingredients map[string]Ingredient, outputAmount float64) (*Recipe, error) {
	if outputAmount < 0 {
		return nil, fmt.Errorf("recipe %q: negative output amount %v", name, outputAmount)
	}
	if outputAmount == 0 {
		outputAmount = 1
	}
	for key, ing := range ingredients {
		if ing.Amount <= 0 {
			return nil, fmt.Errorf("recipe %q: ingredient %q has non-positive amount %v", name, key, ing.Amount)
		}
		if (ing.Item == nil) == (ing.Recipe == nil) {
			return nil, fmt.Errorf("recipe %q: ingredient %q must reference exactly one of item or recipe", name, key)
		}
	}
	r := &Recipe{Name: name, Ingredients: ingredients, OutputAmount: outputAmount}
	if err := checkAcyclic(r, nil); err != nil {
		return nil, err
	}
	return r, nil
}

// checkAcyclic walks the sub-recipe graph and rejects any recipe already on
// the current path. The hand-wired topology constructs recipes in dependency
// order, so this can only trip if the wiring is edited into a loop.
func checkAcyclic(r *Recipe, path []*Recipe) error {
	for _, seen := range path {
		if seen == r {
			return fmt.Errorf("recipe %q: cycle detected through %q", path[0].Name, r.Name)
		}
	}
	path = append(path, r)
	for _, ing := range r.Ingredients {
		if ing.Recipe == nil {
			continue
		}
		if err := checkAcyclic(ing.Recipe, path); err != nil {
			return err
		}
	}
	return nil
}

// UnitCost returns the coins needed to produce one unit of output, with
// nested recipes amortized over their own batch sizes. No rounding happens
// here; rounding early would compound across levels.
func (r *Recipe) UnitCost() float64 {
	total := 0.0
	for _, ing := range r.Ingredients {
		if ing.Recipe != nil {
			total += ing.Recipe.UnitCost() * ing.Amount
		} else {
			total += ing.Item.Price * ing.Amount
		}
	}
	return total / r.OutputAmount
}

// RawMaterials returns, per base item id, the total quantity needed to
// produce target units of output. A base item consumed by several
// sub-recipes has its contributions summed across all paths. Values are
// exact; display rounding is the caller's concern.
func (r *Recipe) RawMaterials(target float64) map[string]float64 {
	totals := make(map[string]float64)
	r.accumulateRaw(target, totals)
	return totals
}

func (r *Recipe) accumulateRaw(target float64, totals map[string]float64) {
	multiplier := target / r.OutputAmount
	for _, ing := range r.Ingredients {
		scaled := ing.Amount * multiplier
		if ing.Recipe != nil {
			ing.Recipe.accumulateRaw(scaled, totals)
		} else {
			totals[ing.Item.ItemID] += scaled
		}
	}
}
