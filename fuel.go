package main

import "fmt"

// itemDefs is the fixed set of bazaar products the fuel tree buys. Chili
// pepper is priced alongside the rest for reference even though the T3
// recipe itself never consumes it.
var itemDefs = map[string]ItemDef{
	"CHILI_PEPPER":              {ID: "CHILI_PEPPER", StackSize: 64},
	"VERY_CRUDE_GABAGOOL":       {ID: "VERY_CRUDE_GABAGOOL", StackSize: 64},
	"ENCHANTED_SULPHUR":         {ID: "ENCHANTED_SULPHUR", StackSize: 64},
	"ENCHANTED_COAL":            {ID: "ENCHANTED_COAL", StackSize: 64},
	"INFERNO_FUEL_BLOCK":        {ID: "INFERNO_FUEL_BLOCK", StackSize: 64},
	"CRUDE_GABAGOOL_DISTILLATE": {ID: "CRUDE_GABAGOOL_DISTILLATE", StackSize: 64},
}

// buildFuelTree wires the Inferno Minion Fuel (T3) crafting chain. The
// topology is static, so recipes are constructed leaves-first and referenced
// directly; there is no generic dependency resolver.
func buildFuelTree(items map[string]*Item) (*Recipe, error) {
	sulphuricCoal, err := NewRecipe("Sulphuric Coal", map[string]Ingredient{
		"ENCHANTED_COAL":    {Item: items["ENCHANTED_COAL"], Amount: 16},
		"ENCHANTED_SULPHUR": {Item: items["ENCHANTED_SULPHUR"], Amount: 1},
	}, 4)
	if err != nil {
		return nil, fmt.Errorf("building fuel tree: %w", err)
	}

	fuelGabagool, err := NewRecipe("Fuel Gabagool", map[string]Ingredient{
		"SULPHURIC_COAL":      {Recipe: sulphuricCoal, Amount: 8},
		"VERY_CRUDE_GABAGOOL": {Item: items["VERY_CRUDE_GABAGOOL"], Amount: 1},
	}, 8)
	if err != nil {
		return nil, fmt.Errorf("building fuel tree: %w", err)
	}

	heavyGabagool, err := NewRecipe("Heavy Gabagool", map[string]Ingredient{
		"SULPHURIC_COAL": {Recipe: sulphuricCoal, Amount: 1},
		"FUEL_GABAGOOL":  {Recipe: fuelGabagool, Amount: 24},
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("building fuel tree: %w", err)
	}

	hypergolicGabagool, err := NewRecipe("Hypergolic Gabagool", map[string]Ingredient{
		"SULPHURIC_COAL": {Recipe: sulphuricCoal, Amount: 1},
		"HEAVY_GABAGOOL": {Recipe: heavyGabagool, Amount: 12},
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("building fuel tree: %w", err)
	}

	t3Fuel, err := NewRecipe("Inferno Minion Fuel", map[string]Ingredient{
		"HYPERGOLIC_GABAGOOL":       {Recipe: hypergolicGabagool, Amount: 1},
		"INFERNO_FUEL_BLOCK":        {Item: items["INFERNO_FUEL_BLOCK"], Amount: 2},
		"CRUDE_GABAGOOL_DISTILLATE": {Item: items["CRUDE_GABAGOOL_DISTILLATE"], Amount: 6},
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("building fuel tree: %w", err)
	}
	return t3Fuel, nil
}
