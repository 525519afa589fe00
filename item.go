package main

import (
	"fmt"
	"math"
)

// Item is a purchasable base material. Price is the bazaar instant-buy
// price at fetch time; StackSize is carried for display purposes only.
type Item struct {
	ItemID    string
	Price     float64
	StackSize int
}

// ItemDef declares a bazaar product the calculator needs a price for.
type ItemDef struct {
	ID        string
	StackSize int
}

// buildItems resolves every declared item against a fetched price snapshot.
// A declared item without a price is a configuration error: a missing
// product must abort startup rather than default to a free ingredient.
func buildItems(defs map[string]ItemDef, prices map[string]float64) (map[string]*Item, error) {
	items := make(map[string]*Item, len(defs))
	for name, def := range defs {
		price, ok := prices[def.ID]
		if !ok {
			return nil, fmt.Errorf("no bazaar price for required item %q", def.ID)
		}
		items[name] = &Item{
			ItemID:    def.ID,
			Price:     math.Round(price*100) / 100,
			StackSize: def.StackSize,
		}
	}
	return items, nil
}
