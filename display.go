package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

// displayQuantity rounds a raw-material quantity for display: two decimals
// first to absorb float noise, then ceiling, since items are bought whole.
// Only displayed values are rounded; computed totals stay exact.
func displayQuantity(q float64) float64 {
	return math.Ceil(math.Round(q*100) / 100)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func printRawMaterials(totals map[string]float64) {
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("\n--- Raw Materials Needed ---")
	for _, id := range ids {
		fmt.Printf("- %s x%.0f\n", id, displayQuantity(totals[id]))
	}
}

// printRecipeTree renders the crafting chain with per-level quantities
// already scaled to the requested output.
func printRecipeTree(r *Recipe, target float64, level int) {
	indent := strings.Repeat("  ", level)
	fmt.Printf("%s- %s x%s, %s each\n", indent, r.Name, formatQuantity(target), formatNumber(r.UnitCost()))

	multiplier := target / r.OutputAmount
	keys := make([]string, 0, len(r.Ingredients))
	for key := range r.Ingredients {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ing := r.Ingredients[key]
		scaled := ing.Amount * multiplier
		if ing.Recipe != nil {
			printRecipeTree(ing.Recipe, scaled, level+1)
		} else {
			fmt.Printf("%s  - %s x%s, %s each\n", indent, ing.Item.ItemID, formatQuantity(scaled), formatNumber(ing.Item.Price))
		}
	}
}

func printFormattedTree(r *Recipe, target float64) {
	fmt.Println("\n--- Recipe Tree ---")
	printRecipeTree(r, target, 0)
	fmt.Println("--- End of Tree ---")
}
