package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
)

func promptInt(in *bufio.Reader, label string) (int, error) {
	fmt.Printf("%s\n>>> ", label)
	line, err := in.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return 0, fmt.Errorf("reading input: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q doesn't seem to be a number", strings.TrimSpace(line))
	}
	return n, nil
}

// fuelPerMinion guards the ratio against a zero minion count instead of
// letting the division print Inf.
func fuelPerMinion(fuelAmount, minionCount int) (float64, error) {
	if minionCount <= 0 {
		return 0, fmt.Errorf("minion count must be positive, got %d", minionCount)
	}
	return float64(fuelAmount) / float64(minionCount), nil
}

func main() {
	configPath := flag.String("config", "config.yml", "path to YAML config file")
	flag.Parse()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt ...")
		os.Exit(1)
	}()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	client := NewBazaarClient(cfg)
	prices, err := client.FetchPrices(context.Background(), itemDefs)
	if err != nil {
		log.Fatalf("Error fetching bazaar prices: %v", err)
	}
	items, err := buildItems(itemDefs, prices)
	if err != nil {
		log.Fatalf("Error building items: %v", err)
	}
	fuel, err := buildFuelTree(items)
	if err != nil {
		log.Fatalf("Error building recipes: %v", err)
	}

	in := bufio.NewReader(os.Stdin)
	fuelAmount, err := promptInt(in, "Amount of T3 fuel to craft")
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	minionCount, err := promptInt(in, "Number of inferno minions")
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	perMinion, err := fuelPerMinion(fuelAmount, minionCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}

	unitCost := fuel.UnitCost()
	totalCost := unitCost * float64(fuelAmount)

	fmt.Printf("\n%s coins total at %s each\n", formatNumber(totalCost), formatNumber(unitCost))
	fmt.Printf("Total of %.0f fuel per minion\n", perMinion)

	printRawMaterials(fuel.RawMaterials(float64(fuelAmount)))
	printFormattedTree(fuel, float64(fuelAmount))
}
