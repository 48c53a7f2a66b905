// genledger emits a random ledger CSV for soak and throughput runs
// against the payengine CLI.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
)

// Config holds the generator settings
var (
	outPath     string
	records     int
	clients     int
	workload    string
	disputeRate float64
	seed        int64
)

func init() {
	flag.StringVar(&outPath, "out", "-", "Output path, - for stdout")
	flag.IntVar(&records, "records", 100000, "Number of records to generate")
	flag.IntVar(&clients, "clients", 1000, "Number of distinct clients")
	flag.StringVar(&workload, "workload", "uniform", "Workload type: uniform | hotspot")
	flag.Float64Var(&disputeRate, "dispute-rate", 0.05, "Fraction of deposits that get disputed")
	flag.Int64Var(&seed, "seed", 42, "RNG seed, fixed for reproducible runs")
}

func main() {
	flag.Parse()
	log.Printf("Generating ledger: %s | records: %d | clients: %d", workload, records, clients)

	out := os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Unable to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	rng := rand.New(rand.NewSource(seed))
	w := csv.NewWriter(out)

	if err := w.Write([]string{"type", "client", "tx", "amount"}); err != nil {
		log.Fatalf("Write failed: %v", err)
	}

	// Deposits eligible for a later dispute, per client.
	openDeposits := make(map[int][]int)
	nextTx := 1

	for i := 0; i < records; i++ {
		client := pickClient(rng)

		var row []string
		switch {
		case rng.Float64() < disputeRate && len(openDeposits[client]) > 0:
			deposits := openDeposits[client]
			tx := deposits[rng.Intn(len(deposits))]
			row = []string{disputeAction(rng), strconv.Itoa(client), strconv.Itoa(tx), ""}
		case rng.Float64() < 0.3:
			amount := fmt.Sprintf("%d.%04d", rng.Intn(100), rng.Intn(10000))
			row = []string{"withdrawal", strconv.Itoa(client), strconv.Itoa(nextTx), amount}
			nextTx++
		default:
			amount := fmt.Sprintf("%d.%04d", 1+rng.Intn(500), rng.Intn(10000))
			row = []string{"deposit", strconv.Itoa(client), strconv.Itoa(nextTx), amount}
			openDeposits[client] = append(openDeposits[client], nextTx)
			nextTx++
		}

		if err := w.Write(row); err != nil {
			log.Fatalf("Write failed: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Flush failed: %v", err)
	}
	log.Printf("Done: %d records written", records)
}

func pickClient(rng *rand.Rand) int {
	if workload == "hotspot" {
		// Hotspot: 90% of traffic hits clients 1 & 2
		if rng.Float32() < 0.90 {
			return 1 + rng.Intn(2)
		}
	}
	return 1 + rng.Intn(clients)
}

func disputeAction(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "dispute"
	case 1:
		return "resolve"
	default:
		return "chargeback"
	}
}
