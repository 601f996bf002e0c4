/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikeb26/swisspair/config"
	"github.com/mikeb26/swisspair/director"
	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/store"
	"github.com/mikeb26/swisspair/swiss"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"pair":      handlePair,
	"standings": handleStandings,
	"trf":       handleTrf,
}

var log *zap.Logger

func main() {
	ctx := context.Background()
	log = internal.NewLogger()
	defer log.Sync()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// newDirector wires config, store, and strategy together. The returned
// cleanup closes the store when it holds a connection.
func newDirector(ctx context.Context) (*director.Director, director.Store,
	func(), string) {

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	var st director.Store
	cleanup := func() {}
	if cfg.DatabaseURL != "" {
		pg, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			fatal(err)
		}
		st = pg
		cleanup = func() { pg.Close() }
	} else {
		st = store.NewClubWebStore(ctx, cfg.ClubWebBaseURL, log)
	}

	d := director.New(st, swiss.NewStrategy(cfg.Strategy), cfg.Scoring,
		cfg.TotalRounds, log)

	return d, st, cleanup, cfg.Section
}

func handlePair(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)
	eventId := fs.Int64("event", 0, "Event id (required)")
	round := fs.Int("round", 0, "Round to pair (required)")
	save := fs.Bool("save", false, "Persist the generated round")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventId == 0 || *round == 0 {
		fs.Usage()
		os.Exit(1)
	}

	d, st, cleanup, section := newDirector(ctx)
	defer cleanup()

	t, err := d.LoadTournament(ctx, *eventId, section, *round)
	if err != nil {
		fatal(err)
	}
	// pair from the loaded snapshot so the printed table and the saved
	// records reflect the same store read
	records, err := d.PairSnapshot(t, section)
	if err != nil {
		fatal(err)
	}

	fmt.Print(director.BuildPairingsOutput(t, records, *round))

	if *save {
		if err := st.SavePairings(ctx, *eventId, *round, records); err != nil {
			fatal(err)
		}
		fmt.Printf("Round %v saved.\n", *round)
	}
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	eventId := fs.Int64("event", 0, "Event id (required)")
	afterRound := fs.Int("round", 0, "Standings after this round (required)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventId == 0 || *afterRound == 0 {
		fs.Usage()
		os.Exit(1)
	}

	d, _, cleanup, section := newDirector(ctx)
	defer cleanup()

	t, err := d.LoadTournament(ctx, *eventId, section, *afterRound+1)
	if err != nil {
		fatal(err)
	}

	fmt.Print(director.BuildStandingsOutput(t))
}

func handleTrf(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("trf", flag.ExitOnError)
	eventId := fs.Int64("event", 0, "Event id (required)")
	round := fs.Int("round", 0, "Round being paired (required)")
	seed := fs.String("seed", "", "Free-text seed line for the 012 record")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventId == 0 || *round == 0 {
		fs.Usage()
		os.Exit(1)
	}

	d, _, cleanup, section := newDirector(ctx)
	defer cleanup()

	out, err := d.RenderTRF(ctx, *eventId, section, *round, *seed)
	if err != nil {
		fatal(err)
	}

	fmt.Print(out)
}

func fatal(err error) {
	log.Sync()
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
