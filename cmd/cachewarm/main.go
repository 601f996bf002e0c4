/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mikeb26/swisspair/config"
	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/store"
)

// this program exists just to seed the web page cache for club site events

func main() {
	fs := flag.NewFlagSet("cachewarm", flag.ExitOnError)
	rounds := fs.Int("rounds", 0, "Number of completed rounds to warm per event")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cachewarm [--rounds <n>] <eventId>...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil || cfg.ClubWebBaseURL == "" {
		fmt.Fprintf(os.Stderr, "cachewarm requires SWISSPAIR_CLUBWEB_URL\n")
		os.Exit(1)
	}

	ctx := context.Background()
	log := internal.NewLogger()
	defer log.Sync()
	s := store.NewClubWebStore(ctx, cfg.ClubWebBaseURL, log)

	for _, arg := range fs.Args() {
		eventId, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad event id %q\n", arg)
			continue
		}

		// best effort
		if _, err := s.FetchRoster(ctx, eventId, cfg.Section); err == nil {
			fmt.Printf("seeded entries for event %v\n", eventId)
		}
		time.Sleep(2 * time.Second) // avoid pegging the club site
		if *rounds > 0 {
			if _, err := s.FetchPairings(ctx, eventId, cfg.Section,
				*rounds+1); err == nil {
				fmt.Printf("seeded %v rounds for event %v\n", *rounds, eventId)
			}
			time.Sleep(2 * time.Second)
		}
	}
}
