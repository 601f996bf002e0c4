/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// trfcheck parses a TRF16 file, reports rule violations found in the
// recorded rounds, and prints standings. With --emit it re-formats the
// parsed document, which is useful for normalizing hand-edited files.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/mikeb26/swisspair/director"
	"github.com/mikeb26/swisspair/swiss"
	"github.com/mikeb26/swisspair/trf"
)

func main() {
	fs := flag.NewFlagSet("trfcheck", flag.ExitOnError)
	emit := fs.Bool("emit", false, "Re-emit the parsed document instead of checking")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trfcheck [--emit] <file.trf>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	doc, err := trf.Parse(f)
	if err != nil {
		fatal(err)
	}

	if *emit {
		out, err := doc.Format()
		if err != nil {
			fatal(err)
		}
		fmt.Print(out)
		return
	}

	t := doc.Tournament
	fmt.Printf("Players: %v  Rounds: %v of %v\n\n", len(t.Players),
		t.PlayedRounds, t.TotalRounds)

	violations := checkHistory(t)
	if len(violations) == 0 {
		fmt.Printf("No violations found.\n\n")
	} else {
		for _, v := range violations {
			fmt.Println(v)
		}
		fmt.Println()
	}

	fmt.Print(director.BuildStandingsOutput(t))

	if len(violations) > 0 {
		os.Exit(2)
	}
}

// checkHistory scans the recorded rounds for players who met more than
// once over the board.
func checkHistory(t *swiss.Tournament) []string {
	var out []string

	for _, p := range t.Players {
		met := make(map[int][]int)
		for idx, m := range p.Matches {
			if !m.ParticipatedInPairing || m.IsBye(p.ID) {
				continue
			}
			met[m.OpponentID] = append(met[m.OpponentID], idx+1)
		}

		opps := make([]int, 0, len(met))
		for opp := range met {
			opps = append(opps, opp)
		}
		sort.Ints(opps)
		for _, opp := range opps {
			rounds := met[opp]
			// report each repeated pair once, from the lower id
			if len(rounds) > 1 && p.ID < opp {
				out = append(out, fmt.Sprintf("%v: players %v and %v met in rounds %v",
					trf.ViolationRepeatPairing, p.ID, opp, rounds))
			}
		}
	}

	return out
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
