/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisspair/director"
	"github.com/mikeb26/swisspair/internal"
)

const webCacheTTL = 15 * time.Minute

// ClubWebStore reads roster and result history by scraping a club website's
// public tournament pages. It is read-only; SavePairings always fails with
// director.ErrReadOnlyStore.
type ClubWebStore struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewClubWebStore builds a store scraping pages under baseURL, e.g.
// https://boylstonchess.org. Responses are cached per the web cache
// configuration. A nil logger disables logging.
func NewClubWebStore(ctx context.Context, baseURL string,
	log *zap.Logger) *ClubWebStore {

	if log == nil {
		log = zap.NewNop()
	}

	return &ClubWebStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  internal.NewCachedHttpClient(ctx, webCacheTTL, log),
		log:     log,
	}
}

func (s *ClubWebStore) fetchDoc(ctx context.Context,
	url string) (*goquery.Document, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("store: build request for %v: %w", url, err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store: fetch %v: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store: fetch %v: http status %v", url,
			resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// FetchRoster scrapes the event's entries page. The entries table carries
// one row per entrant: pairing number, name, rating, and member id. Rows
// annotated withdrawn or requesting round byes populate Status and
// IntentionalByeRounds.
func (s *ClubWebStore) FetchRoster(ctx context.Context, tournamentID int64,
	section string) ([]director.PlayerRow, error) {

	url := fmt.Sprintf("%s/tournament/entries/%d", s.baseURL, tournamentID)
	doc, err := s.fetchDoc(ctx, url)
	if err != nil {
		return nil, err
	}

	if when, err := internal.ParseDateOrZero(strings.TrimSpace(
		doc.Find("div#event time").First().Text())); err == nil && !when.IsZero() {
		s.log.Debug("store: entries page", zap.Int64("event", tournamentID),
			zap.Time("eventDate", when))
	}

	var roster []director.PlayerRow
	doc.Find("table#members tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		id, err := strconv.Atoi(strings.TrimSpace(cells.Eq(0).Text()))
		if err != nil || id <= 0 {
			return
		}
		name := internal.NormalizeName(strings.TrimSpace(cells.Eq(1).Text()))
		rating := 0
		if r, err := strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text())); err == nil {
			rating = r
		}

		p := director.PlayerRow{
			ID:      id,
			Name:    name,
			Rating:  rating,
			Section: section,
		}
		if cells.Length() > 3 {
			note := strings.TrimSpace(cells.Eq(3).Text())
			if strings.EqualFold(note, "withdrawn") {
				p.Status = "withdrawn"
			} else if byes := parseByeNote(note); byes != "" {
				p.IntentionalByeRounds = byes
			}
		}
		roster = append(roster, p)
	})

	if len(roster) == 0 {
		return nil, fmt.Errorf("store: entries page for event %d had no players",
			tournamentID)
	}

	return roster, nil
}

// parseByeNote extracts requested bye rounds from a notes cell like
// "bye rds 2,4" or "Bye: 3". Returns a comma-separated round list or "".
func parseByeNote(note string) string {
	lower := strings.ToLower(note)
	if !strings.Contains(lower, "bye") {
		return ""
	}

	var rounds []string
	for _, f := range strings.FieldsFunc(note, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == ';'
	}) {
		if n, err := strconv.Atoi(f); err == nil && n > 0 {
			rounds = append(rounds, strconv.Itoa(n))
		}
	}

	return strings.Join(rounds, ",")
}

// FetchPairings scrapes each completed round's results page concurrently
// and flattens the boards into history rows ordered by round then board.
func (s *ClubWebStore) FetchPairings(ctx context.Context, tournamentID int64,
	section string, beforeRound int) ([]director.PairingRow, error) {

	perRound := make([][]director.PairingRow, beforeRound)
	g, gctx := errgroup.WithContext(ctx)
	for round := 1; round < beforeRound; round++ {
		g.Go(func() error {
			url := fmt.Sprintf("%s/files/event/%d/results/%d", s.baseURL,
				tournamentID, round)
			doc, err := s.fetchDoc(gctx, url)
			if err != nil {
				return err
			}
			rows, err := parseResultRows(doc, section, round)
			if err != nil {
				return err
			}
			perRound[round] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var history []director.PairingRow
	for round := 1; round < beforeRound; round++ {
		history = append(history, perRound[round]...)
	}
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Round != history[j].Round {
			return history[i].Round < history[j].Round
		}
		return history[i].Board < history[j].Board
	})

	return history, nil
}

// parseResultRows extracts one round's boards from a results table. Cells
// follow the pairings page layout: board, white result, white, black
// result, black.
func parseResultRows(doc *goquery.Document, section string,
	round int) ([]director.PairingRow, error) {

	var rows []director.PairingRow
	var parseErr error
	doc.Find("div#pairings table tr, div#results table tr").Each(
		func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 5 {
				return
			}
			boardText := strings.TrimSpace(cells.Eq(0).Text())
			if strings.EqualFold(boardText, "Bd") {
				return
			}
			board, err := strconv.Atoi(boardText)
			if err != nil {
				board = 0
			}
			whiteRes := strings.TrimSpace(cells.Eq(1).Text())
			whiteID := parsePlayerID(cells.Eq(2).Text())
			blackRes := strings.TrimSpace(cells.Eq(3).Text())
			blackCell := strings.TrimSpace(cells.Eq(4).Text())

			if whiteID == 0 {
				return
			}

			pr := director.PairingRow{
				WhiteID: whiteID,
				Round:   round,
				Section: section,
				Board:   board,
			}
			if strings.EqualFold(blackCell, "BYE") {
				pr.ByeType = byeTypeFromCell(whiteRes)
			} else {
				blackID := parsePlayerID(blackCell)
				if blackID == 0 {
					return
				}
				pr.BlackID = &blackID
				pr.Result, err = resultFromCells(whiteRes, blackRes)
				if err != nil {
					parseErr = fmt.Errorf("store: round %d board %d: %w",
						round, board, err)
					return
				}
			}
			rows = append(rows, pr)
		})
	if parseErr != nil {
		return nil, parseErr
	}

	return rows, nil
}

// parsePlayerID extracts the leading pairing number from a cell like
// "12 John Doe (2250 3.0)".
func parsePlayerID(text string) int {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}

	return id
}

// resultFromCells maps the per-player result cells into a stored result
// code. Empty cells mean the game is unreported.
func resultFromCells(whiteRes, blackRes string) (string, error) {
	switch {
	case whiteRes == "" && blackRes == "":
		return "", nil
	case whiteRes == "1" && blackRes == "0":
		return "1-0", nil
	case whiteRes == "0" && blackRes == "1":
		return "0-1", nil
	case strings.Contains(whiteRes, "½") && strings.Contains(blackRes, "½"):
		return "1/2-1/2", nil
	case whiteRes == "+" && blackRes == "-":
		return "1-0F", nil
	case whiteRes == "-" && blackRes == "+":
		return "0-1F", nil
	}

	return "", fmt.Errorf("store: unrecognized result cells %q/%q", whiteRes,
		blackRes)
}

// byeTypeFromCell maps a bye row's points cell onto a stored bye type.
func byeTypeFromCell(points string) string {
	switch {
	case points == "1":
		return "bye"
	case strings.Contains(points, "½"):
		return "half_point_bye"
	default:
		return "zero_point_bye"
	}
}

// SavePairings is unsupported; the club website is not writable.
func (s *ClubWebStore) SavePairings(ctx context.Context, tournamentID int64,
	round int, records []director.PairingRecord) error {

	return director.ErrReadOnlyStore
}
