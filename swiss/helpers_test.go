/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// test fixtures shared by the package tests

func testPlayer(id, rating int) *Player {
	return &Player{
		ID:     id,
		Name:   "Player",
		Rating: rating,
	}
}

func playedMatch(opp int, color Color, outcome MatchScore) Match {
	return Match{
		OpponentID:            opp,
		Color:                 color,
		Outcome:               outcome,
		GameWasPlayed:         true,
		ParticipatedInPairing: true,
	}
}

func byeMatch(self int, outcome MatchScore) Match {
	return Match{
		OpponentID:            self,
		Outcome:               outcome,
		ParticipatedInPairing: true,
	}
}

func unpairedMatch(self int) Match {
	return Match{OpponentID: self, Outcome: ScoreLoss}
}

func testTournament(playedRounds, totalRounds int, players ...*Player) *Tournament {
	return &Tournament{
		PlayedRounds: playedRounds,
		TotalRounds:  totalRounds,
		Scoring:      DefaultScoring(),
		InitialColor: ColorWhite,
		Players:      players,
	}
}
