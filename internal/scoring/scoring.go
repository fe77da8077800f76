// Package scoring computes the league standings. Everything here is a pure
// function of the persisted records, so a corrected result simply changes the
// next computation; nothing is cached or accumulated.
package scoring

import (
	"sort"
	"strings"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
)

type ScoreRecord struct {
	UserID          uint   `json:"user_id"`
	Name            string `json:"name"`
	WeeklyPoints    int    `json:"weekly_points"`
	ForesightPoints int    `json:"foresight_points"`
	TotalPoints     int    `json:"total_points"`
}

// Weekly point values.
const (
	starBakerPoints      = 5
	eliminationPoints    = 5
	technicalPoints      = 3
	handshakePoints      = 10
	conflictPenalty      = 5
	handshakeMissPenalty = 10
)

// Foresight weights decay linearly toward week 11, one past the last
// submission week, so a week-2 call is worth 9x a week-10 one.
const (
	decayAnchorWeek      = 11
	seasonWinnerMultiple = 10
	finalistMultiple     = 5
)

// match compares pick and result by name. Blank on either side never
// matches; a pick naming a since-deleted baker just scores nothing.
func match(pick, result string) bool {
	return pick != "" && result != "" && pick == result
}

// WeeklyPoints scores one user's picks against one week's results. Each line
// of the table is evaluated independently, so a single submission can earn
// and lose points at the same time. The two penalty lines catch internally
// contradictory picks (same baker for opposite extremes); a merely wrong
// guess costs nothing. Predicting "no handshake" when one happens is also
// free, while a false positive costs the full bonus.
func WeeklyPoints(picks league.WeeklyPicks, results league.WeeklyResults) int {
	points := 0

	if match(picks.StarBaker, results.StarBaker) {
		points += starBakerPoints
	}
	if match(picks.EliminatedBaker, results.EliminatedBaker) {
		points += eliminationPoints
	}
	if match(picks.TechnicalWinner, results.TechnicalWinner) {
		points += technicalPoints
	}
	if picks.HandshakePrediction && results.HandshakeGiven {
		points += handshakePoints
	}

	if match(picks.StarBaker, results.EliminatedBaker) {
		points -= conflictPenalty
	}
	if match(picks.EliminatedBaker, results.StarBaker) {
		points -= conflictPenalty
	}
	if picks.HandshakePrediction && !results.HandshakeGiven {
		points -= handshakeMissPenalty
	}

	return points
}

func foresightWeight(week int) int {
	weight := decayAnchorWeek - week
	if weight < 0 {
		weight = 0
	}
	return weight
}

// ForesightPoints scores the season-outcome picks logged in a given week
// against the final results. Earlier weeks weigh more; a nil final means the
// season is not decided yet and everything is 0. Finalist slots are checked
// against the result pair as a set, not positionally.
func ForesightPoints(picks league.WeeklyPicks, final *league.FinalResults, week int) int {
	if final == nil {
		return 0
	}

	weight := foresightWeight(week)
	points := 0

	if match(picks.SeasonWinner, final.SeasonWinner) {
		points += weight * seasonWinnerMultiple
	}
	if isFinalist(picks.FinalistA, final) {
		points += weight * finalistMultiple
	}
	if isFinalist(picks.FinalistB, final) {
		points += weight * finalistMultiple
	}

	return points
}

func isFinalist(pick string, final *league.FinalResults) bool {
	return match(pick, final.FinalistA) || match(pick, final.FinalistB)
}

// ComputeLeaderboard folds every user's picks into a score record. Weekly
// points only count for weeks with entered results; foresight points count
// for every week a pick exists, so sticking with the eventual winner all
// season stacks the weighted bonuses. Users without picks still appear with
// zeros. Ordering is total points descending, then name ascending.
func ComputeLeaderboard(users []user.User, allPicks []league.WeeklyPicks, weeklyResults []league.WeeklyResults, final *league.FinalResults) []ScoreRecord {
	resultsByWeek := make(map[int]league.WeeklyResults, len(weeklyResults))
	for _, r := range weeklyResults {
		resultsByWeek[r.Week] = r
	}

	picksByUser := make(map[uint][]league.WeeklyPicks)
	for _, p := range allPicks {
		if p.Week < 1 {
			// legacy rows with mangled week numbers are skipped, not scored
			continue
		}
		picksByUser[p.UserID] = append(picksByUser[p.UserID], p)
	}

	records := make([]ScoreRecord, 0, len(users))
	for _, u := range users {
		record := ScoreRecord{UserID: u.ID, Name: u.Name}
		for _, picks := range picksByUser[u.ID] {
			if results, ok := resultsByWeek[picks.Week]; ok {
				record.WeeklyPoints += WeeklyPoints(picks, results)
			}
			record.ForesightPoints += ForesightPoints(picks, final, picks.Week)
		}
		record.TotalPoints = record.WeeklyPoints + record.ForesightPoints
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].TotalPoints != records[j].TotalPoints {
			return records[i].TotalPoints > records[j].TotalPoints
		}
		return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
	})

	return records
}
