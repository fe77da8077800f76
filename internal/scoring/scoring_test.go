package scoring

import (
	"fmt"
	"testing"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
	"github.com/stretchr/testify/assert"
)

var testResults = league.WeeklyResults{
	Week:            3,
	StarBaker:       "Ada",
	TechnicalWinner: "Ben",
	EliminatedBaker: "Cid",
	HandshakeGiven:  false,
}

func pickName(correct string, isCorrect bool) string {
	if isCorrect {
		return correct
	}
	return "Zed"
}

// Every combination of the four weekly predictions being right or wrong,
// against both handshake outcomes. "Zed" never matches anything, so wrong
// guesses score zero rather than tripping the conflict penalties.
func TestWeeklyPoints_AllCombinations(t *testing.T) {
	for _, handshakeGiven := range []bool{false, true} {
		for i := 0; i < 16; i++ {
			starRight := i&1 != 0
			elimRight := i&2 != 0
			techRight := i&4 != 0
			handshakePred := i&8 != 0

			picks := league.WeeklyPicks{
				StarBaker:           pickName("Ada", starRight),
				EliminatedBaker:     pickName("Cid", elimRight),
				TechnicalWinner:     pickName("Ben", techRight),
				HandshakePrediction: handshakePred,
			}
			results := testResults
			results.HandshakeGiven = handshakeGiven

			expected := 0
			if starRight {
				expected += 5
			}
			if elimRight {
				expected += 5
			}
			if techRight {
				expected += 3
			}
			if handshakePred && handshakeGiven {
				expected += 10
			}
			if handshakePred && !handshakeGiven {
				expected -= 10
			}

			name := fmt.Sprintf("star=%v elim=%v tech=%v hs=%v given=%v",
				starRight, elimRight, techRight, handshakePred, handshakeGiven)
			assert.Equal(t, expected, WeeklyPoints(picks, results), name)
		}
	}
}

func TestWeeklyPoints_AllCorrectNoHandshake(t *testing.T) {
	picks := league.WeeklyPicks{
		StarBaker:           "Ada",
		TechnicalWinner:     "Ben",
		EliminatedBaker:     "Cid",
		HandshakePrediction: false,
	}
	assert.Equal(t, 13, WeeklyPoints(picks, testResults))
}

func TestWeeklyPoints_ContradictoryPicks(t *testing.T) {
	picks := league.WeeklyPicks{
		StarBaker:           "Cid", // the actual eliminated baker
		EliminatedBaker:     "Ada", // the actual star baker
		HandshakePrediction: true,
	}
	assert.Equal(t, -20, WeeklyPoints(picks, testResults))
}

func TestWeeklyPoints_HandshakeAsymmetry(t *testing.T) {
	given := testResults
	given.HandshakeGiven = true

	// false negative is free
	noCall := league.WeeklyPicks{HandshakePrediction: false}
	assert.Equal(t, 0, WeeklyPoints(noCall, given))

	// false positive costs the full bonus
	wrongCall := league.WeeklyPicks{HandshakePrediction: true}
	assert.Equal(t, -10, WeeklyPoints(wrongCall, testResults))
}

func TestWeeklyPoints_BlankFieldsNeverMatch(t *testing.T) {
	picks := league.WeeklyPicks{}
	results := league.WeeklyResults{}
	assert.Equal(t, 0, WeeklyPoints(picks, results))

	// a pick naming a deleted baker scores nothing against blank results
	stale := league.WeeklyPicks{StarBaker: "Gone", EliminatedBaker: "Gone"}
	assert.Equal(t, 0, WeeklyPoints(stale, results))
}

var testFinal = &league.FinalResults{
	SeasonWinner: "Dee",
	FinalistA:    "Eve",
	FinalistB:    "Fay",
}

func TestForesightPoints_EarlyWeek(t *testing.T) {
	picks := league.WeeklyPicks{
		SeasonWinner: "Dee",
		FinalistA:    "Fay",
		FinalistB:    "Eve",
	}
	// weight 9: winner 90, finalists 45 each despite swapped order
	assert.Equal(t, 180, ForesightPoints(picks, testFinal, 2))
}

func TestForesightPoints_LateWeek(t *testing.T) {
	picks := league.WeeklyPicks{
		SeasonWinner: "Dee",
		FinalistA:    "Fay",
		FinalistB:    "Eve",
	}
	assert.Equal(t, 40, ForesightPoints(picks, testFinal, 9))
}

func TestForesightPoints_NoFinalResults(t *testing.T) {
	picks := league.WeeklyPicks{
		SeasonWinner: "Dee",
		FinalistA:    "Eve",
		FinalistB:    "Fay",
	}
	assert.Equal(t, 0, ForesightPoints(picks, nil, 2))
}

func TestForesightPoints_Monotonicity(t *testing.T) {
	picks := league.WeeklyPicks{SeasonWinner: "Dee"}
	previous := ForesightPoints(picks, testFinal, 2)
	for week := 3; week <= 10; week++ {
		current := ForesightPoints(picks, testFinal, week)
		assert.GreaterOrEqual(t, previous, current, "week %d", week)
		previous = current
	}
}

func TestForesightPoints_FinalistOrderIndependence(t *testing.T) {
	picks := league.WeeklyPicks{
		SeasonWinner: "Eve",
		FinalistA:    "Fay",
		FinalistB:    "Dee",
	}
	swapped := &league.FinalResults{
		SeasonWinner: testFinal.SeasonWinner,
		FinalistA:    testFinal.FinalistB,
		FinalistB:    testFinal.FinalistA,
	}
	for week := 2; week <= 10; week++ {
		assert.Equal(t,
			ForesightPoints(picks, testFinal, week),
			ForesightPoints(picks, swapped, week))
	}
}

func TestForesightPoints_WeightClampsAtZero(t *testing.T) {
	picks := league.WeeklyPicks{
		SeasonWinner: "Dee",
		FinalistA:    "Eve",
		FinalistB:    "Fay",
	}
	assert.Equal(t, 0, ForesightPoints(picks, testFinal, 11))
	assert.Equal(t, 0, ForesightPoints(picks, testFinal, 14))
}

func TestForesightPoints_RepeatedCorrectCallStacks(t *testing.T) {
	users := []user.User{{ID: 1, Name: "Alice"}}
	picks := []league.WeeklyPicks{
		{UserID: 1, Week: 3, SeasonWinner: "Dee"},
		{UserID: 1, Week: 6, SeasonWinner: "Dee"},
		{UserID: 1, Week: 9, SeasonWinner: "Dee"},
	}

	records := ComputeLeaderboard(users, picks, nil, testFinal)
	// weights 8 + 5 + 2 = 15, winner multiple 10
	assert.Equal(t, 150, records[0].ForesightPoints)
}

func TestComputeLeaderboard_Idempotent(t *testing.T) {
	users := []user.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
	picks := []league.WeeklyPicks{
		{UserID: 1, Week: 3, StarBaker: "Ada", TechnicalWinner: "Ben", SeasonWinner: "Dee"},
		{UserID: 2, Week: 3, StarBaker: "Cid", HandshakePrediction: true},
	}
	results := []league.WeeklyResults{testResults}

	first := ComputeLeaderboard(users, picks, results, testFinal)
	second := ComputeLeaderboard(users, picks, results, testFinal)
	assert.Equal(t, first, second)
}

func TestComputeLeaderboard_UserWithoutPicks(t *testing.T) {
	users := []user.User{{ID: 7, Name: "Quiet"}}

	records := ComputeLeaderboard(users, nil, nil, nil)
	assert.Len(t, records, 1)
	assert.Equal(t, uint(7), records[0].UserID)
	assert.Equal(t, 0, records[0].WeeklyPoints)
	assert.Equal(t, 0, records[0].ForesightPoints)
	assert.Equal(t, 0, records[0].TotalPoints)
}

func TestComputeLeaderboard_WeekWithoutResultsScoresZero(t *testing.T) {
	users := []user.User{{ID: 1, Name: "Alice"}}
	picks := []league.WeeklyPicks{
		{UserID: 1, Week: 5, StarBaker: "Ada", TechnicalWinner: "Ben", EliminatedBaker: "Cid"},
	}

	records := ComputeLeaderboard(users, picks, nil, nil)
	assert.Equal(t, 0, records[0].WeeklyPoints)
}

func TestComputeLeaderboard_MalformedWeekSkipped(t *testing.T) {
	users := []user.User{{ID: 1, Name: "Alice"}}
	picks := []league.WeeklyPicks{
		{UserID: 1, Week: 0, SeasonWinner: "Dee"},
		{UserID: 1, Week: -3, SeasonWinner: "Dee"},
	}

	records := ComputeLeaderboard(users, picks, nil, testFinal)
	assert.Equal(t, 0, records[0].TotalPoints)
}

func TestComputeLeaderboard_Ordering(t *testing.T) {
	users := []user.User{
		{ID: 1, Name: "zoe"},
		{ID: 2, Name: "Abe"},
		{ID: 3, Name: "Mia"},
	}
	picks := []league.WeeklyPicks{
		// Mia outscores everyone, zoe and Abe tie at zero
		{UserID: 3, Week: 3, StarBaker: "Ada"},
	}
	results := []league.WeeklyResults{testResults}

	records := ComputeLeaderboard(users, picks, results, nil)
	assert.Equal(t, "Mia", records[0].Name)
	// tie broken by name ascending, case-insensitive
	assert.Equal(t, "Abe", records[1].Name)
	assert.Equal(t, "zoe", records[2].Name)
}

func TestComputeLeaderboard_TotalsAddUp(t *testing.T) {
	users := []user.User{{ID: 1, Name: "Alice"}}
	picks := []league.WeeklyPicks{
		{UserID: 1, Week: 3, StarBaker: "Ada", SeasonWinner: "Dee"},
	}
	results := []league.WeeklyResults{testResults}

	records := ComputeLeaderboard(users, picks, results, testFinal)
	record := records[0]
	assert.Equal(t, 5, record.WeeklyPoints)
	assert.Equal(t, 80, record.ForesightPoints)
	assert.Equal(t, record.WeeklyPoints+record.ForesightPoints, record.TotalPoints)
}
