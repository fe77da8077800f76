package scoring

import (
	"testing"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
	"github.com/stretchr/testify/assert"
)

func TestScoreService_Leaderboard(t *testing.T) {
	userRepo := &user.MockUserRepository{}
	leagueRepo := &league.MockLeagueRepository{}
	service := NewScoreService(userRepo, leagueRepo)

	userRepo.On("GetAllUsers").Return([]user.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, nil)
	leagueRepo.On("GetAllPicks").Return([]league.WeeklyPicks{
		{UserID: 1, Week: 3, StarBaker: "Ada"},
	}, nil)
	leagueRepo.On("GetAllWeeklyResults").Return([]league.WeeklyResults{
		{Week: 3, StarBaker: "Ada"},
	}, nil)
	leagueRepo.On("GetFinalResults").Return(nil, nil)

	records, err := service.Leaderboard()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].Name)
	assert.Equal(t, 5, records[0].TotalPoints)
	assert.Equal(t, 0, records[1].TotalPoints)
	userRepo.AssertExpectations(t)
	leagueRepo.AssertExpectations(t)
}

func TestScoreService_Leaderboard_RecomputesFresh(t *testing.T) {
	userRepo := &user.MockUserRepository{}
	leagueRepo := &league.MockLeagueRepository{}
	service := NewScoreService(userRepo, leagueRepo)

	userRepo.On("GetAllUsers").Return([]user.User{{ID: 1, Name: "Alice"}}, nil)
	leagueRepo.On("GetAllPicks").Return([]league.WeeklyPicks{
		{UserID: 1, Week: 3, StarBaker: "Ada"},
	}, nil)
	// corrected results: Ada loses star baker, so the score must drop with
	// no stale residue
	leagueRepo.On("GetAllWeeklyResults").Return([]league.WeeklyResults{
		{Week: 3, StarBaker: "Ben"},
	}, nil)
	leagueRepo.On("GetFinalResults").Return(nil, nil)

	records, err := service.Leaderboard()
	assert.NoError(t, err)
	assert.Equal(t, 0, records[0].TotalPoints)
}
