package scoring

import (
	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
)

// ScoreService is the read-then-compute pipeline behind the leaderboard: it
// fetches the current records and runs the pure engine over them on every
// call.
type ScoreService struct {
	users  user.UserRepository
	league league.LeagueRepository
}

func NewScoreService(users user.UserRepository, leagueRepo league.LeagueRepository) *ScoreService {
	return &ScoreService{users: users, league: leagueRepo}
}

func (s *ScoreService) Leaderboard() ([]ScoreRecord, error) {
	users, err := s.users.GetAllUsers()
	if err != nil {
		return nil, err
	}
	picks, err := s.league.GetAllPicks()
	if err != nil {
		return nil, err
	}
	results, err := s.league.GetAllWeeklyResults()
	if err != nil {
		return nil, err
	}
	final, err := s.league.GetFinalResults()
	if err != nil {
		return nil, err
	}
	return ComputeLeaderboard(users, picks, results, final), nil
}
