package league

import (
	"github.com/bakeoffleague/fantasy-bakeoff/internal/mail"
	"github.com/stretchr/testify/mock"
)

type MockLeagueRepository struct {
	mock.Mock
}

func (m *MockLeagueRepository) AddBaker(name string) (*Baker, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Baker), args.Error(1)
}

func (m *MockLeagueRepository) GetAllBakers() ([]Baker, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Baker), args.Error(1)
}

func (m *MockLeagueRepository) GetActiveBakers() ([]Baker, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Baker), args.Error(1)
}

func (m *MockLeagueRepository) EliminateBaker(name string, week int) error {
	args := m.Called(name, week)
	return args.Error(0)
}

func (m *MockLeagueRepository) DeleteBaker(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLeagueRepository) SavePicks(picks *WeeklyPicks) error {
	args := m.Called(picks)
	return args.Error(0)
}

func (m *MockLeagueRepository) GetUserPicks(userID uint, week int) (*WeeklyPicks, error) {
	args := m.Called(userID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*WeeklyPicks), args.Error(1)
}

func (m *MockLeagueRepository) GetPicksForWeek(week int) ([]WeeklyPicks, error) {
	args := m.Called(week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]WeeklyPicks), args.Error(1)
}

func (m *MockLeagueRepository) GetAllPicks() ([]WeeklyPicks, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]WeeklyPicks), args.Error(1)
}

func (m *MockLeagueRepository) SaveWeeklyResults(results *WeeklyResults) error {
	args := m.Called(results)
	return args.Error(0)
}

func (m *MockLeagueRepository) GetWeeklyResults(week int) (*WeeklyResults, error) {
	args := m.Called(week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*WeeklyResults), args.Error(1)
}

func (m *MockLeagueRepository) GetAllWeeklyResults() ([]WeeklyResults, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]WeeklyResults), args.Error(1)
}

func (m *MockLeagueRepository) SaveFinalResults(winner, finalistA, finalistB string) (*FinalResults, error) {
	args := m.Called(winner, finalistA, finalistB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FinalResults), args.Error(1)
}

func (m *MockLeagueRepository) GetFinalResults() (*FinalResults, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FinalResults), args.Error(1)
}

func (m *MockLeagueRepository) ResetAllData() error {
	args := m.Called()
	return args.Error(0)
}

type MockWeekOverrideStore struct {
	mock.Mock
}

func (m *MockWeekOverrideStore) SetOverride(week int, enabled bool) error {
	args := m.Called(week, enabled)
	return args.Error(0)
}

func (m *MockWeekOverrideStore) Override(week int) (bool, error) {
	args := m.Called(week)
	return args.Bool(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPickConfirmation(to, name string, picks mail.PickSummary) error {
	args := m.Called(to, name, picks)
	return args.Error(0)
}

func (m *MockMailer) SendCommissionerUpdate(results mail.ResultsSummary, standings []mail.ScoreRow) error {
	args := m.Called(results, standings)
	return args.Error(0)
}
