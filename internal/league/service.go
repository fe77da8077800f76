package league

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/apperrors"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/mail"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/season"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
	"github.com/google/uuid"
)

type LeagueService struct {
	repo      LeagueRepository
	overrides WeekOverrideStore
	users     user.UserRepository
	mailer    mail.Mailer
	now       func() time.Time
}

func NewLeagueService(repo LeagueRepository, overrides WeekOverrideStore, users user.UserRepository, mailer mail.Mailer) *LeagueService {
	return &LeagueService{
		repo:      repo,
		overrides: overrides,
		users:     users,
		mailer:    mailer,
		now:       time.Now,
	}
}

// --- weeks and submission windows ---

func (s *LeagueService) WeekStatuses() ([]WeekStatus, error) {
	now := s.now()
	statuses := []WeekStatus{}
	for _, week := range season.Weeks() {
		override, err := s.overrides.Override(week)
		if err != nil {
			return nil, err
		}
		deadline, _ := season.Deadline(week)
		statuses = append(statuses, WeekStatus{
			Week:          week,
			Label:         season.Label(week),
			Deadline:      deadline,
			Open:          season.Open(week, now) || override,
			AdminOverride: override,
		})
	}
	return statuses, nil
}

func (s *LeagueService) weekOpen(week int) (bool, error) {
	override, err := s.overrides.Override(week)
	if err != nil {
		return false, err
	}
	if override {
		return true, nil
	}
	return season.Open(week, s.now()), nil
}

func (s *LeagueService) SetWeekOverride(week int, enabled bool) error {
	if !season.IsValidWeek(week) {
		return apperrors.NewAppError(400, "unknown week", nil)
	}
	return s.overrides.SetOverride(week, enabled)
}

// --- picks ---

// SubmitPicks upserts the caller's picks for a week, provided the submission
// window is open. A confirmation email goes out in the background.
func (s *LeagueService) SubmitPicks(userID uint, week int, req PicksRequest) (*WeeklyPicks, error) {
	if !season.IsValidWeek(week) {
		return nil, apperrors.NewAppError(400, "unknown week", nil)
	}

	open, err := s.weekOpen(week)
	if err != nil {
		return nil, err
	}
	if !open {
		deadline, _ := season.Deadline(week)
		return nil, apperrors.NewAppError(403,
			fmt.Sprintf("the submission deadline for %s passed at %s",
				season.Label(week), deadline.Format(time.RFC3339)), nil)
	}

	owner, err := s.users.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewAppError(404, "user not found", nil)
	}

	picks := &WeeklyPicks{
		UserID:              userID,
		Week:                week,
		StarBaker:           strings.TrimSpace(req.StarBaker),
		TechnicalWinner:     strings.TrimSpace(req.TechnicalWinner),
		EliminatedBaker:     strings.TrimSpace(req.EliminatedBaker),
		HandshakePrediction: req.HandshakePrediction,
		SeasonWinner:        strings.TrimSpace(req.SeasonWinner),
		FinalistA:           strings.TrimSpace(req.FinalistA),
		FinalistB:           strings.TrimSpace(req.FinalistB),
		SubmittedAt:         s.now(),
	}
	if err := s.repo.SavePicks(picks); err != nil {
		return nil, err
	}

	summary := mail.PickSummary{
		WeekLabel:           season.Label(week),
		StarBaker:           picks.StarBaker,
		TechnicalWinner:     picks.TechnicalWinner,
		EliminatedBaker:     picks.EliminatedBaker,
		HandshakePrediction: picks.HandshakePrediction,
		SeasonWinner:        picks.SeasonWinner,
		FinalistA:           picks.FinalistA,
		FinalistB:           picks.FinalistB,
	}
	go func(to, name string) {
		if err := s.mailer.SendPickConfirmation(to, name, summary); err != nil {
			log.Println("error sending pick confirmation:", err)
		}
	}(owner.Email, owner.Name)

	return picks, nil
}

func (s *LeagueService) GetUserPicks(userID uint, week int) (*WeeklyPicks, error) {
	if !season.IsValidWeek(week) {
		return nil, apperrors.NewAppError(400, "unknown week", nil)
	}
	return s.repo.GetUserPicks(userID, week)
}

// RevealedPicks returns everyone's picks for a week, but only once its
// deadline has passed. An admin override keeps the window open for
// submissions without revealing anything early.
func (s *LeagueService) RevealedPicks(week int) ([]WeeklyPicks, error) {
	deadline, ok := season.Deadline(week)
	if !ok {
		return nil, apperrors.NewAppError(400, "unknown week", nil)
	}
	if s.now().Before(deadline) {
		return nil, apperrors.NewAppError(403, "picks for this week are not revealed yet", nil)
	}
	return s.repo.GetPicksForWeek(week)
}

// --- bakers ---

func (s *LeagueService) AddBaker(name string) (*Baker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewAppError(400, "baker name is required", nil)
	}
	return s.repo.AddBaker(name)
}

func (s *LeagueService) ListBakers() ([]Baker, error) {
	return s.repo.GetAllBakers()
}

func (s *LeagueService) ActiveBakers() ([]Baker, error) {
	return s.repo.GetActiveBakers()
}

func (s *LeagueService) DeleteBaker(id uint) error {
	return s.repo.DeleteBaker(id)
}

// --- results ---

// EnterWeeklyResults upserts the episode outcome for a week and marks the
// eliminated baker, if one was named.
func (s *LeagueService) EnterWeeklyResults(week int, req ResultsRequest) (*WeeklyResults, error) {
	if !season.IsValidWeek(week) {
		return nil, apperrors.NewAppError(400, "unknown week", nil)
	}

	results := &WeeklyResults{
		Week:            week,
		StarBaker:       strings.TrimSpace(req.StarBaker),
		TechnicalWinner: strings.TrimSpace(req.TechnicalWinner),
		EliminatedBaker: strings.TrimSpace(req.EliminatedBaker),
		HandshakeGiven:  req.HandshakeGiven,
		EnteredAt:       s.now(),
	}
	if err := s.repo.SaveWeeklyResults(results); err != nil {
		return nil, err
	}

	if results.EliminatedBaker != "" {
		if err := s.repo.EliminateBaker(results.EliminatedBaker, week); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *LeagueService) GetWeeklyResults(week int) (*WeeklyResults, error) {
	if !season.IsValidWeek(week) {
		return nil, apperrors.NewAppError(400, "unknown week", nil)
	}
	return s.repo.GetWeeklyResults(week)
}

func (s *LeagueService) ListWeeklyResults() ([]WeeklyResults, error) {
	return s.repo.GetAllWeeklyResults()
}

// SetFinalResults records the season outcome. Winner and finalists must be
// three different bakers.
func (s *LeagueService) SetFinalResults(req FinalResultsRequest) (*FinalResults, error) {
	winner := strings.TrimSpace(req.SeasonWinner)
	finalistA := strings.TrimSpace(req.FinalistA)
	finalistB := strings.TrimSpace(req.FinalistB)
	if winner == "" || finalistA == "" || finalistB == "" {
		return nil, apperrors.NewAppError(400, "winner and both finalists are required", nil)
	}
	if winner == finalistA || winner == finalistB || finalistA == finalistB {
		return nil, apperrors.NewAppError(400, "the winner and finalists must be three different bakers", nil)
	}
	return s.repo.SaveFinalResults(winner, finalistA, finalistB)
}

func (s *LeagueService) GetFinalResults() (*FinalResults, error) {
	return s.repo.GetFinalResults()
}

// NotifyCommissioner emails the weekly results and current standings. Fire
// and forget, called after results are entered.
func (s *LeagueService) NotifyCommissioner(results *WeeklyResults, standings []mail.ScoreRow) {
	summary := mail.ResultsSummary{
		WeekLabel:       season.Label(results.Week),
		StarBaker:       results.StarBaker,
		TechnicalWinner: results.TechnicalWinner,
		EliminatedBaker: results.EliminatedBaker,
		HandshakeGiven:  results.HandshakeGiven,
	}
	go func() {
		if err := s.mailer.SendCommissionerUpdate(summary, standings); err != nil {
			log.Println("error sending commissioner update:", err)
		}
	}()
}

// --- data management ---

func (s *LeagueService) BackupData() (*Backup, error) {
	users, err := s.users.GetAllUsers()
	if err != nil {
		return nil, err
	}
	bakers, err := s.repo.GetAllBakers()
	if err != nil {
		return nil, err
	}
	picks, err := s.repo.GetAllPicks()
	if err != nil {
		return nil, err
	}
	weeklyResults, err := s.repo.GetAllWeeklyResults()
	if err != nil {
		return nil, err
	}
	final, err := s.repo.GetFinalResults()
	if err != nil {
		return nil, err
	}

	return &Backup{
		ID:            uuid.New().String(),
		CreatedAt:     s.now(),
		Users:         users,
		Bakers:        bakers,
		WeeklyPicks:   picks,
		WeeklyResults: weeklyResults,
		FinalResults:  final,
	}, nil
}

func (s *LeagueService) ResetAllData() error {
	return s.repo.ResetAllData()
}
