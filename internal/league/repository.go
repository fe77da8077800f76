package league

import (
	"errors"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/apperrors"
	"github.com/bakeoffleague/fantasy-bakeoff/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeagueRepository interface {
	AddBaker(name string) (*Baker, error)
	GetAllBakers() ([]Baker, error)
	GetActiveBakers() ([]Baker, error)
	EliminateBaker(name string, week int) error
	DeleteBaker(id uint) error

	SavePicks(picks *WeeklyPicks) error
	GetUserPicks(userID uint, week int) (*WeeklyPicks, error)
	GetPicksForWeek(week int) ([]WeeklyPicks, error)
	GetAllPicks() ([]WeeklyPicks, error)

	SaveWeeklyResults(results *WeeklyResults) error
	GetWeeklyResults(week int) (*WeeklyResults, error)
	GetAllWeeklyResults() ([]WeeklyResults, error)

	SaveFinalResults(winner, finalistA, finalistB string) (*FinalResults, error)
	GetFinalResults() (*FinalResults, error)

	ResetAllData() error
}

type GormLeagueRepository struct{}

func NewLeagueRepository() *GormLeagueRepository {
	return &GormLeagueRepository{}
}

func (r *GormLeagueRepository) AddBaker(name string) (*Baker, error) {
	baker := Baker{Name: name}
	if err := db.DB.Create(&baker).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error adding baker", err)
	}
	return &baker, nil
}

func (r *GormLeagueRepository) GetAllBakers() ([]Baker, error) {
	bakers := []Baker{}
	if err := db.DB.Order("name").Find(&bakers).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing bakers", err)
	}
	return bakers, nil
}

func (r *GormLeagueRepository) GetActiveBakers() ([]Baker, error) {
	bakers := []Baker{}
	if err := db.DB.Where("eliminated = ?", false).Order("name").Find(&bakers).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing active bakers", err)
	}
	return bakers, nil
}

func (r *GormLeagueRepository) EliminateBaker(name string, week int) error {
	result := db.DB.Model(&Baker{}).Where("name = ?", name).
		Updates(map[string]interface{}{"eliminated": true, "elimination_week": week})
	if result.Error != nil {
		return apperrors.NewAppError(500, "error eliminating baker", result.Error)
	}
	return nil
}

func (r *GormLeagueRepository) DeleteBaker(id uint) error {
	result := db.DB.Delete(&Baker{}, id)
	if result.Error != nil {
		return apperrors.NewAppError(500, "error deleting baker", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "baker not found", nil)
	}
	return nil
}

// SavePicks upserts on the (user_id, week) unique index, so resubmission is
// last write wins.
func (r *GormLeagueRepository) SavePicks(picks *WeeklyPicks) error {
	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"star_baker", "technical_winner", "eliminated_baker",
			"handshake_prediction", "season_winner", "finalist_a", "finalist_b",
			"submitted_at",
		}),
	}).Create(picks).Error
	if err != nil {
		return apperrors.NewAppError(500, "error saving picks", err)
	}
	return nil
}

func (r *GormLeagueRepository) GetUserPicks(userID uint, week int) (*WeeklyPicks, error) {
	var picks WeeklyPicks
	result := db.DB.Where("user_id = ? AND week = ?", userID, week).First(&picks)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting picks", result.Error)
	}
	return &picks, nil
}

func (r *GormLeagueRepository) GetPicksForWeek(week int) ([]WeeklyPicks, error) {
	picks := []WeeklyPicks{}
	if err := db.DB.Where("week = ?", week).Order("user_id").Find(&picks).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error getting picks for week", err)
	}
	return picks, nil
}

func (r *GormLeagueRepository) GetAllPicks() ([]WeeklyPicks, error) {
	picks := []WeeklyPicks{}
	if err := db.DB.Order("week, user_id").Find(&picks).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error getting picks", err)
	}
	return picks, nil
}

func (r *GormLeagueRepository) SaveWeeklyResults(results *WeeklyResults) error {
	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"star_baker", "technical_winner", "eliminated_baker",
			"handshake_given", "entered_at",
		}),
	}).Create(results).Error
	if err != nil {
		return apperrors.NewAppError(500, "error saving weekly results", err)
	}
	return nil
}

func (r *GormLeagueRepository) GetWeeklyResults(week int) (*WeeklyResults, error) {
	var results WeeklyResults
	result := db.DB.Where("week = ?", week).First(&results)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting weekly results", result.Error)
	}
	return &results, nil
}

func (r *GormLeagueRepository) GetAllWeeklyResults() ([]WeeklyResults, error) {
	results := []WeeklyResults{}
	if err := db.DB.Order("week").Find(&results).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error getting weekly results", err)
	}
	return results, nil
}

// SaveFinalResults keeps the table to a single row: clear, then insert.
func (r *GormLeagueRepository) SaveFinalResults(winner, finalistA, finalistB string) (*FinalResults, error) {
	final := FinalResults{
		SeasonWinner: winner,
		FinalistA:    finalistA,
		FinalistB:    finalistB,
	}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&FinalResults{}).Error; err != nil {
			return err
		}
		return tx.Create(&final).Error
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "error saving final results", err)
	}
	return &final, nil
}

func (r *GormLeagueRepository) GetFinalResults() (*FinalResults, error) {
	var final FinalResults
	result := db.DB.First(&final)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting final results", result.Error)
	}
	return &final, nil
}

// ResetAllData wipes the league. Picks go first so the user cascade never
// races the delete order.
func (r *GormLeagueRepository) ResetAllData() error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&WeeklyPicks{}, &WeeklyResults{}, &FinalResults{}, &Baker{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Exec("DELETE FROM users").Error
	})
	if err != nil {
		return apperrors.NewAppError(500, "error resetting data", err)
	}
	return nil
}
