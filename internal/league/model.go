package league

import (
	"time"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
)

type Baker struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	Eliminated      bool      `gorm:"default:false" json:"eliminated"`
	EliminationWeek *int      `json:"elimination_week,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// WeeklyPicks is one submission per (user, week). Baker fields are stored by
// name, not foreign key; a pick can outlive the baker it names.
type WeeklyPicks struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex:idx_user_week" json:"user_id"`
	User                user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Week                int       `gorm:"not null;uniqueIndex:idx_user_week" json:"week"`
	StarBaker           string    `json:"star_baker"`
	TechnicalWinner     string    `json:"technical_winner"`
	EliminatedBaker     string    `json:"eliminated_baker"`
	HandshakePrediction bool      `json:"handshake_prediction"`
	SeasonWinner        string    `json:"season_winner"`
	FinalistA           string    `json:"finalist_a"`
	FinalistB           string    `json:"finalist_b"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

type WeeklyResults struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Week            int       `gorm:"uniqueIndex;not null" json:"week"`
	StarBaker       string    `json:"star_baker"`
	TechnicalWinner string    `json:"technical_winner"`
	EliminatedBaker string    `json:"eliminated_baker"`
	HandshakeGiven  bool      `json:"handshake_given"`
	EnteredAt       time.Time `json:"entered_at"`
}

// FinalResults is a singleton row, overwritten to correct.
type FinalResults struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SeasonWinner string    `json:"season_winner"`
	FinalistA    string    `json:"finalist_a"`
	FinalistB    string    `json:"finalist_b"`
	EnteredAt    time.Time `json:"entered_at"`
}

type PicksRequest struct {
	StarBaker           string `json:"star_baker"`
	TechnicalWinner     string `json:"technical_winner"`
	EliminatedBaker     string `json:"eliminated_baker"`
	HandshakePrediction bool   `json:"handshake_prediction"`
	SeasonWinner        string `json:"season_winner"`
	FinalistA           string `json:"finalist_a"`
	FinalistB           string `json:"finalist_b"`
}

type ResultsRequest struct {
	StarBaker       string `json:"star_baker"`
	TechnicalWinner string `json:"technical_winner"`
	EliminatedBaker string `json:"eliminated_baker"`
	HandshakeGiven  bool   `json:"handshake_given"`
}

type FinalResultsRequest struct {
	SeasonWinner string `json:"season_winner"`
	FinalistA    string `json:"finalist_a"`
	FinalistB    string `json:"finalist_b"`
}

type WeekStatus struct {
	Week          int       `json:"week"`
	Label         string    `json:"label"`
	Deadline      time.Time `json:"deadline"`
	Open          bool      `json:"open"`
	AdminOverride bool      `json:"admin_override"`
}

// Backup is the admin data export, everything needed to rebuild the league.
type Backup struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Users         []user.User     `json:"users"`
	Bakers        []Baker         `json:"bakers"`
	WeeklyPicks   []WeeklyPicks   `json:"weekly_picks"`
	WeeklyResults []WeeklyResults `json:"weekly_results"`
	FinalResults  *FinalResults   `json:"final_results,omitempty"`
}
