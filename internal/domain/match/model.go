package match

import "time"

// Side is the venue from the team's perspective.
type Side string

const (
	SideHome Side = "Home"
	SideAway Side = "Away"
)

// PossessionBucket classifies a match by the team's possession share.
type PossessionBucket string

const (
	PossessionLow    PossessionBucket = "Low"
	PossessionMedium PossessionBucket = "Medium"
	PossessionHigh   PossessionBucket = "High"
)

// BucketForPossession maps a possession percentage to its bucket using
// half-open intervals: [0,45) low, [45,55) medium, [55,100] high.
func BucketForPossession(pct float64) PossessionBucket {
	switch {
	case pct < 45:
		return PossessionLow
	case pct < 55:
		return PossessionMedium
	default:
		return PossessionHigh
	}
}

// Record is one team's canonical stat line for one fixture, fully typed and
// carrying every derived per-match figure. Records are built once by
// Normalize and treated as immutable afterwards; a record is identified by
// (Season, Team, Round).
type Record struct {
	Season   string
	Team     string
	Opponent string
	Side     Side
	Round    int
	Match    string
	Score    string
	Date     *time.Time

	Points        int
	GoalsScored   int
	GoalsConceded int

	PossessionPct float64

	AccuratePassesCount     int
	AccuratePassesPct       float64
	AccurateLongBallsCount  int
	AccurateLongBallsPct    float64
	AccurateCrossesCount    int
	AccurateCrossesPct      float64
	DuelsWonCount           int
	DuelsWonPct             float64
	GroundDuelsWonCount     int
	GroundDuelsWonPct       float64
	AerialDuelsWonCount     int
	AerialDuelsWonPct       float64
	SuccessfulDribblesCount int
	SuccessfulDribblesPct   float64

	ExpectedGoals float64
	XGOpenPlay    float64
	XGSetPlay     float64
	NonPenaltyXG  float64
	XGOnTarget    float64

	TotalShots       int
	ShotsOnTarget    int
	ShotsOffTarget   int
	BlockedShots     int
	HitWoodwork      int
	ShotsInsideBox   int
	ShotsOutsideBox  int
	BigChances       int
	BigChancesMissed int

	Passes               int
	OwnHalfPasses        int
	OppositionHalfPasses int
	Throws               int
	TouchesInBox         int
	Offsides             int
	FoulsCommitted       int
	YellowCards          int
	RedCards             int

	Tackles       int
	Interceptions int
	Blocks        int
	Clearances    int
	KeeperSaves   int
	Corners       int

	IsWin        bool
	IsDraw       bool
	IsLoss       bool
	IsCleanSheet bool

	GoalDifference         int
	XGDifference           float64
	ShotConversionPct      float64
	ShotsOnTargetPct       float64
	BigChanceConversionPct float64
	ShotsInsideBoxPct      float64
	DefensiveActions       int
	OppositionHalfShare    float64
	XGOpenPlayRatio        float64
	XGSetPlayRatio         float64
	XGPerShot              float64
	WoodworkRate           float64
	BlockedShotsRate       float64
	OffTargetRate          float64

	Possession PossessionBucket
}

// FormLetter is the single-character result code used in form strings.
// Unknown point values read as losses, same as the outcome flags.
func (r Record) FormLetter() string {
	switch {
	case r.IsWin:
		return "W"
	case r.IsDraw:
		return "D"
	default:
		return "L"
	}
}
