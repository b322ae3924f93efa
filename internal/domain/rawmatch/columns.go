package rawmatch

// Column names as they appear in the season export headers. The upstream
// provider fixes these; matching is exact, including casing and spacing.
const (
	ColTeam     = "Team"
	ColOpponent = "Opponent"
	ColSide     = "Side"
	ColRound    = "Round"
	ColMatch    = "Match"
	ColScore    = "Score"
	ColDate     = "Date"
	ColPoints   = "points"

	ColGoalScored   = "Goal scored"
	ColGoalConceded = "Goal conceded"

	ColBallPossession = "Ball possession"

	ColAccuratePasses     = "Accurate passes"
	ColAccurateLongBalls  = "Accurate long balls"
	ColAccurateCrosses    = "Accurate crosses"
	ColDuelsWon           = "Duels won"
	ColGroundDuelsWon     = "Ground duels won"
	ColAerialDuelsWon     = "Aerial duels won"
	ColSuccessfulDribbles = "Successful dribbles"

	ColExpectedGoals = "Expected goals (xG)"
	ColXGOpenPlay    = "xG open play"
	ColXGSetPlay     = "xG set play"
	ColNonPenaltyXG  = "Non-penalty xG"
	ColXGOnTarget    = "xG on target (xGOT)"

	ColTotalShots       = "Total shots"
	ColShotsOnTarget    = "Shots on target"
	ColShotsOffTarget   = "Shots off target"
	ColBlockedShots     = "Blocked shots"
	ColHitWoodwork      = "Hit woodwork"
	ColShotsInsideBox   = "Shots inside box"
	ColShotsOutsideBox  = "Shots outside box"
	ColBigChances       = "Big chances"
	ColBigChancesMissed = "Big chances missed"

	ColPasses         = "Passes"
	ColOwnHalf        = "Own half"
	ColOppositionHalf = "Opposition half"
	ColThrows         = "Throws"
	ColTouchesInBox   = "Touches in opposition box"
	ColOffsides       = "Offsides"
	ColFoulsCommitted = "Fouls committed"
	ColYellowCards    = "Yellow cards"
	ColRedCards       = "Red cards"

	ColTackles       = "Tackles"
	ColInterceptions = "Interceptions"
	ColBlocks        = "Blocks"
	ColClearances    = "Clearances"
	ColKeeperSaves   = "Keeper saves"
	ColCorners       = "Corners"
)

// RequiredColumns lists every column the normalizer reads. A season file
// missing any of these has the wrong schema and is rejected at load time.
func RequiredColumns() []string {
	return []string{
		ColTeam,
		ColOpponent,
		ColSide,
		ColRound,
		ColMatch,
		ColScore,
		ColDate,
		ColPoints,
		ColGoalScored,
		ColGoalConceded,
		ColBallPossession,
		ColAccuratePasses,
		ColAccurateLongBalls,
		ColAccurateCrosses,
		ColDuelsWon,
		ColGroundDuelsWon,
		ColAerialDuelsWon,
		ColSuccessfulDribbles,
		ColExpectedGoals,
		ColXGOpenPlay,
		ColXGSetPlay,
		ColNonPenaltyXG,
		ColXGOnTarget,
		ColTotalShots,
		ColShotsOnTarget,
		ColShotsOffTarget,
		ColBlockedShots,
		ColHitWoodwork,
		ColShotsInsideBox,
		ColShotsOutsideBox,
		ColBigChances,
		ColBigChancesMissed,
		ColPasses,
		ColOwnHalf,
		ColOppositionHalf,
		ColThrows,
		ColTouchesInBox,
		ColOffsides,
		ColFoulsCommitted,
		ColYellowCards,
		ColRedCards,
		ColTackles,
		ColInterceptions,
		ColBlocks,
		ColClearances,
		ColKeeperSaves,
		ColCorners,
	}
}
