package insight

import (
	"fmt"

	"github.com/matchdaylabs/matchmetrics/internal/domain/metrics"
)

// Severity ranks how much a finding should worry the reader.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityInfo   Severity = "info"
)

// Finding is one tactical observation about the subject team.
type Finding struct {
	Title    string
	Finding  string
	Action   string
	Severity Severity
}

// TeamProfile bundles the derived metrics a comparison needs. The engine
// values are already rounded for display; every threshold below compares
// those display values, so what the reader sees is exactly what triggered.
type TeamProfile struct {
	Team          string
	SetPiece      metrics.SetPiece
	ShotQuality   metrics.ShotQuality
	Effectiveness metrics.PossessionEffectiveness
}

// Evaluate runs every tactical rule for the subject team against the
// comparison team. Rules are independent, each emits at most one finding,
// and the output order is the fixed rule order, never re-ranked.
func Evaluate(subject, comparison TeamProfile) []Finding {
	var findings []Finding

	if f, ok := setPieceDependency(subject, comparison); ok {
		findings = append(findings, f)
	}
	if f, ok := shotQualityGap(subject, comparison); ok {
		findings = append(findings, f)
	}
	if f, ok := shotsBeingBlocked(subject, comparison); ok {
		findings = append(findings, f)
	}
	if f, ok := finishingLuck(subject); ok {
		findings = append(findings, f)
	}
	if f, ok := openPlayCreationGap(subject, comparison); ok {
		findings = append(findings, f)
	}
	if f, ok := counterAttackStyle(subject); ok {
		findings = append(findings, f)
	}
	if f, ok := possessionEfficiencyGap(subject, comparison); ok {
		findings = append(findings, f)
	}
	if f, ok := highPossessionNotConverting(subject); ok {
		findings = append(findings, f)
	}

	return findings
}

func setPieceDependency(subject, comparison TeamProfile) (Finding, bool) {
	subjPct := subject.SetPiece.SetPieceXGPct
	compPct := comparison.SetPiece.SetPieceXGPct
	if subjPct <= compPct+5 {
		return Finding{}, false
	}
	severity := SeverityMedium
	if subjPct > 35 {
		severity = SeverityHigh
	}
	return Finding{
		Title:    "Set Piece Dependency",
		Finding:  fmt.Sprintf("%s generates %.1f%% of xG from set pieces vs %.1f%% for %s", subject.Team, subjPct, compPct, comparison.Team),
		Action:   "Develop more open-play chance creation so results survive well-drilled set-piece defences",
		Severity: severity,
	}, true
}

func shotQualityGap(subject, comparison TeamProfile) (Finding, bool) {
	diff := subject.ShotQuality.AvgXGPerShot - comparison.ShotQuality.AvgXGPerShot
	if diff >= -0.02 {
		return Finding{}, false
	}
	severity := SeverityMedium
	if diff < -0.03 {
		severity = SeverityHigh
	}
	return Finding{
		Title:    "Shot Quality Gap",
		Finding:  fmt.Sprintf("%s averages %.3f xG per shot vs %.3f for %s", subject.Team, subject.ShotQuality.AvgXGPerShot, comparison.ShotQuality.AvgXGPerShot, comparison.Team),
		Action:   "Improve shot selection and work the ball into higher-value areas before shooting",
		Severity: severity,
	}, true
}

func shotsBeingBlocked(subject, comparison TeamProfile) (Finding, bool) {
	if subject.ShotQuality.BlockedRate-comparison.ShotQuality.BlockedRate <= 5 {
		return Finding{}, false
	}
	return Finding{
		Title:    "Shots Being Blocked",
		Finding:  fmt.Sprintf("%.1f%% of %s's shots are blocked vs %.1f%% for %s", subject.ShotQuality.BlockedRate, subject.Team, comparison.ShotQuality.BlockedRate, comparison.Team),
		Action:   "Vary attacking angles and release shots earlier before defenders can set",
		Severity: SeverityMedium,
	}, true
}

func finishingLuck(subject TeamProfile) (Finding, bool) {
	if subject.ShotQuality.WoodworkHits <= 5 {
		return Finding{}, false
	}
	return Finding{
		Title:    "Finishing Luck",
		Finding:  fmt.Sprintf("%s hit the woodwork %d times this season", subject.Team, subject.ShotQuality.WoodworkHits),
		Action:   "Expect positive regression, the underlying finishing is better than the results show",
		Severity: SeverityInfo,
	}, true
}

func openPlayCreationGap(subject, comparison TeamProfile) (Finding, bool) {
	if subject.SetPiece.OpenPlayXGPerGame >= comparison.SetPiece.OpenPlayXGPerGame-0.3 {
		return Finding{}, false
	}
	return Finding{
		Title:    "Open Play Creation",
		Finding:  fmt.Sprintf("%s creates %.2f open-play xG per game vs %.2f for %s", subject.Team, subject.SetPiece.OpenPlayXGPerGame, comparison.SetPiece.OpenPlayXGPerGame, comparison.Team),
		Action:   "Build open-play patterns to reduce the reliance on set pieces",
		Severity: SeverityHigh,
	}, true
}

func counterAttackStyle(subject TeamProfile) (Finding, bool) {
	eff := subject.Effectiveness
	if eff.LowPossMatches == 0 || eff.HighPossMatches == 0 {
		return Finding{}, false
	}
	if eff.LowPossPPG <= eff.HighPossPPG {
		return Finding{}, false
	}
	return Finding{
		Title:    "Counter-Attack Style More Effective",
		Finding:  fmt.Sprintf("%s earns %.2f points per game with low possession vs %.2f with high possession", subject.Team, eff.LowPossPPG, eff.HighPossPPG),
		Action:   "Leaning into a counter-attacking setup may suit this squad better",
		Severity: SeverityHigh,
	}, true
}

func possessionEfficiencyGap(subject, comparison TeamProfile) (Finding, bool) {
	subjEff := subject.Effectiveness.XGPerPossessionPct
	compEff := comparison.Effectiveness.XGPerPossessionPct
	if subjEff >= compEff*0.8 {
		return Finding{}, false
	}
	return Finding{
		Title:    "Possession Efficiency Gap",
		Finding:  fmt.Sprintf("%s generates %.3f xG per possession %% vs %.3f for %s", subject.Team, subjEff, compEff, comparison.Team),
		Action:   "Possession is not translating into chances, add more penetration in the final third",
		Severity: SeverityMedium,
	}, true
}

func highPossessionNotConverting(subject TeamProfile) (Finding, bool) {
	eff := subject.Effectiveness
	if eff.HighPossMatches < 5 || eff.HighPossWinRate >= 50 {
		return Finding{}, false
	}
	return Finding{
		Title:    "High Possession Not Converting to Wins",
		Finding:  fmt.Sprintf("%s wins only %.1f%% of high-possession games (%d played)", subject.Team, eff.HighPossWinRate, eff.HighPossMatches),
		Action:   "Add creative options for breaking down deep defensive blocks",
		Severity: SeverityHigh,
	}, true
}
