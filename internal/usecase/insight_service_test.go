package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestInsightServiceRejectsSameTeamPair(t *testing.T) {
	t.Parallel()

	service := NewInsightService(fixtureSeasonRepo(), fixtureCatalog())

	_, err := service.Insights(context.Background(), "2024-2025", "Arsenal", "Arsenal")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInsightServiceBuildsReport(t *testing.T) {
	t.Parallel()

	service := NewInsightService(fixtureSeasonRepo(), fixtureCatalog())

	report, err := service.Insights(context.Background(), "2024-2025", "Arsenal", "Chelsea")
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	if report.Season != "2024-2025" || report.Team != "Arsenal" || report.Comparison != "Chelsea" {
		t.Fatalf("unexpected report header: %+v", report)
	}

	_, err = service.Insights(context.Background(), "2024-2025", "Arsenal", "Narnia")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown comparison team, got %v", err)
	}
}
