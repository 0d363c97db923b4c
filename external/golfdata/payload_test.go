package golfdata

import (
	"testing"
	"time"
)

func TestParseScheduleDocument(t *testing.T) {
	raw := []byte(`{
		"_id": {"$oid": "65f2"},
		"year": {"$numberInt": "2026"},
		"schedule": [
			{
				"tournId": "014",
				"name": "Masters Tournament",
				"date": {
					"start": {"$date": {"$numberLong": "1775692800000"}},
					"end": {"$date": {"$numberLong": "1775952000000"}}
				}
			},
			{
				"tournId": "026",
				"name": "U.S. Open",
				"date": {"start": "2026-06-18T00:00:00Z"}
			},
			{
				"tournId": "999",
				"name": "No Start Date",
				"date": {}
			}
		]
	}`)

	year, entries, err := ParseScheduleDocument(raw)
	if err != nil {
		t.Fatalf("parse schedule failed: %v", err)
	}
	if year != 2026 {
		t.Fatalf("expected year 2026, got %d", year)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after dropping the dateless row, got %d", len(entries))
	}

	// 1775692800000 ms is 2026-04-09T00:00:00Z.
	wantStart := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	if !entries[0].Start.Equal(wantStart) {
		t.Fatalf("expected epoch-millis start %v, got %v", wantStart, entries[0].Start)
	}
	if entries[0].TournamentID != "014" || entries[0].Name != "Masters Tournament" {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if !entries[1].Start.Equal(time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected ISO start parsed, got %v", entries[1].Start)
	}
}

func TestParseScheduleDocument_StringYear(t *testing.T) {
	raw := []byte(`{"year": "2026", "schedule": []}`)

	year, entries, err := ParseScheduleDocument(raw)
	if err != nil {
		t.Fatalf("parse schedule failed: %v", err)
	}
	if year != 2026 {
		t.Fatalf("expected year 2026, got %d", year)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestParseScheduleDocument_MissingYear(t *testing.T) {
	if _, _, err := ParseScheduleDocument([]byte(`{"schedule": []}`)); err == nil {
		t.Fatal("expected error for schedule without a year")
	}
}

func TestParseEarningsDocument(t *testing.T) {
	raw := []byte(`{
		"tournId": "007",
		"year": 2025,
		"leaderboard": [
			{"playerId": "30925", "earnings": {"$numberInt": "4000000"}},
			{"playerId": "33448", "earnings": 2200000},
			{"playerId": "46717"}
		]
	}`)

	tournID, records, err := ParseEarningsDocument(raw)
	if err != nil {
		t.Fatalf("parse earnings failed: %v", err)
	}
	if tournID != "007" {
		t.Fatalf("expected tournament id 007, got %q", tournID)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after dropping the earningless row, got %d", len(records))
	}
	if records[0].Earnings != 4000000 || records[1].Earnings != 2200000 {
		t.Fatalf("unexpected earnings %+v", records)
	}
}
