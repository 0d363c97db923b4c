package golfdata

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

// The live golf data API serves Mongo extended-JSON documents: numbers
// arrive as {"$numberInt":"5000"} or {"$numberLong":"..."} wrappers and
// dates as {"$date":{"$numberLong":"<epoch ms>"}}. The wrapper types
// below also accept plain JSON numbers and strings so hand-written
// documents decode the same way.

type extNumber struct {
	value int64
	set   bool
}

func (n *extNumber) UnmarshalJSON(raw []byte) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if trimmed[0] == '{' {
		var wrapper struct {
			NumberInt    string `json:"$numberInt"`
			NumberLong   string `json:"$numberLong"`
			NumberDouble string `json:"$numberDouble"`
		}
		if err := sonic.Unmarshal(raw, &wrapper); err != nil {
			return fmt.Errorf("decode number wrapper: %w", err)
		}
		candidate := wrapper.NumberInt
		if candidate == "" {
			candidate = wrapper.NumberLong
		}
		if candidate == "" && wrapper.NumberDouble != "" {
			parsed, err := strconv.ParseFloat(wrapper.NumberDouble, 64)
			if err != nil {
				return fmt.Errorf("parse $numberDouble %q: %w", wrapper.NumberDouble, err)
			}
			n.value = int64(parsed)
			n.set = true
			return nil
		}
		if candidate == "" {
			return nil
		}
		parsed, err := strconv.ParseInt(candidate, 10, 64)
		if err != nil {
			return fmt.Errorf("parse extended number %q: %w", candidate, err)
		}
		n.value = parsed
		n.set = true
		return nil
	}

	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(trimmed)
		if err != nil {
			return fmt.Errorf("unquote number %s: %w", trimmed, err)
		}
		unquoted = strings.TrimSpace(unquoted)
		if unquoted == "" {
			return nil
		}
		parsed, err := strconv.ParseInt(unquoted, 10, 64)
		if err != nil {
			return fmt.Errorf("parse number %q: %w", unquoted, err)
		}
		n.value = parsed
		n.set = true
		return nil
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fmt.Errorf("parse number %s: %w", trimmed, err)
	}
	n.value = int64(parsed)
	n.set = true
	return nil
}

type extDate struct {
	value time.Time
	set   bool
}

func (d *extDate) UnmarshalJSON(raw []byte) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if trimmed[0] == '{' {
		var wrapper struct {
			Date extNumber `json:"$date"`
		}
		if err := sonic.Unmarshal(raw, &wrapper); err == nil && wrapper.Date.set {
			d.value = time.UnixMilli(wrapper.Date.value).UTC()
			d.set = true
			return nil
		}
		var textWrapper struct {
			Date string `json:"$date"`
		}
		if err := sonic.Unmarshal(raw, &textWrapper); err != nil {
			return fmt.Errorf("decode date wrapper: %w", err)
		}
		return d.parseText(textWrapper.Date)
	}

	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(trimmed)
		if err != nil {
			return fmt.Errorf("unquote date %s: %w", trimmed, err)
		}
		return d.parseText(unquoted)
	}

	var millis extNumber
	if err := millis.UnmarshalJSON(raw); err != nil {
		return err
	}
	if millis.set {
		d.value = time.UnixMilli(millis.value).UTC()
		d.set = true
	}
	return nil
}

func (d *extDate) parseText(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			d.value = parsed.UTC()
			d.set = true
			return nil
		}
	}
	return fmt.Errorf("unsupported date format %q", raw)
}

type earningsDocument struct {
	TournID     string           `json:"tournId"`
	Year        extNumber        `json:"year"`
	Leaderboard []leaderboardRow `json:"leaderboard"`
}

type leaderboardRow struct {
	PlayerID  string    `json:"playerId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Earnings  extNumber `json:"earnings"`
}

type tournamentDocument struct {
	TournID string             `json:"tournId"`
	Name    string             `json:"name"`
	Players []tournamentPlayer `json:"players"`
}

type tournamentPlayer struct {
	PlayerID  string `json:"playerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type scheduleDocument struct {
	Year     extNumber     `json:"year"`
	Schedule []scheduleRow `json:"schedule"`
}

type scheduleRow struct {
	TournID string `json:"tournId"`
	Name    string `json:"name"`
	Date    struct {
		Start extDate `json:"start"`
		End   extDate `json:"end"`
	} `json:"date"`
}

func mapLeaderboard(rows []leaderboardRow) []usecase.EarningsRecord {
	out := make([]usecase.EarningsRecord, 0, len(rows))
	for _, row := range rows {
		playerID := strings.TrimSpace(row.PlayerID)
		if playerID == "" || !row.Earnings.set {
			continue
		}
		out = append(out, usecase.EarningsRecord{
			GolferID: playerID,
			Earnings: row.Earnings.value,
		})
	}
	return out
}

func mapFieldPlayers(players []tournamentPlayer) []usecase.FieldGolfer {
	out := make([]usecase.FieldGolfer, 0, len(players))
	for _, player := range players {
		playerID := strings.TrimSpace(player.PlayerID)
		name := strings.TrimSpace(strings.TrimSpace(player.FirstName) + " " + strings.TrimSpace(player.LastName))
		if playerID == "" || name == "" {
			continue
		}
		out = append(out, usecase.FieldGolfer{ID: playerID, Name: name})
	}
	return out
}

// ParseEarningsDocument decodes a raw provider earnings document, as
// pushed to the manual load endpoint. Returns the tournament id the
// document names and its mapped leaderboard.
func ParseEarningsDocument(raw []byte) (string, []usecase.EarningsRecord, error) {
	var doc earningsDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return "", nil, fmt.Errorf("decode earnings document: %w", err)
	}

	tournID := strings.TrimSpace(doc.TournID)
	return tournID, mapLeaderboard(doc.Leaderboard), nil
}

// ParseScheduleDocument decodes a raw provider season schedule document.
// Rows without a start date are dropped; the caller filters by name.
func ParseScheduleDocument(raw []byte) (int, []usecase.ScheduleEntry, error) {
	var doc scheduleDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return 0, nil, fmt.Errorf("decode schedule document: %w", err)
	}
	if !doc.Year.set {
		return 0, nil, fmt.Errorf("schedule document has no year")
	}

	entries := make([]usecase.ScheduleEntry, 0, len(doc.Schedule))
	for _, row := range doc.Schedule {
		if !row.Date.Start.set {
			continue
		}
		entries = append(entries, usecase.ScheduleEntry{
			TournamentID: strings.TrimSpace(row.TournID),
			Name:         strings.TrimSpace(row.Name),
			Start:        row.Date.Start.value,
		})
	}

	return int(doc.Year.value), entries, nil
}
