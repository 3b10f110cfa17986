package main

import (
	"context"
	"database/sql"
	"math"

	"github.com/jtanningbed/nfl-play-animate/models"
)

// querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func getWeeks(ctx context.Context, q querier) ([]int, error) {
	rows, err := q.QueryContext(ctx, "SELECT DISTINCT week FROM games ORDER BY week")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := []int{}
	for rows.Next() {
		var week int
		if err := rows.Scan(&week); err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	return weeks, rows.Err()
}

func getGamesByWeek(ctx context.Context, q querier, week int) ([]models.Game, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT gameId, homeTeamAbbr, visitorTeamAbbr FROM games WHERE week = ? ORDER BY gameId", week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGames(rows)
}

func getPlaysByGame(ctx context.Context, q querier, gameID int64) ([]models.PlaySummary, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT playId, playDescription, quarter, gameClock FROM plays WHERE gameId = ? ORDER BY quarter, gameClock DESC", gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := []models.PlaySummary{}
	for rows.Next() {
		var p models.PlaySummary
		if err := rows.Scan(&p.PlayID, &p.PlayDescription, &p.Quarter, &p.GameClock); err != nil {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// getPlayData loads the game, play and tracking rows of one play. Missing ids
// give empty slices, not an error.
func getPlayData(ctx context.Context, q querier, gameID, playID int64) (*models.PlayData, error) {
	data := &models.PlayData{}

	gameRows, err := q.QueryContext(ctx,
		"SELECT gameId, homeTeamAbbr, visitorTeamAbbr FROM games WHERE gameId = ?", gameID)
	if err != nil {
		return nil, err
	}
	data.GameData, err = scanGames(gameRows)
	gameRows.Close()
	if err != nil {
		return nil, err
	}

	data.PlayData, err = queryPlays(ctx, q, gameID, playID)
	if err != nil {
		return nil, err
	}

	data.TrackingData, err = queryTracking(ctx, q, gameID, playID)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func scanGames(rows *sql.Rows) ([]models.Game, error) {
	games := []models.Game{}
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.GameID, &g.HomeTeamAbbr, &g.VisitorTeamAbbr); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func queryPlays(ctx context.Context, q querier, gameID, playID int64) ([]models.Play, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT gameId, playId, playDescription, down, quarter, absoluteYardlineNumber, yardsToGo
		FROM plays WHERE gameId = ? AND playId = ?`, gameID, playID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := []models.Play{}
	for rows.Next() {
		var p models.Play
		if err := rows.Scan(&p.GameID, &p.PlayID, &p.PlayDescription, &p.Down, &p.Quarter, &p.AbsoluteYardlineNumber, &p.YardsToGo); err != nil {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

func queryTracking(ctx context.Context, q querier, gameID, playID int64) ([]models.TrackingRow, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT gameId, playId, nflId, playDirection, club, frameId, s, a, dir, dis, displayName, x, y
		FROM tracking_data WHERE gameId = ? AND playId = ?`, gameID, playID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracking := []models.TrackingRow{}
	for rows.Next() {
		var (
			t     models.TrackingRow
			nflID sql.NullInt64
			dir   sql.NullFloat64
		)
		if err := rows.Scan(&t.GameID, &t.PlayID, &nflID, &t.PlayDirection, &t.Club, &t.FrameID,
			&t.S, &t.A, &dir, &t.Dis, &t.DisplayName, &t.X, &t.Y); err != nil {
			return nil, err
		}
		t.NflID = nflID.Int64
		t.Dir = sanitizeFloat(dir)
		tracking = append(tracking, t)
	}
	return tracking, rows.Err()
}

// sanitizeFloat maps NULL, NaN and ±Inf to 0.
func sanitizeFloat(v sql.NullFloat64) float64 {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return 0
	}
	return v.Float64
}
