package main

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS games (
		gameId INTEGER PRIMARY KEY,
		season INTEGER,
		week INTEGER,
		gameDate TEXT,
		homeTeamAbbr TEXT,
		visitorTeamAbbr TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS games_week ON games (week);`,

	`CREATE TABLE IF NOT EXISTS plays (
		gameId INTEGER,
		playId INTEGER,
		playDescription TEXT,
		quarter INTEGER,
		down INTEGER,
		yardsToGo INTEGER,
		absoluteYardlineNumber INTEGER,
		gameClock TEXT,
		PRIMARY KEY (gameId, playId)
	);`,

	// nflId and dir are NULL for the football
	`CREATE TABLE IF NOT EXISTS tracking_data (
		gameId INTEGER,
		playId INTEGER,
		nflId INTEGER,
		displayName TEXT,
		frameId INTEGER,
		club TEXT,
		playDirection TEXT,
		x REAL,
		y REAL,
		s REAL,
		a REAL,
		dis REAL,
		dir REAL
	);`,
	`CREATE INDEX IF NOT EXISTS tracking_play ON tracking_data (gameId, playId);`,
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// every connection to :memory: is its own database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return db, nil
}
