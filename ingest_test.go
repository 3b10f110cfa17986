package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jtanningbed/nfl-play-animate/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestIngest(t *testing.T) {
	dir := t.TempDir()
	games := writeFile(t, dir, "games.csv",
		"gameId,season,week,gameDate,gameTimeEastern,homeTeamAbbr,visitorTeamAbbr\n"+
			"2022091100,2022,1,09/11/2022,13:00:00,KC,SF\n")
	plays := writeFile(t, dir, "plays.csv",
		"gameId,playId,ballCarrierId,playDescription,quarter,down,yardsToGo,possessionTeam,gameClock,absoluteYardlineNumber\n"+
			"2022091100,56,1,\"P.Mahomes pass short right, complete\",1,3,7,KC,9:45,35\n"+
			"2022091100,80,NA,I.Pacheco up the middle,1,1,10,KC,10:02,40\n")
	week1 := writeFile(t, dir, "tracking_week_1.csv",
		"gameId,playId,nflId,displayName,frameId,time,jerseyNumber,club,playDirection,x,y,s,a,dis,o,dir,event\n"+
			"2022091100,56,1,P.Mahomes,1,t,15,KC,right,30,20,1.5,0.5,0.1,90,90,NA\n"+
			"2022091100,56,NA,football,1,t,NA,football,right,35,26.6,0,0,0,NA,NA,NA\n")
	week2 := writeFile(t, dir, "tracking_week_2.csv",
		"gameId,playId,nflId,displayName,frameId,time,jerseyNumber,club,playDirection,x,y,s,a,dis,o,dir,event\n"+
			"2022091100,56,2,N.Bosa,1,t,97,SF,right,40,25,2.5,1.5,0.2,270,270,NA\n")

	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	defer db.Close()

	counts, err := ingest(context.Background(), db, []ingestSource{
		{path: games, table: gamesTable},
		{path: plays, table: playsTable},
		{path: week1, table: trackingTable},
		{path: week2, table: trackingTable},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if counts["games"] != 1 || counts["plays"] != 2 || counts["tracking_data"] != 3 {
		t.Errorf("counts = %v", counts)
	}

	ctx := context.Background()
	summaries, err := getPlaysByGame(ctx, db, 2022091100)
	if err != nil {
		t.Fatalf("getPlaysByGame: %v", err)
	}
	if len(summaries) != 2 || summaries[0].PlayID != 80 || summaries[0].GameClock != "10:02" || summaries[1].GameClock != "09:45" {
		t.Errorf("plays = %+v", summaries)
	}

	data, err := getPlayData(ctx, db, 2022091100, 56)
	if err != nil {
		t.Fatalf("getPlayData: %v", err)
	}
	if len(data.PlayData) != 1 || data.PlayData[0].PlayDescription != "P.Mahomes pass short right, complete" {
		t.Errorf("play = %+v", data.PlayData)
	}
	if len(data.TrackingData) != 3 {
		t.Fatalf("got %d tracking rows, want 3", len(data.TrackingData))
	}
	for _, row := range data.TrackingData {
		if row.Club == models.Football && (row.NflID != 0 || row.Dir != 0) {
			t.Errorf("ball row = %+v", row)
		}
	}
}

func TestIngestMissingColumnRollsBack(t *testing.T) {
	dir := t.TempDir()
	games := writeFile(t, dir, "games.csv",
		"gameId,season,week,gameDate,homeTeamAbbr,visitorTeamAbbr\n2022091100,2022,1,09/11/2022,KC,SF\n")
	broken := writeFile(t, dir, "plays.csv", "gameId,playId\n2022091100,56\n")

	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	defer db.Close()

	_, err = ingest(context.Background(), db, []ingestSource{
		{path: games, table: gamesTable},
		{path: broken, table: playsTable},
	})
	if err == nil || !strings.Contains(err.Error(), "missing column") {
		t.Fatalf("err = %v, want missing column", err)
	}

	weeks, err := getWeeks(context.Background(), db)
	if err != nil {
		t.Fatalf("getWeeks: %v", err)
	}
	if len(weeks) != 0 {
		t.Errorf("weeks = %v, want none after rollback", weeks)
	}
}

func TestIngestMissingFile(t *testing.T) {
	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	defer db.Close()

	_, err = ingest(context.Background(), db, []ingestSource{
		{path: filepath.Join(t.TempDir(), "nope.csv"), table: gamesTable},
	})
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestConvertCell(t *testing.T) {
	tests := []struct {
		cell string
		kind columnKind
		want any
	}{
		{"NA", intColumn, nil},
		{"", realColumn, nil},
		{"42", intColumn, int64(42)},
		{"42.0", intColumn, int64(42)},
		{"1.25", realColumn, 1.25},
		{"KC", textColumn, "KC"},
		{"7:05", clockColumn, "07:05"},
		{"12:30", clockColumn, "12:30"},
	}

	for _, tt := range tests {
		got, err := convertCell(tt.cell, tt.kind)
		if err != nil {
			t.Errorf("convertCell(%q): %v", tt.cell, err)
			continue
		}
		if got != tt.want {
			t.Errorf("convertCell(%q) = %#v, want %#v", tt.cell, got, tt.want)
		}
	}

	if _, err := convertCell("abc", realColumn); err == nil {
		t.Error("want error for non-numeric real")
	}
}

func TestIngestTwiceReplacesTracking(t *testing.T) {
	dir := t.TempDir()
	games := writeFile(t, dir, "games.csv",
		"gameId,season,week,gameDate,homeTeamAbbr,visitorTeamAbbr\n2022091100,2022,1,09/11/2022,KC,SF\n")
	plays := writeFile(t, dir, "plays.csv",
		"gameId,playId,playDescription,quarter,down,yardsToGo,gameClock,absoluteYardlineNumber\n"+
			"2022091100,56,P.Mahomes pass short right,1,3,7,9:45,35\n")
	tracking := writeFile(t, dir, "tracking_week_1.csv",
		"gameId,playId,nflId,displayName,frameId,club,playDirection,x,y,s,a,dis,dir\n"+
			"2022091100,56,1,P.Mahomes,1,KC,right,30,20,1.5,0.5,0.1,90\n"+
			"2022091100,56,2,N.Bosa,1,SF,right,40,25,2.5,1.5,0.2,270\n"+
			"2022091100,56,NA,football,1,football,right,35,26.6,0,0,0,NA\n")
	sources := []ingestSource{
		{path: games, table: gamesTable},
		{path: plays, table: playsTable},
		{path: tracking, table: trackingTable},
	}

	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if _, err := ingest(context.Background(), db, sources); err != nil {
			t.Fatalf("ingest run %d: %v", i+1, err)
		}
	}

	data, err := getPlayData(context.Background(), db, 2022091100, 56)
	if err != nil {
		t.Fatalf("getPlayData: %v", err)
	}
	if len(data.TrackingData) != 3 {
		t.Errorf("tracking rows after re-ingest = %d, want 3", len(data.TrackingData))
	}
	if len(data.PlayData) != 1 {
		t.Errorf("play rows after re-ingest = %d, want 1", len(data.PlayData))
	}
}
