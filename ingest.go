package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

const ingestBatchSize = 500

type columnKind int

const (
	textColumn columnKind = iota
	intColumn
	realColumn
	clockColumn
)

type column struct {
	name string
	kind columnKind
}

// csvTable maps a Big Data Bowl CSV onto one table. The CSV headers share
// the table's column names.
type csvTable struct {
	name    string
	columns []column
	replace bool
	// scope names leading columns whose stored rows are dropped the first
	// time an ingest writes that key, so a reloaded file replaces its rows.
	scope int
}

var (
	gamesTable = csvTable{
		name: "games",
		columns: []column{
			{"gameId", intColumn},
			{"season", intColumn},
			{"week", intColumn},
			{"gameDate", textColumn},
			{"homeTeamAbbr", textColumn},
			{"visitorTeamAbbr", textColumn},
		},
		replace: true,
	}
	playsTable = csvTable{
		name: "plays",
		columns: []column{
			{"gameId", intColumn},
			{"playId", intColumn},
			{"playDescription", textColumn},
			{"quarter", intColumn},
			{"down", intColumn},
			{"yardsToGo", intColumn},
			{"absoluteYardlineNumber", intColumn},
			{"gameClock", clockColumn},
		},
		replace: true,
	}
	trackingTable = csvTable{
		name: "tracking_data",
		columns: []column{
			{"gameId", intColumn},
			{"playId", intColumn},
			{"nflId", intColumn},
			{"displayName", textColumn},
			{"frameId", intColumn},
			{"club", textColumn},
			{"playDirection", textColumn},
			{"x", realColumn},
			{"y", realColumn},
			{"s", realColumn},
			{"a", realColumn},
			{"dis", realColumn},
			{"dir", realColumn},
		},
		scope: 2,
	}
)

func (t csvTable) insertSQL() string {
	names := make([]string, len(t.columns))
	marks := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
		marks[i] = "?"
	}
	verb := "INSERT"
	if t.replace {
		verb = "INSERT OR REPLACE"
	}
	return fmt.Sprintf("%s INTO %s (%s) VALUES (%s)", verb, t.name, strings.Join(names, ", "), strings.Join(marks, ", "))
}

func (t csvTable) deleteSQL() string {
	conds := make([]string, t.scope)
	for i, c := range t.columns[:t.scope] {
		conds[i] = c.name + " = ?"
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s", t.name, strings.Join(conds, " AND "))
}

type ingestSource struct {
	path  string
	table csvTable
}

type ingestBatch struct {
	table csvTable
	rows  [][]any
}

// ingest loads every source into db in a single transaction. Files are
// parsed concurrently; rows are written by one goroutine. It returns the
// number of rows written per table.
func ingest(ctx context.Context, db *sql.DB, sources []ingestSource) (map[string]int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	batches := make(chan ingestBatch)

	producers, pctx := errgroup.WithContext(gctx)
	for _, src := range sources {
		producers.Go(func() error {
			return readCSV(pctx, src, batches)
		})
	}
	g.Go(func() error {
		defer close(batches)
		return producers.Wait()
	})

	counts := make(map[string]int)
	g.Go(func() error {
		return writeBatches(gctx, tx, batches, counts)
	})

	if err := g.Wait(); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return counts, nil
}

func writeBatches(ctx context.Context, tx *sql.Tx, batches <-chan ingestBatch, counts map[string]int) error {
	stmts := make(map[string]*sql.Stmt)
	defer func() {
		for _, stmt := range stmts {
			stmt.Close()
		}
	}()
	prepare := func(query string) (*sql.Stmt, error) {
		if stmt, ok := stmts[query]; ok {
			return stmt, nil
		}
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return nil, err
		}
		stmts[query] = stmt
		return stmt, nil
	}

	// scoped keys already cleared in this run
	cleared := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, ok := <-batches:
			if !ok {
				return nil
			}
			insert, err := prepare(b.table.insertSQL())
			if err != nil {
				return err
			}
			for _, row := range b.rows {
				if b.table.scope > 0 {
					key := fmt.Sprint(b.table.name, row[:b.table.scope])
					if !cleared[key] {
						del, err := prepare(b.table.deleteSQL())
						if err != nil {
							return err
						}
						if _, err := del.ExecContext(ctx, row[:b.table.scope]...); err != nil {
							return fmt.Errorf("clear %s: %w", b.table.name, err)
						}
						cleared[key] = true
					}
				}
				if _, err := insert.ExecContext(ctx, row...); err != nil {
					return fmt.Errorf("insert into %s: %w", b.table.name, err)
				}
			}
			counts[b.table.name] += len(b.rows)
		}
	}
}

func readCSV(ctx context.Context, src ingestSource, out chan<- ingestBatch) error {
	f, err := os.Open(src.path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("📥 Reading %s into %s\n", src.path, src.table.name)
	return parseCSV(ctx, f, src.path, src.table, out)
}

func parseCSV(ctx context.Context, r io.Reader, label string, table csvTable, out chan<- ingestBatch) error {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", label, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	positions := make([]int, len(table.columns))
	for i, c := range table.columns {
		pos, ok := index[c.name]
		if !ok {
			return fmt.Errorf("%s: missing column %q", label, c.name)
		}
		positions[i] = pos
	}

	send := func(rows [][]any) error {
		select {
		case out <- ingestBatch{table: table, rows: rows}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	rows := make([][]any, 0, ingestBatchSize)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}

		row := make([]any, len(table.columns))
		for i, c := range table.columns {
			v, err := convertCell(record[positions[i]], c.kind)
			if err != nil {
				return fmt.Errorf("%s line %d column %s: %w", label, line, c.name, err)
			}
			row[i] = v
		}
		rows = append(rows, row)

		if len(rows) == ingestBatchSize {
			if err := send(rows); err != nil {
				return err
			}
			rows = make([][]any, 0, ingestBatchSize)
		}
	}
	if len(rows) > 0 {
		return send(rows)
	}
	return nil
}

// convertCell turns a CSV cell into a column value. NA and empty cells are
// NULL.
func convertCell(cell string, kind columnKind) (any, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "NA" {
		return nil, nil
	}

	switch kind {
	case intColumn:
		if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, err
		}
		return int64(f), nil
	case realColumn:
		return strconv.ParseFloat(cell, 64)
	case clockColumn:
		return padClock(cell), nil
	default:
		return cell, nil
	}
}

// padClock zero-pads the minutes of an M:SS game clock so clocks sort as
// text.
func padClock(clock string) string {
	minutes, seconds, ok := strings.Cut(clock, ":")
	if !ok || len(minutes) != 1 {
		return clock
	}
	return "0" + minutes + ":" + seconds
}
