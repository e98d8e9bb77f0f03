package main

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/accesskit-go/capture"
)

//go:embed schema.sql
var schemaSQL string

type exportOptions struct {
	*rootOptions
	DB string
}

func newExportCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &exportOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <capture-file>",
		Short: "Load a capture file into a SQLite database",
		Long: `Export replays a capture file and stores every record, the nodes it
pushed and the per-node changes it caused. Exporting the same file twice adds
a second capture row.`,
		Example: `  accesskit-capture export /tmp/capture.jsonl --db captures.db
  sqlite3 captures.db "SELECT seq, kind, node_id FROM changes"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := capture.ReadFile(args[0])
			if err != nil {
				return err
			}
			id, err := runExport(cmd.Context(), opts, args[0], records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records as capture %d\n", len(records), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite database path (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// openDB opens or creates the export database and applies the schema.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite allows one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// runExport writes records in a single transaction and returns the new
// capture id.
func runExport(ctx context.Context, opts *exportOptions, path string, records []capture.Record) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := openDB(opts.DB)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		"INSERT INTO captures (path, exported_at, records) VALUES (?, ?, ?)",
		path, time.Now().UTC().Format(time.RFC3339), len(records))
	if err != nil {
		return 0, fmt.Errorf("insert capture: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, step := range capture.Replay(records) {
		seq := i + 1
		if err := exportStep(ctx, tx, id, seq, step); err != nil {
			return 0, fmt.Errorf("record %d (line %d): %w", seq, step.Record.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	opts.log.Debug("capture exported",
		zap.String("path", path),
		zap.Int64("capture", id),
		zap.Int("records", len(records)))
	return id, nil
}

func exportStep(ctx context.Context, tx *sql.Tx, id int64, seq int, step capture.Step) error {
	u := step.Record.Update

	var root sql.NullInt64
	if u.Tree != nil {
		root = sql.NullInt64{Int64: int64(u.Tree.Root), Valid: true}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO records (capture_id, seq, line, focus, tree_root, node_count) VALUES (?, ?, ?, ?, ?, ?)",
		id, seq, step.Record.Line, int64(u.Focus), root, len(u.Nodes)); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	for _, e := range u.Nodes {
		data, err := json.Marshal(e.Node)
		if err != nil {
			return fmt.Errorf("encode node %d: %w", e.ID, err)
		}
		// A later push of the same id within one update wins, as in Apply.
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO nodes (capture_id, seq, node_id, role, data) VALUES (?, ?, ?, ?, ?)",
			id, seq, int64(e.ID), e.Node.Role().String(), string(data)); err != nil {
			return fmt.Errorf("insert node %d: %w", e.ID, err)
		}
	}

	insert := func(node uint64, kind string, props sql.NullString) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO changes (capture_id, seq, node_id, kind, properties) VALUES (?, ?, ?, ?, ?)",
			id, seq, int64(node), kind, props)
		return err
	}
	d := step.Delta
	for _, n := range d.Added {
		if err := insert(uint64(n), "added", sql.NullString{}); err != nil {
			return fmt.Errorf("insert change: %w", err)
		}
	}
	for _, n := range d.Removed {
		if err := insert(uint64(n), "removed", sql.NullString{}); err != nil {
			return fmt.Errorf("insert change: %w", err)
		}
	}
	for _, c := range d.Changed {
		props := sql.NullString{String: strings.Join(c.Properties, ","), Valid: true}
		if err := insert(uint64(c.ID), "changed", props); err != nil {
			return fmt.Errorf("insert change: %w", err)
		}
	}
	return nil
}
