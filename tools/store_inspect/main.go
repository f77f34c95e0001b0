package main

import (
	"flag"
	"fmt"
	"guild-warden/internal"
	"guild-warden/repositories"
	"log"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	table := flag.String("table", "", "Table to dump (stats or config), both when empty")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	store := repositories.NewRecordStore(db, logs.GetLoggerFromLevel(slog.LevelWarn))
	var tables []repositories.Table
	if *table != "" {
		tables = append(tables, repositories.Table(*table))
	}
	if err = internal.RenderTables(os.Stdout, store, tables...); err != nil {
		log.Fatal(err)
	}
}

// openDB opens the store read-only so that it can be inspected while the bot runs.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}
