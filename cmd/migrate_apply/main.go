package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"corvaxlab/internal/db"
	"corvaxlab/internal/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Lists or applies the embedded schema migrations. The server applies them
// at startup too; this tool is for running them ahead of a deploy.
func main() {
	apply := flag.Bool("apply", false, "apply pending migrations")
	flag.Parse()

	if !*apply {
		entries, err := migrations.FS.ReadDir(".")
		if err != nil {
			log.Fatalf("read migrations: %v", err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	fmt.Println("migrations up to date")
}
