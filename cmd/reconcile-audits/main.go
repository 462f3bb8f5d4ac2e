// Command reconcile-audits fails presence audits that have been open longer
// than the stale cutoff. Audits are left PENDING or RUNNING when the process
// that owned them died; this marks them FAILED so a new audit can be created.
//
// Usage:
//
//	reconcile-audits [-stale-after 1h]
//
// Requires DATABASE_DSN to be set; PRESENCE_STALE_AFTER overrides the
// flag default.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/presenceaudit"
)

func main() {
	staleDefault := time.Hour
	if v := os.Getenv("PRESENCE_STALE_AFTER"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			staleDefault = d
		}
	}
	staleAfter := flag.Duration("stale-after", staleDefault, "fail audits open longer than this")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := presenceaudit.New(pool)

	cutoff := time.Now().UTC().Add(-*staleAfter)
	n, err := repo.FailStale(ctx, cutoff, "reconciled: runner lost")
	if err != nil {
		log.Fatalf("reconcile audits: %v", err)
	}

	fmt.Printf("Failed %d stale presence audits (older than %s).\n", n, *staleAfter)
}
