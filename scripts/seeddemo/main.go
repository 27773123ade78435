package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/folio/internal/db"
)

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "folio.db", "sqlite db path")
	flag.Parse()

	if err := db.Init(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "init db: %v\n", err)
		os.Exit(1)
	}

	if err := seedDemoContent(); err != nil {
		fmt.Fprintf(os.Stderr, "seed demo content: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("demo content ready")
}
