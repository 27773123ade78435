package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/folio/internal/db"
)

func main() {
	var dbPath string
	var username string
	var password string
	flag.StringVar(&dbPath, "db", "folio.db", "sqlite db path")
	flag.StringVar(&username, "username", "admin", "admin username")
	flag.StringVar(&password, "password", "", "admin password (required)")
	flag.Parse()

	if password == "" {
		fmt.Fprintln(os.Stderr, "usage: initadmin -password <password> [-username admin] [-db folio.db]")
		os.Exit(2)
	}

	if err := db.Init(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "init db: %v\n", err)
		os.Exit(1)
	}

	var count int64
	if err := db.DB.Model(&db.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		fmt.Fprintf(os.Stderr, "check user: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Printf("user %q already exists, nothing to do\n", username)
		return
	}

	if err := db.EnsureUser(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("admin user %q created\n", username)
}
