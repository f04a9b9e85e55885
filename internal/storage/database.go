package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

func InitDB(path string) {
	var err error

	if path == "" {
		path = "./dataset_generator.db"
	}
	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database: ", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createStudentsTable := `
	CREATE TABLE IF NOT EXISTS students (
			"identifier" TEXT PRIMARY KEY,
			"first_seen" DATETIME NOT NULL,
			"last_seen" DATETIME NOT NULL,
			"hits" INTEGER NOT NULL DEFAULT 0
	);`

	if _, err := db.Exec(createStudentsTable); err != nil {
		log.Fatalf("InitDB(): Failed to create students table: %v", err)
	}
	log.Println("InitDB(): Init and create table successfully!")
}
