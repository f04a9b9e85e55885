package storage

import (
	"time"

	"DatasetGenerator_StatisticsProject/internal/models"
)

// TouchStudent records that an identifier was served: inserts it on first
// contact, otherwise bumps last_seen and the hit counter.
func TouchStudent(identifier string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`
		INSERT INTO students(identifier, first_seen, last_seen, hits) VALUES(?, ?, ?, 1)
		ON CONFLICT(identifier) DO UPDATE SET last_seen = excluded.last_seen, hits = hits + 1`,
		identifier, now, now)
	return err
}

// ListStudents returns the roster, most recently active first.
func ListStudents() ([]models.Student, error) {
	rows, err := db.Query(`SELECT identifier, first_seen, last_seen, hits FROM students ORDER BY last_seen DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.Identifier, &s.FirstSeen, &s.LastSeen, &s.Hits); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
