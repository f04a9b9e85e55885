package storage

import (
	"path/filepath"
	"testing"
)

func TestTouchStudentAndList(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "test.db"))

	if err := TouchStudent("alice"); err != nil {
		t.Fatalf("TouchStudent failed: %v", err)
	}
	if err := TouchStudent("alice"); err != nil {
		t.Fatalf("second TouchStudent failed: %v", err)
	}
	if err := TouchStudent("bob"); err != nil {
		t.Fatalf("TouchStudent(bob) failed: %v", err)
	}

	students, err := ListStudents()
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("got %d students, want 2", len(students))
	}

	hits := map[string]int{}
	for _, s := range students {
		hits[s.Identifier] = s.Hits
		if s.FirstSeen.IsZero() || s.LastSeen.IsZero() {
			t.Errorf("student %q has zero timestamps", s.Identifier)
		}
		if s.LastSeen.Before(s.FirstSeen) {
			t.Errorf("student %q last_seen before first_seen", s.Identifier)
		}
	}
	if hits["alice"] != 2 {
		t.Errorf("alice hits = %d, want 2", hits["alice"])
	}
	if hits["bob"] != 1 {
		t.Errorf("bob hits = %d, want 1", hits["bob"])
	}
}
