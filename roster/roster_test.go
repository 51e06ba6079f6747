package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_LookupAndMembership(t *testing.T) {
	store, err := New([]Section{
		{Code: "CS101", Professor: "Dr. Lee", Students: []string{"alice", "bob"}},
		{Code: "CS102", Professor: "Dr. Kim", Students: []string{"carol"}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	section, ok := store.Section("CS101")
	if !ok {
		t.Fatal("CS101 not found")
	}
	if section.Professor != "Dr. Lee" {
		t.Fatalf("professor = %q", section.Professor)
	}
	if !section.HasStudent("alice") || section.HasStudent("carol") {
		t.Fatal("membership check wrong")
	}

	if _, ok := store.Section("CS999"); ok {
		t.Fatal("unknown section resolved")
	}

	professor, ok := store.Professor("CS102")
	if !ok || professor != "Dr. Kim" {
		t.Fatalf("Professor(CS102) = %q, %v", professor, ok)
	}
}

func TestNew_RejectsBadRosters(t *testing.T) {
	cases := []struct {
		name     string
		sections []Section
	}{
		{"duplicate section", []Section{
			{Code: "CS101", Professor: "Dr. Lee"},
			{Code: "CS101", Professor: "Dr. Kim"},
		}},
		{"empty code", []Section{{Code: "", Professor: "Dr. Lee"}}},
		{"missing professor", []Section{{Code: "CS101"}}},
		{"duplicate student", []Section{
			{Code: "CS101", Professor: "Dr. Lee", Students: []string{"alice", "alice"}},
		}},
		{"empty student name", []Section{
			{Code: "CS101", Professor: "Dr. Lee", Students: []string{""}},
		}},
	}
	for _, tc := range cases {
		if _, err := New(tc.sections); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoad_FromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	content := `[
        {"code": "CS101", "professor": "Dr. Lee", "students": ["alice", "bob"]}
    ]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write roster file: %v", err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	section, ok := store.Section("CS101")
	if !ok {
		t.Fatal("CS101 not found after load")
	}
	if len(section.Students) != 2 || section.Students[0] != "alice" {
		t.Fatalf("students = %v", section.Students)
	}
}

func TestLoad_MissingAndMalformedFiles(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("not json"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestDefault_SampleRoster(t *testing.T) {
	store := Default()
	sections := store.Sections()
	if len(sections) == 0 {
		t.Fatal("default roster is empty")
	}
	for _, section := range sections {
		if section.Professor == "" || len(section.Students) == 0 {
			t.Fatalf("section %q incomplete", section.Code)
		}
	}
}
