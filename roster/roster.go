package roster

import (
	"encoding/json"
	"fmt"
	"os"
)

// Section is one class roster entry: a section code, the professor
// teaching it, and the ordered student list.
type Section struct {
	Code      string   `json:"code"`
	Professor string   `json:"professor"`
	Students  []string `json:"students"`
}

// HasStudent reports whether name is on the section's roster.
func (s Section) HasStudent(name string) bool {
	for _, student := range s.Students {
		if student == name {
			return true
		}
	}
	return false
}

// Store holds the static section rosters. It is read-only after
// construction; attendance records reference it but never mutate it.
type Store struct {
	sections []Section
	byCode   map[string]int
}

// New builds a Store from the given sections and validates them.
func New(sections []Section) (*Store, error) {
	byCode := make(map[string]int, len(sections))
	for i, section := range sections {
		if section.Code == "" {
			return nil, fmt.Errorf("section %d has an empty code", i)
		}
		if section.Professor == "" {
			return nil, fmt.Errorf("section %q has no professor", section.Code)
		}
		if _, exists := byCode[section.Code]; exists {
			return nil, fmt.Errorf("duplicate section %q", section.Code)
		}
		seen := make(map[string]bool, len(section.Students))
		for _, student := range section.Students {
			if student == "" {
				return nil, fmt.Errorf("section %q has an empty student name", section.Code)
			}
			if seen[student] {
				return nil, fmt.Errorf("section %q lists student %q twice", section.Code, student)
			}
			seen[student] = true
		}
		byCode[section.Code] = i
	}
	return &Store{sections: sections, byCode: byCode}, nil
}

// Load reads section rosters from a JSON file containing an array of
// Section objects.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading roster file: %w", err)
	}
	var sections []Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("error parsing roster file %s: %w", path, err)
	}
	return New(sections)
}

// Default returns the built-in sample roster, used when no roster file
// is configured.
func Default() *Store {
	students := []string{
		"Evan Josh Landong",
		"Patricia Deeone Macainag",
		"Aethan Carlo Tabungar",
	}
	store, err := New([]Section{
		{Code: "CPE106-4_E02_1T2526", Professor: "Engr. Dionis Padilla", Students: students},
		{Code: "CPE106L-4_E01_1T2526", Professor: "Engr. Erinn Chloe Sanchez", Students: students},
	})
	if err != nil {
		panic(err)
	}
	return store
}

// Section returns the roster entry for the given section code.
func (s *Store) Section(code string) (Section, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return Section{}, false
	}
	return s.sections[i], true
}

// Sections returns all sections in declaration order.
func (s *Store) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Professor returns the professor for the given section code.
func (s *Store) Professor(code string) (string, bool) {
	section, ok := s.Section(code)
	if !ok {
		return "", false
	}
	return section.Professor, true
}
