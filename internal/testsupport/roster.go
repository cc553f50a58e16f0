package testsupport

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"karamove/internal/roster"
)

// Location labels as they appear in the spreadsheet export.
const (
	OnSiteLabel = "Présentiel"
	RemoteLabel = "En ligne"
)

// Participant is one spreadsheet row in export column order.
type Participant struct {
	Position  string
	Group     string
	Location  string
	Link      string
	FirstName string
	LastName  string
	Discord   string
	Profile   string
	Level     string
	Preferred string
	Known     string
}

func (p Participant) cells() []string {
	return []string{
		p.Position, p.Group, p.Location, p.Link, p.FirstName, p.LastName,
		p.Discord, p.Profile, p.Level, p.Preferred, p.Known,
	}
}

// SampleParticipants returns a two-group roster: Alpha at position 1 with two
// members and Beta at position 2 with one.
func SampleParticipants() []Participant {
	return []Participant{
		{"1", "Alpha", OnSiteLabel, "a", "Jean", "Dupont", "jd", "Gobelins", "1", "", ""},
		{"1", "Alpha", OnSiteLabel, "a", "Léa", "Durand", "lea", "Autodidacte", "2", "2D digitale", "2D digitale, 3D"},
		{"2", "Beta", RemoteLabel, "b", "Chloé", "Martin", "chloe", "Gobelins", "3", "Stop-motion", "Libre"},
	}
}

// WriteRoster writes a CSV export with the standard header followed by the
// participants and returns its path.
func WriteRoster(t testing.TB, dir string, participants ...Participant) string {
	t.Helper()
	path := filepath.Join(dir, "roster.csv")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create roster: %v", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(roster.Columns); err != nil {
		t.Fatalf("write roster header: %v", err)
	}
	for _, participant := range participants {
		if err := w.Write(participant.cells()); err != nil {
			t.Fatalf("write roster row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush roster: %v", err)
	}
	return path
}

// WriteMusicInfo writes a minimal ffprobe document reporting duration and
// returns its path.
func WriteMusicInfo(t testing.TB, dir, duration string) string {
	t.Helper()
	path := filepath.Join(dir, "music.json")
	body := fmt.Sprintf(`{"format":{"filename":"music.ogg","duration":%q}}`, duration)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write music info: %v", err)
	}
	return path
}
