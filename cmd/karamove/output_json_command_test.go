package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"karamove/internal/services"
	"karamove/internal/testsupport"
)

const wantSampleJSON = `{"groups":[` +
	`{"name":"Alpha","location":0,"link":"a","timeInterval":null,"members":[` +
	`{"id":0,"name":"Jean Dupont","discordName":"jd","profile":1,"level":1,"preferredTechniques":[],"knownTechniques":[]},` +
	`{"id":1,"name":"Léa Durand","discordName":"lea","profile":0,"level":2,"preferredTechniques":[0],"knownTechniques":[0,2]}]},` +
	`{"name":"Beta","location":1,"link":"b","timeInterval":null,"members":[` +
	`{"id":2,"name":"Chloé Martin","discordName":"chloe","profile":1,"level":3,"preferredTechniques":[4],"knownTechniques":[5]}]}],` +
	`"profiles":["Autodidacte","Gobelins"],"time":null,"withMusic":false,"year":2024}`

func TestOutputJSONCommand(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	out := filepath.Join(base, "data.json")

	stdout, _, err := runCLI(t, "output-json", csvPath, "10", "20", out, "2024")
	if err != nil {
		t.Fatalf("output-json: %v", err)
	}
	requireContains(t, stdout, "Wrote 2 groups and 3 members")

	if got := readFile(t, out); got != wantSampleJSON {
		t.Fatalf("unexpected output:\n got %s\nwant %s", got, wantSampleJSON)
	}
}

func TestOutputJSONLegacyOrderWithTime(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	info := testsupport.WriteMusicInfo(t, base, "125.6")
	out := filepath.Join(base, "data.json")

	_, _, err := runCLI(t, csvPath, "10", "20", "output-json", out, "2024", "--with-time", "--with-music", "--music-info", info)
	if err != nil {
		t.Fatalf("output-json: %v", err)
	}

	var doc struct {
		Groups []struct {
			Name         string `json:"name"`
			TimeInterval struct {
				Position int `json:"position"`
				Start    int `json:"start"`
				End      int `json:"end"`
			} `json:"timeInterval"`
		} `json:"groups"`
		Time struct {
			MusicDuration int `json:"musicDuration"`
		} `json:"time"`
		WithMusic bool `json:"withMusic"`
		Year      int  `json:"year"`
	}
	if err := json.Unmarshal([]byte(readFile(t, out)), &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.Time.MusicDuration != 126 || !doc.WithMusic || doc.Year != 2024 {
		t.Fatalf("unexpected document header %+v", doc)
	}
	if len(doc.Groups) != 2 || doc.Groups[0].Name != "Alpha" || doc.Groups[1].Name != "Beta" {
		t.Fatalf("unexpected groups %+v", doc.Groups)
	}
	if w := doc.Groups[1].TimeInterval; w.Position != 2 || w.Start != 30 || w.End != 50 {
		t.Fatalf("unexpected Beta window %+v", w)
	}
}

func TestLegacyOrderWithConfigFlagWritesLogFile(t *testing.T) {
	base := setupCLITestEnv(t)
	cfg := testsupport.NewConfig(t, testsupport.WithLogFile())
	configPath := filepath.Join(base, "custom.toml")
	if err := os.WriteFile(configPath, []byte(fmt.Sprintf("[logging]\nfile = %q\n", cfg.Logging.File)), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	out := filepath.Join(base, "data.json")

	_, _, err := runCLI(t, "-c", configPath, csvPath, "10", "20", "output-json", out, "2024")
	if err != nil {
		t.Fatalf("output-json: %v", err)
	}
	if got := readFile(t, out); got != wantSampleJSON {
		t.Fatalf("unexpected output:\n got %s\nwant %s", got, wantSampleJSON)
	}
	requireContains(t, readFile(t, cfg.Logging.File), "lineup written")
}

func TestOutputJSONWithTimeRequiresMusicInfo(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	out := filepath.Join(base, "data.json")

	_, _, err := runCLI(t, "output-json", csvPath, "10", "20", out, "2024", "--with-time")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	requireContains(t, err.Error(), "--music-info must be given with --with-time")
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err %v", statErr)
	}
}

func TestOutputJSONRejectsBadArguments(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	out := filepath.Join(base, "data.json")

	tests := []struct {
		name string
		args []string
	}{
		{name: "intro", args: []string{"output-json", csvPath, "ten", "20", out, "2024"}},
		{name: "interval", args: []string{"output-json", csvPath, "10", "1.5", out, "2024"}},
		{name: "year", args: []string{"output-json", csvPath, "10", "20", out, "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if !errors.Is(err, services.ErrArgument) {
				t.Fatalf("expected argument error, got %v", err)
			}
		})
	}

	if _, _, err := runCLI(t, "output-json", csvPath, "10"); err == nil {
		t.Fatal("expected arity error")
	}
}

func TestOutputJSONRosterErrors(t *testing.T) {
	base := setupCLITestEnv(t)
	bad := testsupport.SampleParticipants()
	bad[1].Location = "Hybride"
	csvPath := testsupport.WriteRoster(t, base, bad...)
	out := filepath.Join(base, "data.json")

	_, _, err := runCLI(t, "output-json", csvPath, "10", "20", out, "2024")
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err %v", statErr)
	}

	_, _, err = runCLI(t, "output-json", filepath.Join(base, "absent.csv"), "10", "20", out, "2024")
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected i/o error, got %v", err)
	}
}

func TestLogFlagsProduceJSONWithRunID(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	out := filepath.Join(base, "data.json")

	_, stderr, err := runCLI(t, "--log-format", "json", "--log-level", "debug", "output-json", csvPath, "10", "20", out, "2024")
	if err != nil {
		t.Fatalf("output-json: %v", err)
	}
	requireContains(t, stderr, `"msg":"command started"`)
	requireContains(t, stderr, `"run_id":"`)
	requireContains(t, stderr, `"command":"output-json"`)
	requireContains(t, stderr, `"msg":"lineup written"`)
}

func TestFailureIsLoggedWithErrorKind(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	out := filepath.Join(base, "data.json")

	_, stderr, err := runCLI(t, "--log-format", "json", "--log-level", "debug", "output-json", csvPath, "10", "20", out, "2024", "--with-time")
	if err == nil {
		t.Fatal("expected missing music info to fail")
	}
	requireContains(t, stderr, `"msg":"command failed"`)
	requireContains(t, stderr, `"error_kind":"configuration"`)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	_, _, err := runCLI(t, "--log-level", "chatty", "summary", csvPath, "10", "20")
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
	requireContains(t, err.Error(), "logging.level")
}
