package main

import (
	"encoding/json"
	"testing"

	"karamove/internal/testsupport"
)

func TestSummaryCommand(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)

	stdout, _, err := runCLI(t, "summary", csvPath, "10", "20")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"POSITION", "GROUP", "Alpha", "Beta", "on-site", "remote", "0:10", "0:30", "0:50"} {
		requireContains(t, stdout, want)
	}
	requireContains(t, stdout, "2 groups, 3 members, 2 profiles")
}

func TestSummaryCommandJSON(t *testing.T) {
	base := setupCLITestEnv(t)
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)

	stdout, _, err := runCLI(t, "summary", csvPath, "10", "20", "--json")
	if err != nil {
		t.Fatalf("summary --json: %v", err)
	}
	var groups []struct {
		Name         string `json:"name"`
		TimeInterval struct {
			Start int `json:"start"`
		} `json:"timeInterval"`
	}
	if err := json.Unmarshal([]byte(stdout), &groups); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if len(groups) != 2 || groups[1].Name != "Beta" || groups[1].TimeInterval.Start != 30 {
		t.Fatalf("unexpected summary %+v", groups)
	}
}
