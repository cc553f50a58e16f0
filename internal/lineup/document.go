package lineup

import "karamove/internal/roster"

// Document is the JSON payload consumed by the event website.
type Document struct {
	Groups    []Group  `json:"groups"`
	Profiles  []string `json:"profiles"`
	Time      *Time    `json:"time"`
	WithMusic bool     `json:"withMusic"`
	Year      int      `json:"year"`
}

// Group is one roster group with its members in CSV row order.
type Group struct {
	Name         string          `json:"name"`
	Location     roster.Location `json:"location"`
	Link         string          `json:"link"`
	TimeInterval *TimeInterval   `json:"timeInterval"`
	Members      []Member        `json:"members"`

	position int
}

// Position returns the group position the group was built from.
func (g Group) Position() int {
	return g.position
}

// Member is one participant inside a group.
type Member struct {
	ID                  int                `json:"id"`
	Name                string             `json:"name"`
	DiscordName         string             `json:"discordName"`
	Profile             int                `json:"profile"`
	Level               int                `json:"level"`
	PreferredTechniques []roster.Technique `json:"preferredTechniques"`
	KnownTechniques     []roster.Technique `json:"knownTechniques"`
}

// TimeInterval is the on-air window of a group, in seconds from the start of
// the music.
type TimeInterval struct {
	Position int `json:"position"`
	Start    int `json:"start"`
	End      int `json:"end"`
}

// Time carries the scheduling constants of the whole lineup.
type Time struct {
	IntroDuration         int `json:"introDuration"`
	GroupIntervalDuration int `json:"groupIntervalDuration"`
	MusicDuration         int `json:"musicDuration"`
}

// WindowFor computes the on-air window of the group at position. Positions
// start at 1; the intro plays before the first group.
func WindowFor(position, introDuration, groupInterval int) TimeInterval {
	return TimeInterval{
		Position: position,
		Start:    (position-1)*groupInterval + introDuration,
		End:      position*groupInterval + introDuration,
	}
}
