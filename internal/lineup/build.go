package lineup

import (
	"fmt"
	"slices"
	"sort"

	"karamove/internal/roster"
)

// Options controls how records are turned into a Document.
type Options struct {
	IntroDuration int
	GroupInterval int
	Year          int
	WithTime      bool
	WithMusic     bool
	// MusicDuration is only emitted when WithTime is set.
	MusicDuration int
}

// Profiles returns the distinct profile labels of records, sorted byte-wise.
func Profiles(records []roster.Record) []string {
	profiles := make([]string, 0, len(records))
	for _, record := range records {
		profiles = append(profiles, record.Profile)
	}
	slices.Sort(profiles)
	return slices.Compact(profiles)
}

// Build groups records by position and produces the output document.
func Build(records []roster.Record, opts Options) (Document, error) {
	profiles := Profiles(records)

	byPosition := make(map[int]*Group)
	for id, record := range records {
		group, ok := byPosition[record.GroupPosition]
		if !ok {
			group = &Group{
				Name:     record.GroupName,
				Location: record.GroupLocation,
				Link:     record.GroupLink,
				Members:  make([]Member, 0, 6),
				position: record.GroupPosition,
			}
			byPosition[record.GroupPosition] = group
		}

		profile := sort.SearchStrings(profiles, record.Profile)
		if profile >= len(profiles) || profiles[profile] != record.Profile {
			return Document{}, fmt.Errorf("lineup: profile %q of row %d missing from profile index", record.Profile, id)
		}

		group.Members = append(group.Members, Member{
			ID:                  id,
			Name:                record.DisplayName(),
			DiscordName:         record.DiscordName,
			Profile:             profile,
			Level:               record.Level,
			PreferredTechniques: nonNil(record.PreferredTechniques),
			KnownTechniques:     nonNil(record.KnownTechniques),
		})
	}

	positions := make([]int, 0, len(byPosition))
	for position := range byPosition {
		positions = append(positions, position)
	}
	slices.Sort(positions)

	groups := make([]Group, 0, len(positions))
	for _, position := range positions {
		group := *byPosition[position]
		if opts.WithTime {
			window := WindowFor(position, opts.IntroDuration, opts.GroupInterval)
			group.TimeInterval = &window
		}
		groups = append(groups, group)
	}
	SortGroups(groups, OrderFor(opts.WithTime))

	doc := Document{
		Groups:    groups,
		Profiles:  profiles,
		WithMusic: opts.WithMusic,
		Year:      opts.Year,
	}
	if opts.WithTime {
		doc.Time = &Time{
			IntroDuration:         opts.IntroDuration,
			GroupIntervalDuration: opts.GroupInterval,
			MusicDuration:         opts.MusicDuration,
		}
	}
	return doc, nil
}

func nonNil(techniques []roster.Technique) []roster.Technique {
	if techniques == nil {
		return []roster.Technique{}
	}
	return techniques
}
