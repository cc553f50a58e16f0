package roster

import (
	"fmt"
	"strings"
)

// Location describes how a group attends the event. The numeric values are
// part of the JSON output contract.
type Location int

const (
	OnSite Location = iota
	Remote
)

const (
	onSiteLabel = "Présentiel"
	remoteLabel = "En ligne"
)

// ParseLocation maps the exact spreadsheet label to a Location.
func ParseLocation(value string) (Location, error) {
	switch value {
	case onSiteLabel:
		return OnSite, nil
	case remoteLabel:
		return Remote, nil
	default:
		return 0, fmt.Errorf("unknown location %q (expected %q or %q)", value, onSiteLabel, remoteLabel)
	}
}

func (l Location) String() string {
	switch l {
	case OnSite:
		return "on-site"
	case Remote:
		return "remote"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// Technique is an animation method a participant prefers or knows. The
// numeric values are part of the JSON output contract.
type Technique int

const (
	DigitalTwoDimensional Technique = iota
	TraditionalTwoDimensional
	ThreeDimensional
	Rostrum
	StopMotion
	Free
)

func (t Technique) String() string {
	switch t {
	case DigitalTwoDimensional:
		return "2d-digital"
	case TraditionalTwoDimensional:
		return "2d-traditional"
	case ThreeDimensional:
		return "3d"
	case Rostrum:
		return "rostrum"
	case StopMotion:
		return "stop-motion"
	case Free:
		return "free"
	default:
		return fmt.Sprintf("technique(%d)", int(t))
	}
}

type techniqueKeyword struct {
	keyword   string
	technique Technique
}

// techniqueKeywords is matched against the answers of the sign-up form. The
// keywords are the literal fragments of the form's choices and must not be
// translated or case-folded.
var techniqueKeywords = []techniqueKeyword{
	{"2D digitale", DigitalTwoDimensional},
	{"2D traditionnel", TraditionalTwoDimensional},
	{"3D", ThreeDimensional},
	{"banc-titre", Rostrum},
	{"Stop-motion", StopMotion},
	{"Libre", Free},
}

// ParseTechniques returns every technique whose keyword occurs in value, in
// keyword table order. The result is never nil.
func ParseTechniques(value string) []Technique {
	techniques := make([]Technique, 0, len(techniqueKeywords))
	for _, entry := range techniqueKeywords {
		if strings.Contains(value, entry.keyword) {
			techniques = append(techniques, entry.technique)
		}
	}
	return techniques
}

// Record is one participant row of the roster export.
type Record struct {
	GroupPosition       int
	GroupName           string
	GroupLocation       Location
	GroupLink           string
	FirstName           string
	LastName            string
	DiscordName         string
	Profile             string
	Level               int
	PreferredTechniques []Technique
	KnownTechniques     []Technique
}

// DisplayName joins first and last name the way the website shows members.
func (r Record) DisplayName() string {
	return r.FirstName + " " + r.LastName
}
