// Package lineup turns roster records into the grouped JSON document used by
// the event website.
//
// Records are grouped by position (the first row of a position supplies the
// group's name, location and link), members keep CSV row order, and every
// distinct profile label is replaced by its index in the sorted profile list.
// When timing is requested each group gets an on-air window derived from the
// intro duration and group interval, groups are listed in position order and
// the total music duration is read from an ffprobe music-info document.
// Otherwise groups are listed by name.
package lineup
