// Package roster decodes the participant export of the sign-up spreadsheet.
//
// Each CSV row is one participant; rows sharing a group position belong to the
// same group. Columns are located by their French header labels, text fields
// are trimmed, the attendance mode is mapped to a Location and the free-text
// technique answers are tagged with a fixed keyword table. Decoding is all or
// nothing: the first malformed row aborts the load.
package roster
