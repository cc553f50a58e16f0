// Package textutil provides text helpers for spreadsheet exports.
//
// Spreadsheet tools disagree on byte-order marks and Unicode normalization
// forms, so header labels such as "Prénom" are normalized before comparison
// and input streams are decoded to plain UTF-8 first.
package textutil
