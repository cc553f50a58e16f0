// Package testsupport holds fixtures shared by package and command tests:
// temp-rooted configs, stub executables and roster exports.
package testsupport
