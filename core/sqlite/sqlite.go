// Package sqlite opens the SQLite database of the run ledger, with either
// a pure Go or a CGO driver.
//
// Build modes:
//   - Default (CGO_ENABLED=0): uses pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): uses mattn/go-sqlite3
//
// Databases are opened through file URIs with a 5 second busy timeout:
// several translations may record their runs in the same ledger at once.
package sqlite

import (
	"database/sql"
	"strings"
)

// uriEscaper escapes the characters that end the path part of a file URI.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// DriverName returns the database/sql driver name in use.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3, "purego" for
// modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// DSN returns the data source name opening path, read-only when readOnly
// is set.
func DSN(path string, readOnly bool) string {
	params := []string{busyTimeoutParam}
	if readOnly {
		params = append(params, "mode=ro")
	}
	return "file:" + uriEscaper.Replace(path) + "?" + strings.Join(params, "&")
}

// Open opens the database at path for reading and writing, creating it
// if needed.
func Open(path string) (*sql.DB, error) {
	return sql.Open(driverName, DSN(path, false))
}

// OpenReadOnly opens the existing database at path. Writes through it
// fail.
func OpenReadOnly(path string) (*sql.DB, error) {
	return sql.Open(driverName, DSN(path, true))
}

// Info describes the driver the binary was built with.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	Package    string `json:"package"`
}

// GetInfo returns the driver the binary was built with.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		Package:    driverPackage,
	}
}
