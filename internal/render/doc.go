// Package render prints the table format used by the listing commands.
package render
