// Package storage keeps uploaded source files and exported statements in
// S3-compatible object storage.
package storage

import (
	"errors"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Object kinds used as the second path segment of a key
const (
	KindTrialBalance = "trial-balance"
	KindLedger       = "ledgers"
	KindExport       = "exports"
)

// MaxDownloadSize caps how much of an object Download reads into memory
const MaxDownloadSize = 20 << 20

var (
	// ErrObjectNotFound is returned when a key does not exist in the bucket
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectTooLarge is returned when an object exceeds MaxDownloadSize
	ErrObjectTooLarge = errors.New("object exceeds maximum download size")

	errKeyRequired = errors.New("storage key is required")
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// ObjectKey builds companies/<company>/<kind>/<random>-<file>. The file name
// is reduced to a safe character set.
func ObjectKey(companyID uuid.UUID, kind, fileName string) string {
	name := unsafeChars.ReplaceAllString(path.Base(strings.TrimSpace(fileName)), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return path.Join("companies", companyID.String(), kind, uuid.NewString()+"-"+name)
}

// BelongsTo reports whether key was issued for companyID
func BelongsTo(key string, companyID uuid.UUID) bool {
	return strings.HasPrefix(key, "companies/"+companyID.String()+"/")
}
