// Package repository holds the MySQL access code of the audit store.
package repository

import "errors"

// ErrAuditNotFound is returned when no audit row matches the lookup.
var ErrAuditNotFound = errors.New("audit record not found")
