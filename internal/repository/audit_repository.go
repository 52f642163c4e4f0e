package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// AuditRecord is one served seat map. Rows are written by the event
// consumer, never by the request path.
type AuditRecord struct {
	ID           uint64
	RequestID    string
	OfferID      string
	ResponseID   string
	SegmentCount int
	SeatCount    int
	StatusCode   int
	ServedAt     time.Time
}

// AuditRepo reads and writes the seat_availability_audit table.
type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

const auditSchema = `CREATE TABLE IF NOT EXISTS seat_availability_audit (
	id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	request_id    VARCHAR(64)  NOT NULL,
	offer_id      VARCHAR(128) NOT NULL DEFAULT '',
	response_id   VARCHAR(128) NOT NULL DEFAULT '',
	segment_count INT          NOT NULL DEFAULT 0,
	seat_count    INT          NOT NULL DEFAULT 0,
	status_code   INT          NOT NULL,
	served_at     DATETIME(3)  NOT NULL,
	UNIQUE KEY uq_audit_request (request_id),
	KEY idx_audit_served_at (served_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the audit table when it does not exist yet.
func (r *AuditRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, auditSchema); err != nil {
		return fmt.Errorf("audit schema: %w", err)
	}
	return nil
}

// Create inserts rec and fills in its ID. Redelivered events carry the
// same request id, so a duplicate insert is ignored.
func (r *AuditRepo) Create(ctx context.Context, rec *AuditRecord) error {
	const q = `INSERT INTO seat_availability_audit
		(request_id, offer_id, response_id, segment_count, seat_count, status_code, served_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`
	res, err := r.db.ExecContext(ctx, q,
		rec.RequestID, rec.OfferID, rec.ResponseID,
		rec.SegmentCount, rec.SeatCount, rec.StatusCode, rec.ServedAt.UTC())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// GetByRequestID returns ErrAuditNotFound when nothing was recorded for id.
func (r *AuditRepo) GetByRequestID(ctx context.Context, requestID string) (*AuditRecord, error) {
	const q = `SELECT id, request_id, offer_id, response_id, segment_count, seat_count, status_code, served_at
		FROM seat_availability_audit WHERE request_id = ?`
	rec, err := scanAudit(r.db.QueryRowContext(ctx, q, requestID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAuditNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// ListRecent returns up to limit records, newest first. A non-positive
// limit gives the default page and larger ones are capped.
func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]AuditRecord, error) {
	switch {
	case limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}
	const q = `SELECT id, request_id, offer_id, response_id, segment_count, seat_count, status_code, served_at
		FROM seat_availability_audit ORDER BY served_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AuditRecord
	for rows.Next() {
		rec, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAudit(s rowScanner) (*AuditRecord, error) {
	var rec AuditRecord
	if err := s.Scan(&rec.ID, &rec.RequestID, &rec.OfferID, &rec.ResponseID,
		&rec.SegmentCount, &rec.SeatCount, &rec.StatusCode, &rec.ServedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}
