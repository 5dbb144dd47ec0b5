package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/vitae"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ vitae.ResumeService = (*ResumeService)(nil)

// ResumeService implements vitae.ResumeService using SQLite.
type ResumeService struct {
	db *DB
}

// NewResumeService creates a new ResumeService.
func NewResumeService(db *DB) *ResumeService {
	return &ResumeService{db: db}
}

// CreateResume stores a resume and its job entries in one transaction.
// ID, CreatedAt and TextHash are assigned here.
func (s *ResumeService) CreateResume(ctx context.Context, resume *vitae.Resume) error {
	if err := resume.Validate(); err != nil {
		return err
	}

	resume.ID = uuid.New().String()
	resume.CreatedAt = time.Now().UTC()
	resume.TextHash = HashText(resume.Text)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO resumes (id, source, format, text, text_hash, summary, clean_mode, processing_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, resume.ID, resume.Source, string(resume.Format), resume.Text, resume.TextHash, resume.Summary,
		string(resume.Metadata.CleanMode), int64(resume.Metadata.ProcessingTime),
		resume.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, e := range resume.Experience {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO job_entries (resume_id, position, title, company, location, start_date, end_date, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, resume.ID, i, e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Description)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindResumeByID retrieves a resume and its job entries by ID.
func (s *ResumeService) FindResumeByID(ctx context.Context, id string) (*vitae.Resume, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, format, text, text_hash, summary, clean_mode, processing_ns, created_at
		FROM resumes
		WHERE id = ?
	`, id)

	resume, err := scanResume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, vitae.Errorf(vitae.ENOTFOUND, "resume not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachEntries(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// FindResumes retrieves resumes matching the filter, newest first.
func (s *ResumeService) FindResumes(ctx context.Context, filter vitae.ResumeFilter) ([]*vitae.Resume, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, source, format, text, text_hash, summary, clean_mode, processing_ns, created_at
		FROM resumes WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.TextHash != nil {
		query.WriteString(" AND text_hash = ?")
		args = append(args, *filter.TextHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []*vitae.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, r := range resumes {
		if err := s.attachEntries(ctx, r); err != nil {
			return nil, err
		}
	}
	return resumes, nil
}

// DeleteResume permanently removes a resume. Job entries are removed by
// the foreign key cascade.
func (s *ResumeService) DeleteResume(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM resumes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return vitae.Errorf(vitae.ENOTFOUND, "resume not found")
	}

	return nil
}

func (s *ResumeService) attachEntries(ctx context.Context, resume *vitae.Resume) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, company, location, start_date, end_date, description
		FROM job_entries
		WHERE resume_id = ?
		ORDER BY position
	`, resume.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	resume.Experience = []vitae.JobEntry{}
	for rows.Next() {
		var e vitae.JobEntry
		if err := rows.Scan(&e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return err
		}
		resume.Experience = append(resume.Experience, e)
	}
	resume.Metadata.ExperienceEntries = len(resume.Experience)
	return rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResume(s scanner) (*vitae.Resume, error) {
	var r vitae.Resume
	var format, cleanMode, createdAt string
	var processing int64

	if err := s.Scan(&r.ID, &r.Source, &format, &r.Text, &r.TextHash, &r.Summary,
		&cleanMode, &processing, &createdAt); err != nil {
		return nil, err
	}

	var err error
	r.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	r.Format = vitae.Format(format)
	r.Metadata.CleanMode = vitae.CleanMode(cleanMode)
	r.Metadata.ProcessingTime = time.Duration(processing)
	r.Metadata.TextLength = utf8.RuneCountInString(r.Text)
	return &r, nil
}
