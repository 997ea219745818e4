package contacts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/referral-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool holding the contact book and
// match-run history.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ListContacts returns every contact in the book, ordered by name so repeated
// runs see contacts in the same order.
func (s *Store) ListContacts(ctx context.Context) ([]types.Contact, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT first_name, last_name, position, company, email, linkedin,
		        skills_tag, seniority_tag, function_tag, company_industry_tags,
		        location_raw, employee_connection
		 FROM contacts
		 ORDER BY first_name, last_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []types.Contact
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(
			&c.FirstName, &c.LastName, &c.Position, &c.Company, &c.Email, &c.LinkedIn,
			&c.Skills, &c.SeniorityTag, &c.FunctionTag, &c.IndustryTags,
			&c.LocationRaw, &c.EmployeeConnection,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

// UpsertContact inserts or refreshes one contact, keyed by name and company.
func (s *Store) UpsertContact(ctx context.Context, c types.Contact) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO contacts (first_name, last_name, position, company, email, linkedin,
		                       skills_tag, seniority_tag, function_tag, company_industry_tags,
		                       location_raw, employee_connection)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (first_name, last_name, company) DO UPDATE SET
		   position = $3, email = $5, linkedin = $6,
		   skills_tag = $7, seniority_tag = $8, function_tag = $9,
		   company_industry_tags = $10, location_raw = $11, employee_connection = $12,
		   updated_at = NOW()`,
		c.FirstName, c.LastName, c.Position, c.Company, c.Email, c.LinkedIn,
		c.Skills, c.SeniorityTag, c.FunctionTag, c.IndustryTags,
		c.LocationRaw, c.EmployeeConnection,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// SaveRun records a completed match run and its ranked candidates for later
// review.
func (s *Store) SaveRun(ctx context.Context, runID uuid.UUID, reqs *types.JobRequirements, candidates []types.RankedCandidate) error {
	reqsJSON, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}
	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO match_runs (id, requirements, candidates)
		 VALUES ($1, $2, $3)`,
		runID, reqsJSON, candidatesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save match run: %w", err)
	}
	return nil
}
