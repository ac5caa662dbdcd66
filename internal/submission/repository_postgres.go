package submission

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertContactQuery = `
		INSERT INTO contact_us (question, email, description, file_url, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	listContactQuery = `
		SELECT id, question, email, description, file_url, created_at
		FROM contact_us
		ORDER BY created_at DESC, id DESC
	`
	deleteContactQuery = `DELETE FROM contact_us WHERE id = $1`

	insertJoinQuery = `
		INSERT INTO join_us (full_name, phone, email, state, district, area, file_url, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	listJoinQuery = `
		SELECT id, full_name, phone, email, state, district, area, file_url, created_at
		FROM join_us
		ORDER BY created_at DESC, id DESC
	`
	deleteJoinQuery = `DELETE FROM join_us WHERE id = $1`

	insertTenantDownQuery = `
		INSERT INTO tenant_down_submissions (name, email, tenant_url, description, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	listTenantDownQuery = `
		SELECT id, name, email, tenant_url, description, created_at
		FROM tenant_down_submissions
		ORDER BY created_at DESC, id DESC
	`
	deleteTenantDownQuery = `DELETE FROM tenant_down_submissions WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateContact(s ContactSubmission) (ContactSubmission, error) {
	var id int
	err := r.db.QueryRow(insertContactQuery, s.Question, s.Email, nullable(s.Description), nullable(s.FileURL), s.CreatedAt).Scan(&id)
	if err != nil {
		return ContactSubmission{}, err
	}
	s.ID = id
	return s, nil
}

func (r *PostgresRepository) ListContact() ([]ContactSubmission, error) {
	rows, err := r.db.Query(listContactQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ContactSubmission, 0)
	for rows.Next() {
		var (
			s           ContactSubmission
			description sql.NullString
			fileURL     sql.NullString
			createdAt   sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Question, &s.Email, &description, &fileURL, &createdAt); err != nil {
			continue
		}
		s.Description = description.String
		s.FileURL = fileURL.String
		s.CreatedAt = createdAt.String
		out = append(out, s)
	}
	return out, nil
}

func (r *PostgresRepository) DeleteContact(id int) error {
	return r.deleteByID(deleteContactQuery, id)
}

func (r *PostgresRepository) CreateJoin(s JoinSubmission) (JoinSubmission, error) {
	var id int
	err := r.db.QueryRow(insertJoinQuery, s.FullName, s.Phone, nullable(s.Email), s.State, s.District, nullable(s.Area), nullable(s.FileURL), s.CreatedAt).Scan(&id)
	if err != nil {
		return JoinSubmission{}, err
	}
	s.ID = id
	return s, nil
}

func (r *PostgresRepository) ListJoin() ([]JoinSubmission, error) {
	rows, err := r.db.Query(listJoinQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JoinSubmission, 0)
	for rows.Next() {
		var (
			s         JoinSubmission
			email     sql.NullString
			area      sql.NullString
			fileURL   sql.NullString
			createdAt sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.FullName, &s.Phone, &email, &s.State, &s.District, &area, &fileURL, &createdAt); err != nil {
			continue
		}
		s.Email = email.String
		s.Area = area.String
		s.FileURL = fileURL.String
		s.CreatedAt = createdAt.String
		out = append(out, s)
	}
	return out, nil
}

func (r *PostgresRepository) DeleteJoin(id int) error {
	return r.deleteByID(deleteJoinQuery, id)
}

func (r *PostgresRepository) CreateTenantDown(s TenantDownSubmission) (TenantDownSubmission, error) {
	var id int
	err := r.db.QueryRow(insertTenantDownQuery, s.Name, s.Email, s.TenantURL, nullable(s.Description), s.CreatedAt).Scan(&id)
	if err != nil {
		return TenantDownSubmission{}, err
	}
	s.ID = id
	return s, nil
}

func (r *PostgresRepository) ListTenantDown() ([]TenantDownSubmission, error) {
	rows, err := r.db.Query(listTenantDownQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TenantDownSubmission, 0)
	for rows.Next() {
		var (
			s           TenantDownSubmission
			description sql.NullString
			createdAt   sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.TenantURL, &description, &createdAt); err != nil {
			continue
		}
		s.Description = description.String
		s.CreatedAt = createdAt.String
		out = append(out, s)
	}
	return out, nil
}

func (r *PostgresRepository) DeleteTenantDown(id int) error {
	return r.deleteByID(deleteTenantDownQuery, id)
}

func (r *PostgresRepository) deleteByID(query string, id int) error {
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
