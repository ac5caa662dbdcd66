package team

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listMembersQuery = `
		SELECT id, name, role, image_url, linkedin_url, created_at
		FROM team_members
		ORDER BY created_at, id
	`
	insertMemberQuery = `
		INSERT INTO team_members (name, role, image_url, linkedin_url, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	updateMemberQuery = `
		UPDATE team_members
		SET name = $1,
			role = $2,
			image_url = $3,
			linkedin_url = $4
		WHERE id = $5
	`
	deleteMemberQuery = `DELETE FROM team_members WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Member, error) {
	rows, err := r.db.Query(listMembersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Member, 0)
	for rows.Next() {
		var (
			m           Member
			imageURL    sql.NullString
			linkedinURL sql.NullString
			createdAt   sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &imageURL, &linkedinURL, &createdAt); err != nil {
			continue
		}
		m.ImageURL = imageURL.String
		m.LinkedinURL = linkedinURL.String
		m.CreatedAt = createdAt.String
		out = append(out, m)
	}
	return out, nil
}

func (r *PostgresRepository) Create(m Member) (Member, error) {
	var id int
	err := r.db.QueryRow(insertMemberQuery, m.Name, m.Role, m.ImageURL, m.LinkedinURL, m.CreatedAt).Scan(&id)
	if err != nil {
		return Member{}, err
	}
	m.ID = id
	return m, nil
}

func (r *PostgresRepository) Update(id int, m Member) (Member, error) {
	result, err := r.db.Exec(updateMemberQuery, m.Name, m.Role, m.ImageURL, m.LinkedinURL, id)
	if err != nil {
		return Member{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Member{}, err
	}
	if affected == 0 {
		return Member{}, ErrNotFound
	}
	m.ID = id
	return m, nil
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteMemberQuery, id)
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
