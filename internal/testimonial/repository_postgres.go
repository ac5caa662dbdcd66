package testimonial

import (
	"database/sql"
)

// Repository provides access to testimonial rows.
type Repository interface {
	List(limit int) ([]Testimonial, error)
}

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns testimonial rows ordered by rating then id.
// If the table/query is not available the function returns an empty slice (caller-friendly).
func (r *PostgresRepository) List(limit int) ([]Testimonial, error) {
	rows, err := r.db.Query(`SELECT id, name, location, quote, image_url, rating FROM testimonials ORDER BY rating DESC, id LIMIT $1`, limit)
	if err != nil {
		// table may not exist yet; return an empty slice to keep the API resilient
		return []Testimonial{}, nil
	}
	defer rows.Close()

	out := make([]Testimonial, 0)
	for rows.Next() {
		var (
			id       int
			name     string
			location sql.NullString
			quote    string
			img      sql.NullString
			rating   int
		)
		if err := rows.Scan(&id, &name, &location, &quote, &img, &rating); err != nil {
			continue
		}
		item := Testimonial{ID: id, Name: name, Quote: quote, Rating: rating}
		if location.Valid {
			item.Location = &location.String
		}
		if img.Valid {
			item.ImageURL = &img.String
		}
		out = append(out, item)
	}
	return out, nil
}
