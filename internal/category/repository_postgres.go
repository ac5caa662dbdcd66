package category

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery = `
		SELECT id, name
		FROM categories
		ORDER BY name, id
	`
	listSubCategoriesQuery = `
		SELECT id, name, category_id
		FROM sub_categories
		ORDER BY name, id
	`
	insertSubCategoryQuery = `
		INSERT INTO sub_categories (name, category_id)
		VALUES ($1, $2)
		RETURNING id
	`
	updateSubCategoryQuery = `
		UPDATE sub_categories
		SET name = $1,
			category_id = $2
		WHERE id = $3
	`
	deleteSubCategoryQuery = `DELETE FROM sub_categories WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTree() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			continue
		}
		cat.SubCategories = make([]SubCategory, 0)
		categories = append(categories, cat)
	}

	subs, err := r.ListSubCategories()
	if err != nil {
		return nil, err
	}
	for _, sc := range subs {
		for i := range categories {
			if categories[i].ID == sc.CategoryID {
				categories[i].SubCategories = append(categories[i].SubCategories, sc)
				break
			}
		}
	}
	return categories, nil
}

func (r *PostgresRepository) ListSubCategories() ([]SubCategory, error) {
	rows, err := r.db.Query(listSubCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SubCategory, 0)
	for rows.Next() {
		var sc SubCategory
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.CategoryID); err != nil {
			continue
		}
		sc.Slug = Slugify(sc.Name)
		out = append(out, sc)
	}
	return out, nil
}

func (r *PostgresRepository) CreateSubCategory(sc SubCategory) (SubCategory, error) {
	var id int
	if err := r.db.QueryRow(insertSubCategoryQuery, sc.Name, sc.CategoryID).Scan(&id); err != nil {
		return SubCategory{}, err
	}
	sc.ID = id
	sc.Slug = Slugify(sc.Name)
	return sc, nil
}

func (r *PostgresRepository) UpdateSubCategory(id int, sc SubCategory) (SubCategory, error) {
	result, err := r.db.Exec(updateSubCategoryQuery, sc.Name, sc.CategoryID, id)
	if err != nil {
		return SubCategory{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return SubCategory{}, err
	}
	if affected == 0 {
		return SubCategory{}, ErrNotFound
	}
	sc.ID = id
	sc.Slug = Slugify(sc.Name)
	return sc, nil
}

func (r *PostgresRepository) DeleteSubCategory(id int) error {
	result, err := r.db.Exec(deleteSubCategoryQuery, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInUse
		}
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

// isForeignKeyViolation matches the Postgres 23503 error raised when a
// products row still references the sub-category.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "foreign key")
}
