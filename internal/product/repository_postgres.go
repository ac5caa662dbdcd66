package product

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `
		p.id, p.name, p.description, p.image_url, p.price, p.discount_price, p.discount_percentage, p.features, p.sub_category_id, p.created_at,
		s.name AS sub_category_name, c.id AS category_id, c.name AS category_name
	`
	productJoins = `
		FROM products p
		LEFT JOIN sub_categories s ON s.id = p.sub_category_id
		LEFT JOIN categories c ON c.id = s.category_id
	`
	insertProductQuery = `
		INSERT INTO products (name, description, image_url, price, discount_price, discount_percentage, features, sub_category_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			image_url = $3,
			price = $4,
			discount_price = $5,
			discount_percentage = $6,
			features = $7,
			sub_category_id = $8
		WHERE id = $9
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	return r.query(`SELECT `+productColumns+productJoins+` ORDER BY p.id`, nil)
}

// ListBySubCategorySlug matches the routing slug against the slug derived
// from the sub-category name, the same derivation the navigation uses.
func (r *PostgresRepository) ListBySubCategorySlug(slug string) ([]Product, error) {
	q := `SELECT ` + productColumns + productJoins + `
		WHERE regexp_replace(lower(s.name), '\s+', '-', 'g') = $1
		ORDER BY p.id`
	return r.query(q, []any{slug})
}

func (r *PostgresRepository) ListFiltered(f Filter) ([]Product, error) {
	var (
		conds []string
		args  []any
	)
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("c.id = $%d", len(args)))
	}
	if f.SubCategoryID != 0 {
		args = append(args, f.SubCategoryID)
		conds = append(conds, fmt.Sprintf("p.sub_category_id = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}

	q := `SELECT ` + productColumns + productJoins
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY p.id`
	return r.query(q, args)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+productJoins+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id int
	err := r.db.QueryRow(
		insertProductQuery,
		p.Name,
		p.Description,
		p.ImageURL,
		p.Price,
		p.DiscountPrice,
		p.DiscountPercentage,
		pq.Array(p.Features),
		p.SubCategoryID,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	result, err := r.db.Exec(
		updateProductQuery,
		p.Name,
		p.Description,
		p.ImageURL,
		p.Price,
		p.DiscountPrice,
		p.DiscountPercentage,
		pq.Array(p.Features),
		p.SubCategoryID,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
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

func (r *PostgresRepository) query(q string, args []any) ([]Product, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p               Product
		description     sql.NullString
		imageURL        sql.NullString
		discountPrice   sql.NullFloat64
		discountPercent sql.NullFloat64
		createdAt       sql.NullString
		subCategoryName sql.NullString
		categoryID      sql.NullInt64
		categoryName    sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&description,
		&imageURL,
		&p.Price,
		&discountPrice,
		&discountPercent,
		pq.Array(&p.Features),
		&p.SubCategoryID,
		&createdAt,
		&subCategoryName,
		&categoryID,
		&categoryName,
	)
	if err != nil {
		return Product{}, err
	}
	p.Description = description.String
	p.ImageURL = imageURL.String
	if discountPrice.Valid {
		p.DiscountPrice = &discountPrice.Float64
	}
	if discountPercent.Valid {
		p.DiscountPercentage = &discountPercent.Float64
	}
	p.CreatedAt = createdAt.String
	p.SubCategoryName = subCategoryName.String
	p.CategoryID = int(categoryID.Int64)
	p.CategoryName = categoryName.String
	return p, nil
}
