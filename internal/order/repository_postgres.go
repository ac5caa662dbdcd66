package order

import (
	"database/sql"
	"fmt"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `
		o.id, o.product_id, o.name, o.phone, o.email, o.address, o.quantity, o.description, o.status, o.created_at,
		p.name AS product_name, c.id AS category_id, c.name AS category_name
	`
	orderJoins = `
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		LEFT JOIN sub_categories s ON s.id = p.sub_category_id
		LEFT JOIN categories c ON c.id = s.category_id
	`
	insertOrderQuery = `
		INSERT INTO orders (product_id, name, phone, email, address, quantity, description, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	updateOrderStatusQuery = `UPDATE orders SET status = $1 WHERE id = $2`
	deleteOrderQuery       = `DELETE FROM orders WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	var id int
	err := r.db.QueryRow(
		insertOrderQuery,
		ord.ProductID,
		ord.Name,
		ord.Phone,
		ord.Email,
		ord.Address,
		ord.Quantity,
		ord.Description,
		ord.Status,
		ord.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Order{}, err
	}
	ord.ID = id
	return ord, nil
}

func (r *PostgresRepository) List(f Filter) ([]Order, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("c.id = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		conds = append(conds, fmt.Sprintf("(o.name ILIKE $%d OR o.email ILIKE $%d)", len(args), len(args)))
	}

	q := `SELECT ` + orderColumns + orderJoins
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY o.created_at DESC, o.id DESC`

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, ord)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(`SELECT `+orderColumns+orderJoins+` WHERE o.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status string) error {
	result, err := r.db.Exec(updateOrderStatusQuery, status, id)
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

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteOrderQuery, id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord          Order
		description  sql.NullString
		createdAt    sql.NullString
		productName  sql.NullString
		categoryID   sql.NullInt64
		categoryName sql.NullString
	)
	err := row.Scan(
		&ord.ID,
		&ord.ProductID,
		&ord.Name,
		&ord.Phone,
		&ord.Email,
		&ord.Address,
		&ord.Quantity,
		&description,
		&ord.Status,
		&createdAt,
		&productName,
		&categoryID,
		&categoryName,
	)
	if err != nil {
		return Order{}, err
	}
	ord.Description = description.String
	ord.CreatedAt = createdAt.String
	ord.ProductName = productName.String
	ord.CategoryID = int(categoryID.Int64)
	ord.CategoryName = categoryName.String
	return ord, nil
}
