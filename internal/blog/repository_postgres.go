package blog

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
	blogColumns = `
		b.id, b.title, b.content, b.excerpt, b.featured_image_url, b.author, b.status, b.slug, b.tags, b.view_count, b.category_id, b.created_at,
		bc.name AS category_name
	`
	blogJoins = `
		FROM blogs b
		LEFT JOIN blog_categories bc ON bc.id = b.category_id
	`
	insertBlogQuery = `
		INSERT INTO blogs (title, content, excerpt, featured_image_url, author, status, slug, tags, view_count, category_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,$9,$10)
		RETURNING id
	`
	updateBlogQuery = `
		UPDATE blogs
		SET title = $1,
			content = $2,
			excerpt = $3,
			featured_image_url = $4,
			author = $5,
			status = $6,
			slug = $7,
			tags = $8,
			category_id = $9
		WHERE id = $10
	`
	deleteBlogQuery = `DELETE FROM blogs WHERE id = $1`

	// stored procedure shared with the previous deployment
	incrementViewCountQuery = `SELECT increment_view_count($1)`

	listBlogCategoriesQuery = `SELECT id, name, slug, description FROM blog_categories ORDER BY name, id`
	insertBlogCategoryQuery = `INSERT INTO blog_categories (name, slug, description) VALUES ($1,$2,$3) RETURNING id`
	updateBlogCategoryQuery = `UPDATE blog_categories SET name = $1, slug = $2, description = $3 WHERE id = $4`
	deleteBlogCategoryQuery = `DELETE FROM blog_categories WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPublished(f Filter) ([]Blog, error) {
	conds := []string{"b.status = 'published'"}
	var args []any
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("b.category_id = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		conds = append(conds, fmt.Sprintf("(b.title ILIKE $%d OR b.excerpt ILIKE $%d)", len(args), len(args)))
	}

	q := `SELECT ` + blogColumns + blogJoins + ` WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY b.created_at DESC, b.id DESC`
	return r.query(q, args)
}

func (r *PostgresRepository) ListAll() ([]Blog, error) {
	return r.query(`SELECT `+blogColumns+blogJoins+` ORDER BY b.created_at DESC, b.id DESC`, nil)
}

func (r *PostgresRepository) GetBySlug(slug string) (Blog, error) {
	b, err := scanBlog(r.db.QueryRow(`SELECT `+blogColumns+blogJoins+` WHERE b.slug = $1`, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return Blog{}, ErrNotFound
		}
		return Blog{}, err
	}
	return b, nil
}

func (r *PostgresRepository) GetByID(id int) (Blog, error) {
	b, err := scanBlog(r.db.QueryRow(`SELECT `+blogColumns+blogJoins+` WHERE b.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Blog{}, ErrNotFound
		}
		return Blog{}, err
	}
	return b, nil
}

func (r *PostgresRepository) Create(b Blog) (Blog, error) {
	var id int
	err := r.db.QueryRow(
		insertBlogQuery,
		b.Title,
		b.Content,
		b.Excerpt,
		b.FeaturedImageURL,
		b.Author,
		b.Status,
		b.Slug,
		pq.Array(b.Tags),
		b.CategoryID,
		b.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Blog{}, err
	}
	b.ID = id
	return b, nil
}

func (r *PostgresRepository) Update(id int, b Blog) (Blog, error) {
	result, err := r.db.Exec(
		updateBlogQuery,
		b.Title,
		b.Content,
		b.Excerpt,
		b.FeaturedImageURL,
		b.Author,
		b.Status,
		b.Slug,
		pq.Array(b.Tags),
		b.CategoryID,
		id,
	)
	if err != nil {
		return Blog{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Blog{}, err
	}
	if affected == 0 {
		return Blog{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteBlogQuery, id)
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

func (r *PostgresRepository) IncrementViewCount(id int) error {
	_, err := r.db.Exec(incrementViewCountQuery, id)
	return err
}

func (r *PostgresRepository) ListCategories() ([]Category, error) {
	rows, err := r.db.Query(listBlogCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			cat         Category
			description sql.NullString
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &description); err != nil {
			continue
		}
		cat.Description = description.String
		out = append(out, cat)
	}
	return out, nil
}

func (r *PostgresRepository) CreateCategory(cat Category) (Category, error) {
	var id int
	if err := r.db.QueryRow(insertBlogCategoryQuery, cat.Name, cat.Slug, cat.Description).Scan(&id); err != nil {
		return Category{}, err
	}
	cat.ID = id
	return cat, nil
}

func (r *PostgresRepository) UpdateCategory(id int, cat Category) (Category, error) {
	result, err := r.db.Exec(updateBlogCategoryQuery, cat.Name, cat.Slug, cat.Description, id)
	if err != nil {
		return Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Category{}, err
	}
	if affected == 0 {
		return Category{}, ErrCategoryNotFound
	}
	cat.ID = id
	return cat, nil
}

func (r *PostgresRepository) DeleteCategory(id int) error {
	result, err := r.db.Exec(deleteBlogCategoryQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *PostgresRepository) query(q string, args []any) ([]Blog, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (Blog, error) {
	var (
		b            Blog
		excerpt      sql.NullString
		featuredURL  sql.NullString
		author       sql.NullString
		categoryID   sql.NullInt64
		createdAt    sql.NullString
		categoryName sql.NullString
	)
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Content,
		&excerpt,
		&featuredURL,
		&author,
		&b.Status,
		&b.Slug,
		pq.Array(&b.Tags),
		&b.ViewCount,
		&categoryID,
		&createdAt,
		&categoryName,
	)
	if err != nil {
		return Blog{}, err
	}
	b.Excerpt = excerpt.String
	b.FeaturedImageURL = featuredURL.String
	b.Author = author.String
	if categoryID.Valid {
		id := int(categoryID.Int64)
		b.CategoryID = &id
	}
	b.CreatedAt = createdAt.String
	b.CategoryName = categoryName.String
	return b, nil
}
