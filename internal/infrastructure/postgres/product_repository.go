package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/botica-api/internal/domain"
	"github.com/jhoicas/botica-api/internal/domain/entity"
	"github.com/jhoicas/botica-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, lab, contenido, costo, precio, stock, min_stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre la tabla medicamentos (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para medicamentos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo medicamento.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO medicamentos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Lab, p.Content, p.Cost, p.Price, p.Stock, p.MinStock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicamento: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM medicamentos WHERE id = $1`, id)
	return scanProductRow(row, "get medicamento")
}

// GetByNameAndLab busca el medicamento por nombre y laboratorio (clave natural del inventario).
func (r *ProductRepo) GetByNameAndLab(ctx context.Context, name, lab string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM medicamentos WHERE nombre = $1 AND lab = $2`, name, lab)
	return scanProductRow(row, "get medicamento por nombre")
}

// GetForUpdate obtiene el medicamento y bloquea la fila (SELECT FOR UPDATE). Usar dentro de una tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM medicamentos WHERE id = $1 FOR UPDATE`, id)
	return scanProductRow(row, "get medicamento for update")
}

// Update actualiza todos los campos editables de un medicamento.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE medicamentos
		SET nombre = $2, lab = $3, contenido = $4, costo = $5, precio = $6, stock = $7, min_stock = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Lab, p.Content, p.Cost, p.Price, p.Stock, p.MinStock, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update medicamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock (usado al registrar ventas).
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE medicamentos SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el inventario ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM medicamentos ORDER BY nombre, lab`)
	if err != nil {
		return nil, fmt.Errorf("list medicamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medicamento: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un medicamento por ID. Las ventas conservan su copia del nombre.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM medicamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Lab, &p.Content, &p.Cost, &p.Price, &p.Stock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductRow(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
