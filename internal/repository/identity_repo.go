package repository

import (
	"context"
	"database/sql"

	"donation-service/internal/entity"
)

type IdentityRepository struct {
	db *sql.DB
}

func NewIdentityRepository(db *sql.DB) *IdentityRepository {
	return &IdentityRepository{db}
}

func (r *IdentityRepository) Create(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	query := `INSERT INTO identities (space, name, email, role, password, photo) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, identity.Space, identity.Name, identity.Email, identity.Role, identity.Password, identity.Photo)
	if err != nil {
		return nil, translate(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	identity.ID = int(id)
	return identity, nil
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, space entity.Space, email string) (*entity.Identity, error) {
	identity := &entity.Identity{}
	query := `SELECT id, space, name, email, role, password, photo FROM identities WHERE space = ? AND email = ?`
	err := r.db.QueryRowContext(ctx, query, space, email).
		Scan(&identity.ID, &identity.Space, &identity.Name, &identity.Email, &identity.Role, &identity.Password, &identity.Photo)
	if err != nil {
		return nil, translate(err)
	}

	return identity, nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, space entity.Space, id int) (*entity.Identity, error) {
	identity := &entity.Identity{}
	query := `SELECT id, space, name, email, role, password, photo FROM identities WHERE space = ? AND id = ?`
	err := r.db.QueryRowContext(ctx, query, space, id).
		Scan(&identity.ID, &identity.Space, &identity.Name, &identity.Email, &identity.Role, &identity.Password, &identity.Photo)
	if err != nil {
		return nil, translate(err)
	}

	return identity, nil
}

func (r *IdentityRepository) List(ctx context.Context, space entity.Space) ([]entity.Identity, error) {
	query := `SELECT id, space, name, email, role, photo FROM identities WHERE space = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, space)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var identities []entity.Identity
	for rows.Next() {
		identity := entity.Identity{}
		err := rows.Scan(&identity.ID, &identity.Space, &identity.Name, &identity.Email, &identity.Role, &identity.Photo)
		if err != nil {
			return nil, translate(err)
		}
		identities = append(identities, identity)
	}

	return identities, translate(rows.Err())
}

func (r *IdentityRepository) Delete(ctx context.Context, space entity.Space, id int) error {
	query := `DELETE FROM identities WHERE space = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query, space, id)
	if err != nil {
		return translate(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return translate(err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *IdentityRepository) Count(ctx context.Context, space entity.Space) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM identities WHERE space = ?`
	err := r.db.QueryRowContext(ctx, query, space).Scan(&count)
	if err != nil {
		return 0, translate(err)
	}

	return count, nil
}
