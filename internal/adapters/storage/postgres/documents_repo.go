package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-companion/internal/domain/documents"
)

type DocumentsRepo struct {
	db *sql.DB
}

func NewDocumentsRepo(db *sql.DB) *DocumentsRepo {
	return &DocumentsRepo{db: db}
}

func (r *DocumentsRepo) Create(ctx context.Context, d documents.PetDocument) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_documents (
			id, pet_id, name,
			file_type, file_url, file_size, upload_date,
			category, notes, is_favorite
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		d.ID,
		d.PetID,
		d.Name,
		d.FileType,
		d.FileURL,
		d.FileSize,
		d.UploadDate,
		string(d.Category),
		d.Notes,
		d.IsFavorite,
	)
	return err
}

func (r *DocumentsRepo) Update(ctx context.Context, d documents.PetDocument) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_documents
		SET pet_id = $2,
		    name = $3,
		    file_type = $4,
		    file_url = $5,
		    file_size = $6,
		    upload_date = $7,
		    category = $8,
		    notes = $9,
		    is_favorite = $10
		WHERE id = $1
	`,
		d.ID,
		d.PetID,
		d.Name,
		d.FileType,
		d.FileURL,
		d.FileSize,
		d.UploadDate,
		string(d.Category),
		d.Notes,
		d.IsFavorite,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DocumentsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pet_documents
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DocumentsRepo) GetByID(ctx context.Context, id string) (documents.PetDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return documents.PetDocument{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, pet_id, name,
			file_type, file_url, file_size, upload_date,
			category, notes, is_favorite
		FROM pet_documents
		WHERE id = $1
	`, id)

	var d documents.PetDocument
	var cat string
	if err := row.Scan(
		&d.ID,
		&d.PetID,
		&d.Name,
		&d.FileType,
		&d.FileURL,
		&d.FileSize,
		&d.UploadDate,
		&cat,
		&d.Notes,
		&d.IsFavorite,
	); err != nil {
		if err == sql.ErrNoRows {
			return documents.PetDocument{}, ErrNotFound
		}
		return documents.PetDocument{}, err
	}

	d.Category = documents.Category(cat)
	return d, nil
}

func (r *DocumentsRepo) List(ctx context.Context) ([]documents.PetDocument, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id, name,
			file_type, file_url, file_size, upload_date,
			category, notes, is_favorite
		FROM pet_documents
		ORDER BY upload_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]documents.PetDocument, 0)
	for rows.Next() {
		var d documents.PetDocument
		var cat string
		if err := rows.Scan(
			&d.ID,
			&d.PetID,
			&d.Name,
			&d.FileType,
			&d.FileURL,
			&d.FileSize,
			&d.UploadDate,
			&cat,
			&d.Notes,
			&d.IsFavorite,
		); err != nil {
			return nil, err
		}
		d.Category = documents.Category(cat)
		out = append(out, d)
	}
	return out, rows.Err()
}
