// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/internal/platform/database/schema"
	"github.com/eventfulindia/eventful/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository stores the collection in directory.artist.
//
// Nested profile data (portfolio, social media, performance history) lives in
// JSONB columns. Collection order is the identity-assigned position column.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	artistColumns = strings.Join(schema.DirectoryArtist.Columns(), ", ")

	selectArtists = fmt.Sprintf(`SELECT %s FROM %s`, artistColumns, schema.DirectoryArtist.Table)

	insertArtist = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		schema.DirectoryArtist.Table, artistColumns,
	)
)

func (repository *PostgresRepository) List(context context.Context) ([]*Artist, error) {
	query := selectArtists + fmt.Sprintf(` ORDER BY %s ASC`, schema.DirectoryArtist.Position)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Artist")
	}
	defer rows.Close()

	artists := []*Artist{}
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Artist")
		}
		artists = append(artists, artist)
	}

	return artists, dberr.Wrap(rows.Err(), "Artist")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Artist, error) {
	return repository.findOne(context, schema.DirectoryArtist.ID, id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Artist, error) {
	return repository.findOne(context, schema.DirectoryArtist.Slug, slug)
}

func (repository *PostgresRepository) findOne(context context.Context, column, value string) (*Artist, error) {
	query := selectArtists + fmt.Sprintf(` WHERE %s = $1`, column)

	artist, err := scanArtist(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "Artist")
	}
	return artist, nil
}

func (repository *PostgresRepository) Create(context context.Context, artist *Artist) error {
	_, err := repository.db.Exec(context, insertArtist, artistValues(artist)...)
	return dberr.Wrap(err, "Artist")
}

func (repository *PostgresRepository) Update(context context.Context, artist *Artist) error {
	t := schema.DirectoryArtist
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16, %s = $17, %s = $18
		WHERE %s = $1
	`,
		t.Table,
		t.Slug, t.Name, t.Email, t.ProfileImage, t.Genre, t.Skills, t.Location, t.Experience,
		t.Rating, t.PriceRange, t.Availability, t.Description, t.Portfolio, t.SocialMedia,
		t.PerformanceHistory, t.VerificationStatus, t.JoinedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(context, query, artistValues(artist)...)
	if err != nil {
		return dberr.Wrap(err, "Artist")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Artist")
	}
	return nil
}

/*
ReplaceAll deletes every row and inserts artists in order inside one transaction.

Readers see either the previous collection or the new one, never a mix.
*/
func (repository *PostgresRepository) ReplaceAll(context context.Context, artists []*Artist) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "Artist")
	}
	defer func() { _ = tx.Rollback(context) }()

	if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s`, schema.DirectoryArtist.Table)); err != nil {
		return dberr.Wrap(err, "Artist")
	}

	batch := &pgx.Batch{}
	for _, artist := range artists {
		batch.Queue(insertArtist, artistValues(artist)...)
	}
	if err := tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "Artist")
	}

	return dberr.Wrap(tx.Commit(context), "Artist")
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, schema.DirectoryArtist.Table)).Scan(&total)
	return total, dberr.Wrap(err, "Artist")
}

// # Row Mapping

// artistValues returns the insert arguments in [schema.DirectoryArtistTable.Columns] order.
func artistValues(a *Artist) []any {
	return []any{
		a.ID, a.Slug, a.Name, a.Email, a.ProfileImage, nonNil(a.Genre), nonNil(a.Skills), a.Location,
		a.Experience, a.Rating, a.PriceRange, a.Availability, a.Description, a.Portfolio,
		a.SocialMedia, nonNil(a.PerformanceHistory), string(a.VerificationStatus), a.JoinedDate,
	}
}

func scanArtist(row pgx.Row) (*Artist, error) {
	a := &Artist{}
	var status string
	err := row.Scan(
		&a.ID, &a.Slug, &a.Name, &a.Email, &a.ProfileImage, &a.Genre, &a.Skills, &a.Location,
		&a.Experience, &a.Rating, &a.PriceRange, &a.Availability, &a.Description, &a.Portfolio,
		&a.SocialMedia, &a.PerformanceHistory, &status, &a.JoinedDate,
	)
	if err != nil {
		return nil, err
	}
	a.VerificationStatus = VerificationStatus(status)
	return a, nil
}

// nonNil keeps NOT NULL array and JSONB columns from receiving SQL NULL.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
