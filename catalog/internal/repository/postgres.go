package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/pkg/rating"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type postgresRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewPostgresRepository(db *pgxpool.Pool, log *zap.Logger) *postgresRepository {
	return &postgresRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{
	"id", "title", "author", "description", "cover_image", "published_date",
	"genre", "page_count", "isbn", "average_rating", "ratings_count",
}

const normalizedGenre = `lower(replace(genre, '-', ' '))`

func (r *postgresRepository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("seq")
	if filter.Genre != "" {
		q = q.Where(sq.Eq{normalizedGenre: model.NormalizeGenre(filter.Genre)})
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + escapeLike(query) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}
	return r.selectBooks(ctx, q)
}

func (r *postgresRepository) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genre, excludeID string, limit int) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{normalizedGenre: model.NormalizeGenre(genre)}).
		Where(sq.NotEq{"id": excludeID}).
		OrderBy("seq").
		Limit(uint64(limit))
	return r.selectBooks(ctx, q)
}

func (r *postgresRepository) Recommended(ctx context.Context, limit int) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("seq").
		Limit(uint64(limit))
	return r.selectBooks(ctx, q)
}

func (r *postgresRepository) UpdateBookRating(ctx context.Context, bookID string, stars int) (model.Book, error) {
	if !rating.Valid(stars) {
		return model.Book{}, errs.ErrInvalidRating
	}
	query, args, err := qb.Update(booksTableName).
		Set("average_rating", sq.Expr("(average_rating * ratings_count + ?) / (ratings_count + 1)", stars)).
		Set("ratings_count", sq.Expr("ratings_count + 1")).
		Where(sq.Eq{"id": bookID}).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return model.Book{}, errs.ErrNotFound
		case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation:
			return model.Book{}, errs.ErrInvalidRating
		}
		return model.Book{}, errors.Wrap(err, "update rating")
	}
	return book, nil
}

// Seed inserts books in order and leaves existing ids untouched.
func (r *postgresRepository) Seed(ctx context.Context, books []model.Book) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, b := range books {
		query, args, err := qb.Insert(booksTableName).
			Columns(bookColumns...).
			Values(b.ID, b.Title, b.Author, b.Description, b.CoverImage, b.PublishedDate,
				b.Genre, b.PageCount, b.ISBN, b.AverageRating, b.RatingsCount).
			Suffix("on conflict (id) do nothing").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "seed book %s", b.ID)
		}
	}
	return tx.Commit(ctx)
}

func (r *postgresRepository) selectBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("select books", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, err
	}
	return books, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
