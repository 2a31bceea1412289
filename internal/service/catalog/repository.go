package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/service/database"
	"github.com/luahn/gonggu-order-go/pkg/errors"
	"go.uber.org/zap"
)

// Repository reads the product catalog a seller attached to a post. The
// analysis engine never touches the database itself; this is the catalog
// supplier handed to it.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRepository(postgres *database.PostgresService, logger *zap.Logger) *Repository {
	return &Repository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

const findByPostQuery = `
	SELECT item_number, title, name, quantity_text, price, keywords
	FROM products
	WHERE post_id = $1
	ORDER BY item_number
`

// FindByPost returns the catalog for one post in item-number order. An
// unknown post yields an empty slice, not an error.
func (r *Repository) FindByPost(ctx context.Context, postID string) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, findByPostQuery, postID)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to query products", findByPostQuery, err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var (
			itemNumber   int
			title        sql.NullString
			name         sql.NullString
			quantityText sql.NullString
			price        sql.NullFloat64
			keywords     []string
		)

		if err := rows.Scan(&itemNumber, &title, &name, &quantityText, &price, pq.Array(&keywords)); err != nil {
			return nil, errors.NewRepositoryError("failed to scan product row", findByPostQuery, err)
		}

		products = append(products, &domain.Product{
			ItemNumber:   itemNumber,
			Title:        title.String,
			Name:         name.String,
			QuantityText: quantityText.String,
			Price:        price.Float64,
			Keywords:     keywords,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewRepositoryError("product row iteration failed", findByPostQuery, err)
	}

	return products, nil
}
