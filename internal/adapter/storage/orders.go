package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.OrderArchiver = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) ArchiveOrder(
	ctx context.Context, o domain.PlacedOrder,
) (archiveErr error) {
	const op = "OrdersRepository.ArchiveOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if archiveErr == nil {
			if err := tx.Commit(); err != nil {
				archiveErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO orders (
			order_number, session_id, payment_method,
			subtotal, shipping, tax, total,
			ship_to, items, placed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (order_number) DO NOTHING;
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	shipB, _ := json.Marshal(o.Shipping)
	itemsB, _ := json.Marshal(o.Lines)
	_, err = stmt.ExecContext(ctx,
		o.Number, o.SessionID, string(o.Method),
		o.Totals.Subtotal.String(), o.Totals.Shipping.String(),
		o.Totals.Tax.String(), o.Totals.Total.String(),
		string(shipB), string(itemsB), o.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}

	return nil
}
