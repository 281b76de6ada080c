package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db    *gorm.DB
	botID kernel.ObjectID
}

// NewGormOrderRepository creates a repository. botID is the backend user
// that holds pickings nobody has claimed yet.
func NewGormOrderRepository(db *gorm.DB, botID kernel.ObjectID) *GormOrderRepository {
	return &GormOrderRepository{db: db, botID: botID}
}

func (r *GormOrderRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Pickings", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

// Get retrieves an order by ID and locks its row until the end of the
// transaction, so the precondition checked by the caller still holds when
// it writes.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ObjectID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withRelations(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "orders.id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.botID)
}

// Update saves the order state and the state and assignee of each picking.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).Where("id = ?", aggregate.ID().Int64()).Update("state", aggregate.State().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, p := range aggregate.Pickings() {
		result = db.Model(&PickingDTO{}).
			Where("id = ? AND order_id = ?", p.ID().Int64(), aggregate.ID().Int64()).
			Updates(map[string]any{
				"state":       p.State().String(),
				"assignee_id": assigneeToColumn(p.Assignee()),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("picking", p.ID().String())
		}
	}

	return nil
}

// GetAllWithPickings retrieves every order having a picking, newest first.
func (r *GormOrderRepository) GetAllWithPickings(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withRelations(ctx).
		Where("EXISTS (SELECT 1 FROM pickings WHERE pickings.order_id = orders.id)").
		Order("date_order DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, r.botID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
