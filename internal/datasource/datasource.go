// Package datasource gives clients a synchronous view of an owner's data
// plus a channel of change notifications, so the frontend can refresh
// without polling. The costing engine itself never blocks on this; a
// one-shot snapshot with a silent channel satisfies the same contract.
package datasource

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenly/costbook/backend/internal/models"
)

// Event describes one committed change to an owner's data.
type Event struct {
	Kind   string    `json:"kind"`   // "ingredient" or "recipe"
	Action string    `json:"action"` // "created", "updated" or "deleted"
	ID     uuid.UUID `json:"id"`
}

// Notifier fans committed change events out to subscribers of an owner's
// feed. Implementations must never block a publisher on a slow consumer.
type Notifier interface {
	Publish(ctx context.Context, ownerID uuid.UUID, event Event) error
	Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan Event, func(), error)
}

// Snapshot is the full owner-scoped state at one point in time.
type Snapshot struct {
	Ingredients []models.Ingredient `json:"ingredients"`
	Recipes     []models.Recipe     `json:"recipes"`
}

// Source combines synchronous snapshots with a change feed.
type Source struct {
	db       *gorm.DB
	notifier Notifier
}

func New(db *gorm.DB, notifier Notifier) *Source {
	return &Source{db: db, notifier: notifier}
}

// Snapshot reads the owner's current ingredients and recipes.
func (s *Source) Snapshot(ctx context.Context, ownerID uuid.UUID) (*Snapshot, error) {
	var snap Snapshot
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&snap.Ingredients).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Preload("Ingredients").Where("user_id = ?", ownerID).Find(&snap.Recipes).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

// Changes subscribes to the owner's change feed. The returned func must be
// called to release the subscription.
func (s *Source) Changes(ctx context.Context, ownerID uuid.UUID) (<-chan Event, func(), error) {
	return s.notifier.Subscribe(ctx, ownerID)
}
