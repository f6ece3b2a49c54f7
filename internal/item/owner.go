package item

import (
	"context"
	"time"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// Owner is the player holding an item. Every method is called from the
// owner's shard goroutine only.
type Owner interface {
	GUID() domain.GUID
	Level() uint32
	ActiveSpecIndex() uint8
	// TradeData returns the open trade session, or nil.
	TradeData() TradeSession
	ApplyArtifactPowerRank(ctx context.Context, rank domain.ArtifactPowerRank, apply bool)
	IsUsingPvpItemLevels() bool
	MeetsCondition(conditionID uint32) bool
	ItemLevelBounds() LevelBounds
	SaveQueue() *SaveQueue
	Send(ctx context.Context, msg any)
	DestroyItem(ctx context.Context, it *Item)
	DeleteRefundReference(guid domain.GUID)
}

// TradeSession is the part of an open trade that mirrors item state.
type TradeSession interface {
	// RefreshItem re-reads the item if it is offered in the trade.
	RefreshItem(guid domain.GUID)
}

// LevelBounds are the per player item level limits. Zero disables a bound.
type LevelBounds struct {
	Min       uint32
	MinCutoff uint32
	Max       uint32
}

// RefundStore removes persisted refund records.
type RefundStore interface {
	DeleteRefundData(ctx context.Context, trans *database.Transaction, guid domain.GUID)
}

// Services bundles the shared read-only collaborators of every item.
type Services struct {
	Resolver *bonus.Resolver
	Refunds  RefundStore
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Services) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Services) tables() repository.BalanceTables { return s.Resolver.Tables() }

func (s *Services) template(id uint32) (*domain.ItemTemplate, bool) {
	return s.Resolver.Catalog().Template(id)
}
