package item

import (
	"context"
	"fmt"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// IsInQueue reports whether the item holds a save queue position.
func (it *Item) IsInQueue() bool { return it.queuePos != -1 }

// MarkChanged records a mutation that must be persisted. A New item stays New
// so it is inserted rather than updated. Removed is terminal and ignores the
// call. With a nil owner only the state changes.
func (it *Item) MarkChanged(ctx context.Context, owner Owner) {
	switch it.state {
	case domain.ItemRemoved:
		return
	case domain.ItemNew:
	default:
		it.state = domain.ItemChanged
	}
	if owner != nil {
		it.addToQueue(ctx, owner)
	}
}

// MarkUnchanged is called once the item's statements are in a flush.
func (it *Item) MarkUnchanged() {
	it.queuePos = -1
	it.state = domain.ItemUnchanged
}

// MarkRemoved moves the item to Removed. An item that was never persisted is
// dropped without any persistence at all and discarded is true; the caller
// releases it. Its queue slot is tombstoned even while the queue is blocked,
// and any slot left in a queue it could not be removed from is skipped.
// Otherwise the item is dequeued and retired to the owner's queue so its
// deletes run on the next flush. A persisted item whose owner does not match
// is left untouched.
func (it *Item) MarkRemoved(ctx context.Context, owner Owner) (discarded bool) {
	switch it.state {
	case domain.ItemRemoved:
		return false
	case domain.ItemNew:
		if owner != nil {
			if it.IsInQueue() && it.ownedBy(ctx, owner, LogMsgDequeueMismatch) {
				if q := owner.SaveQueue(); q != nil {
					q.Remove(it)
				}
			}
			owner.DeleteRefundReference(it.guid)
		}
		it.state = domain.ItemRemoved
		it.queuePos = -1
		it.discarded = true
		logger.FromContext(ctx).Debug(LogMsgDiscardedBeforeSave, "item_guid", it.guid)
		metrics.ItemsDiscarded.Inc()
		return true
	default:
		if owner == nil {
			it.state = domain.ItemRemoved
			return false
		}
		if !it.ownedBy(ctx, owner, LogMsgQueueOwnerMismatch) {
			return false
		}
		it.state = domain.ItemRemoved
		it.removeFromQueue(ctx, owner)
		if q := owner.SaveQueue(); q != nil && !q.Blocked() {
			q.Retire(it)
		}
		return false
	}
}

// DetachFromOwner releases the item from its owner ahead of a transfer. The
// item leaves the source queue before its owner changes.
func (it *Item) DetachFromOwner(ctx context.Context, owner Owner) {
	if owner != nil {
		it.removeFromQueue(ctx, owner)
	}
	it.owner = 0
	it.bag = 0
	it.slot = NullSlot
	it.dirty.Mark(FieldOwner)
	it.dirty.Mark(FieldContainer)
}

// AttachToOwner hands the item to a new owner and queues the ownership change
// in the destination queue.
func (it *Item) AttachToOwner(ctx context.Context, owner Owner) error {
	if it.state == domain.ItemRemoved {
		return fmt.Errorf("%w: %d", domain.ErrItemRemoved, it.guid)
	}
	if it.IsInQueue() {
		return fmt.Errorf("%w: item %d still queued", domain.ErrOwnerMismatch, it.guid)
	}
	it.owner = owner.GUID()
	it.dirty.Mark(FieldOwner)
	it.MarkChanged(ctx, owner)
	return nil
}

// ownedBy checks the owner contract. A mismatch is a programming error
// elsewhere: it is logged and counted, never returned.
func (it *Item) ownedBy(ctx context.Context, owner Owner, msg string) bool {
	if owner.GUID() == it.owner {
		return true
	}
	logger.FromContext(ctx).Error(msg,
		"item_guid", it.guid,
		"item_owner", it.owner,
		"queue_owner", owner.GUID())
	metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindOwnerMismatch).Inc()
	return false
}

func (it *Item) addToQueue(ctx context.Context, owner Owner) {
	if it.IsInQueue() {
		return
	}
	if !it.ownedBy(ctx, owner, LogMsgQueueOwnerMismatch) {
		return
	}
	q := owner.SaveQueue()
	if q == nil {
		return
	}
	if q.Blocked() {
		logger.FromContext(ctx).Debug(LogMsgQueueBlocked, "item_guid", it.guid)
		return
	}
	q.Add(it)
}

func (it *Item) removeFromQueue(ctx context.Context, owner Owner) {
	if !it.IsInQueue() {
		return
	}
	if !it.ownedBy(ctx, owner, LogMsgDequeueMismatch) {
		return
	}
	q := owner.SaveQueue()
	if q == nil || q.Blocked() {
		return
	}
	if !q.Remove(it) {
		logger.FromContext(ctx).Error(LogMsgQueuePositionStale, "item_guid", it.guid, "queue_pos", it.queuePos)
		it.queuePos = -1
	}
}
