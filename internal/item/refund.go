package item

import (
	"context"
	"time"

	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// RefundRecord is the persisted purchase data of a refundable item.
type RefundRecord struct {
	Item             domain.GUID
	Recipient        domain.GUID
	PaidMoney        uint64
	PaidExtendedCost uint32
}

// Expiration returns the remaining lifetime in seconds, 0 for none.
func (it *Item) Expiration() uint32 { return it.expiration }

// SetExpiration sets the remaining lifetime.
func (it *Item) SetExpiration(seconds uint32) {
	it.expiration = seconds
	it.dirty.Mark(FieldExpiration)
}

// UpdateDuration advances the expiration timer by diff seconds. An item whose
// remaining lifetime does not outlast diff is destroyed through the owner
// within the same tick.
func (it *Item) UpdateDuration(ctx context.Context, owner Owner, diff uint32) {
	if it.expiration == 0 {
		return
	}
	if it.expiration <= diff {
		if owner != nil {
			owner.DestroyItem(ctx, it)
		}
		return
	}
	it.SetExpiration(it.expiration - diff)
	it.MarkChanged(ctx, owner)
}

// SendTimeUpdate reports the remaining lifetime of a timed item.
func (it *Item) SendTimeUpdate(ctx context.Context, owner Owner) {
	if it.expiration == 0 || owner == nil {
		return
	}
	owner.Send(ctx, domain.ItemTimeUpdate{Item: it.guid, Duration: it.expiration})
}

// ==================== Refunds ====================

// Refund returns the purchase data kept for a refundable item.
func (it *Item) Refund() RefundRecord {
	return RefundRecord{
		Item:             it.guid,
		Recipient:        it.refundRecipient,
		PaidMoney:        it.paidMoney,
		PaidExtendedCost: it.paidExtendedCost,
	}
}

// SetRefund records the purchase data and marks the item refundable.
func (it *Item) SetRefund(recipient domain.GUID, paidMoney uint64, paidExtendedCost uint32) {
	it.refundRecipient = recipient
	it.paidMoney = paidMoney
	it.paidExtendedCost = paidExtendedCost
	it.SetFlag(domain.ItemFieldFlagRefundable)
}

// SetCreatePlayedTime sets the owner played time accumulated since purchase.
func (it *Item) SetCreatePlayedTime(seconds uint32) {
	it.createPlayedTime = seconds
	it.dirty.Mark(FieldPlayedTime)
}

// UpdatePlayedTime accumulates played time since the last update. Within the
// refund window the item stays refundable; past it the refund is revoked.
// Only whole seconds are consumed, the remainder carries over to the next
// update.
func (it *Item) UpdatePlayedTime(ctx context.Context, owner Owner, trans *database.Transaction) {
	now := it.svc.now()
	if it.lastPlayedUpdate.IsZero() || now.Before(it.lastPlayedUpdate) {
		it.lastPlayedUpdate = now
	}
	secs := uint32(now.Sub(it.lastPlayedUpdate) / time.Second)
	played := it.createPlayedTime + secs

	if time.Duration(played)*time.Second <= RefundWindow {
		if secs > 0 {
			it.SetCreatePlayedTime(played)
			it.MarkChanged(ctx, owner)
			it.lastPlayedUpdate = it.lastPlayedUpdate.Add(time.Duration(secs) * time.Second)
		}
		return
	}
	it.SetNotRefundable(ctx, owner, trans)
}

// SetNotRefundable revokes the refund of a refundable item: the owner is told,
// the stored refund record is deleted within trans and the owner drops its
// refund reference.
func (it *Item) SetNotRefundable(ctx context.Context, owner Owner, trans *database.Transaction) {
	if !it.HasFlag(domain.ItemFieldFlagRefundable) {
		return
	}
	if owner != nil {
		owner.Send(ctx, domain.ItemExpirePurchaseRefund{Item: it.guid})
	}
	it.RemoveFlag(domain.ItemFieldFlagRefundable)
	it.MarkChanged(ctx, owner)

	it.refundRecipient = 0
	it.paidMoney = 0
	it.paidExtendedCost = 0
	if it.svc.Refunds != nil && trans != nil {
		it.svc.Refunds.DeleteRefundData(ctx, trans, it.guid)
	}
	if owner != nil {
		owner.DeleteRefundReference(it.guid)
	}
}
