package item

import (
	"slices"

	"github.com/samber/lo"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

// SaveQueue is an owner's list of items awaiting persistence. Positions are
// slice indexes; a dequeued item leaves a nil tombstone so the positions of
// later items stay valid until the next Reset. Removed items that were
// already persisted are retired to a separate list so their deletes run on
// the next flush.
type SaveQueue struct {
	items   []*Item
	retired []*Item
	blocked bool
}

// NewSaveQueue returns an empty, unblocked queue.
func NewSaveQueue() *SaveQueue {
	return &SaveQueue{}
}

// Add appends it and records its position on the item.
func (q *SaveQueue) Add(it *Item) {
	it.queuePos = len(q.items)
	q.items = append(q.items, it)
}

// Remove tombstones the slot held by it. It reports false when the item's
// recorded position does not hold it.
func (q *SaveQueue) Remove(it *Item) bool {
	pos := it.queuePos
	if pos < 0 || pos >= len(q.items) || q.items[pos] != it {
		return false
	}
	q.items[pos] = nil
	it.queuePos = -1
	return true
}

// Retire schedules the deletes of a removed item for the next flush.
func (q *SaveQueue) Retire(it *Item) {
	q.retired = append(q.retired, it)
}

// Block stops the queue from accepting or releasing items, typically while the
// owner is loading or being saved wholesale.
func (q *SaveQueue) Block()        { q.blocked = true }
func (q *SaveQueue) Unblock()      { q.blocked = false }
func (q *SaveQueue) Blocked() bool { return q.blocked }

// Len returns the number of queued slots, tombstones included.
func (q *SaveQueue) Len() int { return len(q.items) }

// Pending returns the live queued items in FIFO order followed by the
// retired ones. Discarded items are skipped.
func (q *SaveQueue) Pending() []*Item {
	live := lo.Filter(q.items, func(it *Item, _ int) bool { return it != nil && !it.discarded })
	return append(live, q.retired...)
}

// Reset empties the queue. Items still holding a position are released.
func (q *SaveQueue) Reset() {
	for _, it := range q.items {
		if it != nil {
			it.queuePos = -1
		}
	}
	q.items = q.items[:0]
	q.retired = nil
}

// Checkpoint is a copy of a queue and of the save state of every item in it,
// taken before a flush so the flush can be undone if its transaction is
// never accepted.
type Checkpoint struct {
	queue   *SaveQueue
	items   []*Item
	retired []*Item
	saved   map[*Item]savedState
}

type savedState struct {
	state    domain.ItemUpdateState
	queuePos int
}

// Checkpoint captures the queue as it is now.
func (q *SaveQueue) Checkpoint() *Checkpoint {
	cp := &Checkpoint{
		queue:   q,
		items:   slices.Clone(q.items),
		retired: slices.Clone(q.retired),
		saved:   make(map[*Item]savedState, len(q.items)+len(q.retired)),
	}
	for _, it := range cp.queue.Pending() {
		cp.saved[it] = savedState{state: it.state, queuePos: it.queuePos}
	}
	return cp
}

// Restore puts the queue and its items back as they were at the checkpoint.
func (cp *Checkpoint) Restore() {
	cp.queue.items = cp.items
	cp.queue.retired = cp.retired
	for it, s := range cp.saved {
		it.state = s.state
		it.queuePos = s.queuePos
	}
}
