package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"

	"github.com/osse101/ItemForge_Go/internal/artifact"
	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/item"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// Querier is the part of pgxpool.Pool used by the gateway.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var (
	_ item.RefundStore                = (*ItemGateway)(nil)
	_ repository.TransactionCommitter = (*ItemGateway)(nil)
)

// SaveResult reports what the caller must do with an item after Save.
type SaveResult struct {
	// Discard is set once a removed item's deletes are in the transaction;
	// the caller drops every reference to it.
	Discard bool
}

// ItemGateway persists item instances and their child rows. Per item saves
// only append statements to the caller's transaction; the storage worker
// commits them through CommitTransaction.
type ItemGateway struct {
	db  Querier
	svc *item.Services
}

// NewItemGateway creates a gateway. svc resolves templates and bonuses when
// items are loaded.
func NewItemGateway(db Querier, svc *item.Services) *ItemGateway {
	return &ItemGateway{db: db, svc: svc}
}

// ==================== Saving ====================

// Save appends the statements that bring the stored rows in line with the
// item's save state.
func (g *ItemGateway) Save(ctx context.Context, trans *database.Transaction, it *item.Item) SaveResult {
	state := it.State()
	switch state {
	case domain.ItemNew, domain.ItemChanged:
		g.appendUpsert(trans, it)
		it.MarkUnchanged()
		metrics.ItemsSaved.WithLabelValues(state.String()).Inc()
		logger.FromContext(ctx).Debug(LogMsgItemSaved, "item_guid", it.GUID(), "state", state, "transaction", trans.ID())
		return SaveResult{}
	case domain.ItemRemoved:
		g.appendDelete(trans, it)
		metrics.ItemsSaved.WithLabelValues(state.String()).Inc()
		metrics.ItemsDiscarded.Inc()
		logger.FromContext(ctx).Debug(LogMsgItemDeleted, "item_guid", it.GUID(), "transaction", trans.ID())
		return SaveResult{Discard: true}
	default:
		return SaveResult{}
	}
}

// FlushQueue saves every pending item of the queue in order and resets it.
// Removed items come back so the caller can release them.
func (g *ItemGateway) FlushQueue(ctx context.Context, trans *database.Transaction, queue *item.SaveQueue) []*item.Item {
	pending := queue.Pending()
	var discarded []*item.Item
	for _, it := range pending {
		if g.Save(ctx, trans, it).Discard {
			discarded = append(discarded, it)
		}
	}
	queue.Reset()
	logger.FromContext(ctx).Debug(LogMsgQueueFlushed,
		"items", len(pending),
		"discarded", len(discarded),
		"transaction", trans.ID())
	return discarded
}

func (g *ItemGateway) appendUpsert(trans *database.Transaction, it *item.Item) {
	rec := it.ToRecord()
	guid := rec.GUID

	trans.Append(sqlUpsertItem,
		rec.Entry, rec.Owner, rec.Creator, rec.GiftCreator, rec.Count, rec.Duration, rec.Charges, rec.Flags,
		rec.Enchantments, rec.RandomBonusListID, rec.Durability, rec.CreatePlayedTime, rec.Text,
		rec.BattlePetSpeciesID, rec.BattlePetBreedData, rec.BattlePetLevel, rec.BattlePetDisplayID,
		rec.Context, rec.BonusListIDs, guid)

	if it.State() == domain.ItemChanged && it.HasFlag(domain.ItemFieldFlagWrapped) {
		trans.Append(sqlUpdateGiftOwner, rec.Owner, guid)
	}

	trans.Append(sqlDeleteGems, guid)
	for slot, gem := range rec.Gems {
		if gem.ItemID == 0 {
			continue
		}
		trans.Append(sqlInsertGem, guid, slot, gem.ItemID, gem.BonusListIDs, gem.Context, gem.ScalingLevel)
	}

	trans.Append(sqlDeleteTransmog, guid)
	if rec.HasTransmog() {
		trans.Append(sqlInsertTransmog, append([]any{guid}, lo.ToAnySlice(rec.Transmog[:])...)...)
	}

	trans.Append(sqlDeleteArtifact, guid)
	trans.Append(sqlDeleteArtifactPowers, guid)
	if it.IsArtifact() {
		ar := it.ArtifactRecord()
		trans.Append(sqlInsertArtifact, guid, ar.XP, ar.AppearanceID, ar.Tier)
		for _, p := range ar.Powers {
			trans.Append(sqlInsertArtifactPower, guid, p.ID, p.PurchasedRank)
		}
	}

	trans.Append(sqlDeleteModifiers, guid)
	if rec.HasGenericModifiers() {
		trans.Append(sqlInsertModifiers, append([]any{guid}, lo.ToAnySlice(rec.Generic[:])...)...)
	}
}

func (g *ItemGateway) appendDelete(trans *database.Transaction, it *item.Item) {
	guid := it.GUID()
	for _, sql := range []string{
		sqlDeleteItem,
		sqlDeleteGems,
		sqlDeleteTransmog,
		sqlDeleteArtifact,
		sqlDeleteArtifactPowers,
		sqlDeleteModifiers,
		sqlDeleteRefund,
	} {
		trans.Append(sql, guid)
	}
	if it.HasFlag(domain.ItemFieldFlagWrapped) {
		trans.Append(sqlDeleteGift, guid)
	}
	if it.LootGenerated() {
		trans.Append(sqlDeleteLootMoney, guid)
		trans.Append(sqlDeleteLootItems, guid)
	}
}

// ==================== Loading ====================

// Load reads an item and its child rows. A non-zero owner overrides the
// stored owner and is the player whose refund record is restored.
// Corrections applied while loading are written back at once. Artifact
// state is restored after gems and enchantments so relic bonuses apply.
// Container loot is read on demand by LoadContainerLoot.
func (g *ItemGateway) Load(ctx context.Context, guid, owner domain.GUID) (*item.Item, error) {
	rec, err := g.selectRecord(ctx, guid)
	if err != nil {
		return nil, err
	}

	it, needSave, err := item.FromRecord(ctx, g.svc, rec, owner)
	if err != nil {
		return nil, err
	}

	if needSave {
		logger.FromContext(ctx).Info(LogMsgLoadCorrections, "item_guid", guid)
		if _, err := g.db.Exec(ctx, sqlUpdateItemOnLoad, it.Expiration(), it.Flags(), it.Durability(), guid); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgUpdateOnLoad, err)
		}
	}

	if it.IsArtifact() {
		art, err := g.LoadArtifact(ctx, guid)
		if err != nil {
			return nil, err
		}
		it.LoadArtifactData(ctx, nil, art)
	}

	if !owner.IsEmpty() {
		if err := g.LoadRefundData(ctx, it, owner); err != nil {
			return nil, err
		}
	}
	return it, nil
}

func (g *ItemGateway) selectRecord(ctx context.Context, guid domain.GUID) (item.Record, error) {
	var rec item.Record
	dest := []any{
		&rec.GUID, &rec.Entry, &rec.Owner, &rec.Creator, &rec.GiftCreator, &rec.Count, &rec.Duration,
		&rec.Charges, &rec.Flags, &rec.Enchantments, &rec.RandomBonusListID, &rec.Durability, &rec.CreatePlayedTime,
		&rec.Text, &rec.BattlePetSpeciesID, &rec.BattlePetBreedData, &rec.BattlePetLevel, &rec.BattlePetDisplayID,
		&rec.Context, &rec.BonusListIDs,
	}
	for i := range rec.Transmog {
		dest = append(dest, &rec.Transmog[i])
	}
	for i := range rec.Generic {
		dest = append(dest, &rec.Generic[i])
	}

	if err := g.db.QueryRow(ctx, sqlSelectItem, guid).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rec, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, guid)
		}
		return rec, fmt.Errorf("%s: %w", ErrMsgSelectItem, err)
	}

	rows, err := g.db.Query(ctx, sqlSelectGems, guid)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgSelectGems, err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot int
		var gem item.GemRecord
		if err := rows.Scan(&slot, &gem.ItemID, &gem.BonusListIDs, &gem.Context, &gem.ScalingLevel); err != nil {
			return rec, fmt.Errorf("%s: %w", ErrMsgScanGem, err)
		}
		if slot < 0 || slot >= len(rec.Gems) {
			continue
		}
		rec.Gems[slot] = gem
	}
	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgSelectGems, err)
	}
	return rec, nil
}

// LoadArtifact reads the stored artifact state of an item, ready for
// Item.LoadArtifactData. An item without an artifact row yields a zero
// record.
func (g *ItemGateway) LoadArtifact(ctx context.Context, guid domain.GUID) (artifact.Record, error) {
	var rec artifact.Record
	err := g.db.QueryRow(ctx, sqlSelectArtifact, guid).Scan(&rec.XP, &rec.AppearanceID, &rec.Tier)
	if errors.Is(err, pgx.ErrNoRows) {
		return artifact.Record{}, nil
	}
	if err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgSelectArtifact, err)
	}

	rows, err := g.db.Query(ctx, sqlSelectArtifactPowers, guid)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgSelectArtifact, err)
	}
	defer rows.Close()

	tables := g.svc.Resolver.Tables()
	for rows.Next() {
		var id uint32
		var purchased uint8
		if err := rows.Scan(&id, &purchased); err != nil {
			return rec, fmt.Errorf("%s: %w", ErrMsgScanArtifactPower, err)
		}
		rec.Powers = append(rec.Powers, artifact.StoredPower(tables, rec.Tier, id, purchased))
	}
	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgSelectArtifact, err)
	}
	return rec, nil
}

// ==================== Refunds ====================

// SaveRefundData replaces the refund record of an item.
func (g *ItemGateway) SaveRefundData(_ context.Context, trans *database.Transaction, rec item.RefundRecord) {
	trans.Append(sqlDeleteRefund, rec.Item)
	trans.Append(sqlInsertRefund, rec.Item, rec.Recipient, rec.PaidMoney, rec.PaidExtendedCost)
}

// DeleteRefundData removes the refund record of an item.
func (g *ItemGateway) DeleteRefundData(_ context.Context, trans *database.Transaction, guid domain.GUID) {
	trans.Append(sqlDeleteRefund, guid)
}

// LoadRefundData restores the purchase data of a refundable item bought by
// player. A refundable item without a stored record loses the flag.
func (g *ItemGateway) LoadRefundData(ctx context.Context, it *item.Item, player domain.GUID) error {
	if !it.HasFlag(domain.ItemFieldFlagRefundable) {
		return nil
	}

	var recipient domain.GUID
	var paidMoney uint64
	var paidExtendedCost uint32
	err := g.db.QueryRow(ctx, sqlSelectRefund, it.GUID(), player).Scan(&recipient, &paidMoney, &paidExtendedCost)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.FromContext(ctx).Warn(LogMsgRefundMissing, "item_guid", it.GUID(), "player_guid", player)
		it.RemoveFlag(domain.ItemFieldFlagRefundable)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSelectRefund, err)
	}

	it.SetRefund(recipient, paidMoney, paidExtendedCost)
	return nil
}

// ==================== Commit ====================

// CommitTransaction executes the statements of trans in order inside one
// database transaction.
func (g *ItemGateway) CommitTransaction(ctx context.Context, trans *database.Transaction) error {
	if trans.Empty() {
		return nil
	}

	tx, err := g.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	for i, st := range trans.Statements() {
		if _, err := tx.Exec(ctx, st.SQL, st.Args...); err != nil {
			return fmt.Errorf(ErrFmtStatement, i, trans.ID(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTransaction, err)
	}

	logger.FromContext(ctx).Debug(LogMsgTransactionCommitted, "transaction", trans.ID(), "statements", trans.Len())
	return nil
}
