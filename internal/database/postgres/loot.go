package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/item"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

// PersistContainerLoot stores the unresolved loot of an openable item in its
// own transaction. Looted entries and entries the owner may not take are
// skipped.
func (g *ItemGateway) PersistContainerLoot(ctx context.Context, it *item.Item) error {
	loot := it.Loot()
	if loot.IsLooted() {
		return nil
	}
	loot.Container = it.GUID()

	tx, err := g.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if loot.Gold > 0 {
		if _, err := tx.Exec(ctx, sqlDeleteLootMoney, loot.Container); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveContainerLoot, err)
		}
		if _, err := tx.Exec(ctx, sqlInsertLootMoney, loot.Container, loot.Gold); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveContainerLoot, err)
		}
	}

	if _, err := tx.Exec(ctx, sqlDeleteLootItems, loot.Container); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveContainerLoot, err)
	}

	saved := 0
	for i := range loot.Items {
		li := &loot.Items[i]
		if !li.CanSave || !li.AllowedFor(it.OwnerGUID()) {
			continue
		}
		_, err := tx.Exec(ctx, sqlInsertLootItem,
			loot.Container, li.ItemID, li.Count, li.FollowLootRules, li.FreeForAll, li.Blocked, li.Counted,
			li.UnderThreshold, li.NeedsQuest, li.RandomBonusListID, li.Context, item.FormatListIDs(li.BonusListIDs))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveContainerLoot, err)
		}
		saved++
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTransaction, err)
	}

	logger.FromContext(ctx).Debug(LogMsgContainerLootSaved, "item_guid", it.GUID(), "gold", loot.Gold, "items", saved)
	return nil
}

// LoadContainerLoot restores stored loot onto an openable item. When nothing
// remains the item is left without loot so it is rolled afresh on opening.
// Loot of a bagged container is reserved for its owner.
func (g *ItemGateway) LoadContainerLoot(ctx context.Context, it *item.Item) error {
	loot := &domain.ContainerLoot{Container: it.GUID()}

	err := g.db.QueryRow(ctx, sqlSelectLootMoney, loot.Container).Scan(&loot.Gold)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", ErrMsgLoadContainerLoot, err)
	}

	rows, err := g.db.Query(ctx, sqlSelectLootItems, loot.Container)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadContainerLoot, err)
	}
	defer rows.Close()

	for rows.Next() {
		var li domain.LootItem
		var bonusLists string
		if err := rows.Scan(&li.ItemID, &li.Count, &li.FollowLootRules, &li.FreeForAll, &li.Blocked, &li.Counted,
			&li.UnderThreshold, &li.NeedsQuest, &li.RandomBonusListID, &li.Context, &bonusLists); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgLoadContainerLoot, err)
		}
		li.BonusListIDs = item.ParseListIDs(bonusLists)
		li.CanSave = true
		if !it.BagGUID().IsEmpty() {
			li.AllowedLooters = []domain.GUID{it.OwnerGUID()}
		}
		loot.Items = append(loot.Items, li)
		loot.UnlootedCount++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadContainerLoot, err)
	}

	it.SetLoot(loot)
	return nil
}

// DeleteContainerLoot removes every stored loot row of a container.
func (g *ItemGateway) DeleteContainerLoot(ctx context.Context, guid domain.GUID) error {
	tx, err := g.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, sqlDeleteLootMoney, guid); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteContainerLoot, err)
	}
	if _, err := tx.Exec(ctx, sqlDeleteLootItems, guid); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteContainerLoot, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTransaction, err)
	}
	return nil
}

// DeleteContainerLootItem removes the stored rows of one looted item.
func (g *ItemGateway) DeleteContainerLootItem(ctx context.Context, guid domain.GUID, itemID uint32) error {
	if _, err := g.db.Exec(ctx, sqlDeleteLootItem, guid, itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteContainerLoot, err)
	}
	return nil
}
