package domain

import "github.com/samber/lo"

// LootItem is one unresolved entry of an openable container's loot.
type LootItem struct {
	ItemID            uint32      `json:"item_id"`
	Count             uint8       `json:"count"`
	FollowLootRules   bool        `json:"follow_loot_rules"`
	FreeForAll        bool        `json:"ffa"`
	Blocked           bool        `json:"blocked"`
	Counted           bool        `json:"counted"`
	UnderThreshold    bool        `json:"under_threshold"`
	NeedsQuest        bool        `json:"needs_quest"`
	RandomBonusListID uint32      `json:"random_bonus_list_id"`
	Context           ItemContext `json:"context"`
	BonusListIDs      []uint32    `json:"bonus_list_ids"`

	// CanSave is false once the entry has been looted; looted entries stay in
	// the slice but are not persisted again.
	CanSave        bool   `json:"-"`
	AllowedLooters []GUID `json:"-"`
}

// AllowedFor reports whether the player may loot this entry. An empty
// allow-list means anyone.
func (l *LootItem) AllowedFor(player GUID) bool {
	return len(l.AllowedLooters) == 0 || lo.Contains(l.AllowedLooters, player)
}

// ContainerLoot is the pending loot of an openable item.
type ContainerLoot struct {
	Container     GUID       `json:"container"`
	Gold          uint32     `json:"gold"`
	Items         []LootItem `json:"items"`
	UnlootedCount uint32     `json:"unlooted_count"`
}

// IsLooted reports whether no money or items remain.
func (l *ContainerLoot) IsLooted() bool {
	return l == nil || (l.Gold == 0 && l.UnlootedCount == 0)
}
