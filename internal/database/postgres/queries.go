package postgres

// Item instance statements. Token columns hold space separated integers.
const (
	sqlUpsertItem = `INSERT INTO item_instance (
		item_entry, owner_guid, creator_guid, gift_creator_guid, count, duration, charges, flags,
		enchantments, random_bonus_list_id, durability, create_played_time, text,
		battlepet_species_id, battlepet_breed_data, battlepet_level, battlepet_display_id,
		context, bonus_list_ids, guid)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	ON CONFLICT (guid) DO UPDATE SET
		item_entry = EXCLUDED.item_entry,
		owner_guid = EXCLUDED.owner_guid,
		creator_guid = EXCLUDED.creator_guid,
		gift_creator_guid = EXCLUDED.gift_creator_guid,
		count = EXCLUDED.count,
		duration = EXCLUDED.duration,
		charges = EXCLUDED.charges,
		flags = EXCLUDED.flags,
		enchantments = EXCLUDED.enchantments,
		random_bonus_list_id = EXCLUDED.random_bonus_list_id,
		durability = EXCLUDED.durability,
		create_played_time = EXCLUDED.create_played_time,
		text = EXCLUDED.text,
		battlepet_species_id = EXCLUDED.battlepet_species_id,
		battlepet_breed_data = EXCLUDED.battlepet_breed_data,
		battlepet_level = EXCLUDED.battlepet_level,
		battlepet_display_id = EXCLUDED.battlepet_display_id,
		context = EXCLUDED.context,
		bonus_list_ids = EXCLUDED.bonus_list_ids`

	sqlUpdateItemOnLoad = `UPDATE item_instance SET duration = $1, flags = $2, durability = $3 WHERE guid = $4`

	sqlDeleteItem = `DELETE FROM item_instance WHERE guid = $1`

	sqlSelectItem = `SELECT
		i.guid, i.item_entry, i.owner_guid, i.creator_guid, i.gift_creator_guid, i.count, i.duration,
		i.charges, i.flags, i.enchantments, i.random_bonus_list_id, i.durability, i.create_played_time,
		i.text, i.battlepet_species_id, i.battlepet_breed_data, i.battlepet_level, i.battlepet_display_id,
		i.context, i.bonus_list_ids,
		COALESCE(t.item_modified_appearance_all_specs, 0),
		COALESCE(t.item_modified_appearance_spec1, 0),
		COALESCE(t.item_modified_appearance_spec2, 0),
		COALESCE(t.item_modified_appearance_spec3, 0),
		COALESCE(t.item_modified_appearance_spec4, 0),
		COALESCE(t.spell_item_enchantment_all_specs, 0),
		COALESCE(t.spell_item_enchantment_spec1, 0),
		COALESCE(t.spell_item_enchantment_spec2, 0),
		COALESCE(t.spell_item_enchantment_spec3, 0),
		COALESCE(t.spell_item_enchantment_spec4, 0),
		COALESCE(m.fixed_scaling_level, 0),
		COALESCE(m.artifact_knowledge_level, 0)
	FROM item_instance i
	LEFT JOIN item_instance_transmog t ON t.item_guid = i.guid
	LEFT JOIN item_instance_modifiers m ON m.item_guid = i.guid
	WHERE i.guid = $1`

	sqlUpdateGiftOwner = `UPDATE character_gifts SET owner_guid = $1 WHERE item_guid = $2`
	sqlDeleteGift      = `DELETE FROM character_gifts WHERE item_guid = $1`
)

// Child tables of an item instance.
const (
	sqlDeleteGems = `DELETE FROM item_instance_gems WHERE item_guid = $1`
	sqlInsertGem  = `INSERT INTO item_instance_gems
		(item_guid, slot, gem_item_id, gem_bonuses, gem_context, gem_scaling_level)
	VALUES ($1, $2, $3, $4, $5, $6)`
	sqlSelectGems = `SELECT slot, gem_item_id, gem_bonuses, gem_context, gem_scaling_level
	FROM item_instance_gems WHERE item_guid = $1 ORDER BY slot`

	sqlDeleteTransmog = `DELETE FROM item_instance_transmog WHERE item_guid = $1`
	sqlInsertTransmog = `INSERT INTO item_instance_transmog (item_guid,
		item_modified_appearance_all_specs, item_modified_appearance_spec1, item_modified_appearance_spec2,
		item_modified_appearance_spec3, item_modified_appearance_spec4,
		spell_item_enchantment_all_specs, spell_item_enchantment_spec1, spell_item_enchantment_spec2,
		spell_item_enchantment_spec3, spell_item_enchantment_spec4)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	sqlDeleteArtifact = `DELETE FROM item_instance_artifact WHERE item_guid = $1`
	sqlInsertArtifact = `INSERT INTO item_instance_artifact (item_guid, xp, artifact_appearance_id, artifact_tier)
	VALUES ($1, $2, $3, $4)`
	sqlSelectArtifact = `SELECT xp, artifact_appearance_id, artifact_tier
	FROM item_instance_artifact WHERE item_guid = $1`

	sqlDeleteArtifactPowers = `DELETE FROM item_instance_artifact_powers WHERE item_guid = $1`
	sqlInsertArtifactPower  = `INSERT INTO item_instance_artifact_powers (item_guid, artifact_power_id, purchased_rank)
	VALUES ($1, $2, $3)`
	sqlSelectArtifactPowers = `SELECT artifact_power_id, purchased_rank
	FROM item_instance_artifact_powers WHERE item_guid = $1 ORDER BY artifact_power_id`

	sqlDeleteModifiers = `DELETE FROM item_instance_modifiers WHERE item_guid = $1`
	sqlInsertModifiers = `INSERT INTO item_instance_modifiers (item_guid, fixed_scaling_level, artifact_knowledge_level)
	VALUES ($1, $2, $3)`
)

// Refunds
const (
	sqlDeleteRefund = `DELETE FROM item_refund_instance WHERE item_guid = $1`
	sqlInsertRefund = `INSERT INTO item_refund_instance (item_guid, player_guid, paid_money, paid_extended_cost)
	VALUES ($1, $2, $3, $4)`
	sqlSelectRefund = `SELECT player_guid, paid_money, paid_extended_cost
	FROM item_refund_instance WHERE item_guid = $1 AND player_guid = $2`
)

// Container loot
const (
	sqlDeleteLootMoney = `DELETE FROM item_loot_money WHERE container_guid = $1`
	sqlInsertLootMoney = `INSERT INTO item_loot_money (container_guid, money) VALUES ($1, $2)`
	sqlSelectLootMoney = `SELECT money FROM item_loot_money WHERE container_guid = $1`

	sqlDeleteLootItems = `DELETE FROM item_loot_items WHERE container_guid = $1`
	sqlDeleteLootItem  = `DELETE FROM item_loot_items WHERE container_guid = $1 AND item_id = $2`
	sqlInsertLootItem  = `INSERT INTO item_loot_items (container_guid, item_id, item_count, follow_rules,
		free_for_all, blocked, counted, under_threshold, needs_quest, random_bonus_list_id, context, bonus_list_ids)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	sqlSelectLootItems = `SELECT item_id, item_count, follow_rules, free_for_all, blocked, counted,
		under_threshold, needs_quest, random_bonus_list_id, context, bonus_list_ids
	FROM item_loot_items WHERE container_guid = $1`
)
