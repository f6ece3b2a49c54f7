package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

var (
	_ repository.TemplateCatalog = (*Catalog)(nil)
	_ repository.BalanceTables   = (*Catalog)(nil)
)

// TemplateFile is the on-disk shape of templates.json.
type TemplateFile struct {
	Version   string                `json:"version"`
	Templates []domain.ItemTemplate `json:"templates" validate:"dive"`
}

// PvpItemLevelBonus grants extra item levels in PvP contexts.
type PvpItemLevelBonus struct {
	ItemID uint32 `json:"item_id" validate:"required"`
	Bonus  uint32 `json:"bonus"`
}

// BalanceFile is the on-disk shape of balance.json.
type BalanceFile struct {
	Version                  string                           `json:"version"`
	BonusLists               []domain.ItemBonusList           `json:"bonus_lists" validate:"dive"`
	ItemLevelDeltaBonuses    []domain.ItemLevelDeltaBonus     `json:"item_level_delta_bonuses" validate:"dive"`
	Curves                   []domain.Curve                   `json:"curves" validate:"dive"`
	ScalingStatDistributions []domain.ScalingStatDistribution `json:"scaling_stat_distributions" validate:"dive"`
	ContentTunings           []domain.ContentTuning           `json:"content_tunings" validate:"dive"`
	AzeriteLevels            []domain.AzeriteLevelInfo        `json:"azerite_levels" validate:"dive"`
	AzeriteEmpoweredItems    []domain.AzeriteEmpoweredItem    `json:"azerite_empowered_items" validate:"dive"`
	PvpItemLevelBonuses      []PvpItemLevelBonus              `json:"pvp_item_level_bonuses" validate:"dive"`
	PriceQuality             []domain.PriceRow                `json:"price_quality" validate:"dive"`
	PriceBase                []domain.ItemPriceBase           `json:"price_base" validate:"dive"`
	PriceArmor               []domain.ImportPriceArmor        `json:"price_armor" validate:"dive"`
	PriceShield              []domain.PriceRow                `json:"price_shield" validate:"dive"`
	PriceWeapon              []domain.PriceRow                `json:"price_weapon" validate:"dive"`
	ItemClasses              []domain.ItemClassRecord         `json:"item_classes" validate:"dive"`
	ArtifactPowers           []domain.ArtifactPower           `json:"artifact_powers" validate:"dive"`
	ArtifactPowerRanks       []domain.ArtifactPowerRank       `json:"artifact_power_ranks" validate:"dive"`
	ArtifactPowerPickers     []domain.ArtifactPowerPicker     `json:"artifact_power_pickers" validate:"dive"`
	ArtifactAppearances      []domain.ArtifactAppearance      `json:"artifact_appearances" validate:"dive"`
	ArtifactUnlocks          []domain.ArtifactUnlock          `json:"artifact_unlocks" validate:"dive"`
	KnowledgeMultipliers     []domain.KnowledgeMultiplier     `json:"knowledge_multipliers" validate:"dive"`
	Enchantments             []domain.SpellItemEnchantment    `json:"enchantments" validate:"dive"`
	GemProperties            []domain.GemProperties           `json:"gem_properties" validate:"dive"`
}

type rankKey struct {
	powerID uint32
	rank    uint8
}

// Catalog is the immutable in-memory registry. It implements
// repository.TemplateCatalog and repository.BalanceTables.
type Catalog struct {
	templates     map[uint32]*domain.ItemTemplate
	bonusLists    map[uint32][]domain.ItemBonusEntry
	levelDeltas   map[int16]uint32
	curves        map[uint32][]domain.CurvePoint
	ssd           map[uint32]domain.ScalingStatDistribution
	contentTuning map[uint32]domain.ContentTuning
	azeriteLevels map[uint32]domain.AzeriteLevelInfo
	empowered     map[uint32]domain.AzeriteEmpoweredItem
	pvpBonus      map[uint32]uint32
	priceQuality  map[uint32]float32
	priceBase     map[uint32]domain.ItemPriceBase
	priceArmor    map[domain.InventoryType]domain.ImportPriceArmor
	priceShield   map[uint32]float32
	priceWeapon   map[uint32]float32
	itemClasses   map[domain.ItemClass]domain.ItemClassRecord
	powers        map[uint32]domain.ArtifactPower
	powersByArt   map[uint8][]domain.ArtifactPower
	powerRanks    map[rankKey]domain.ArtifactPowerRank
	pickers       map[uint32]domain.ArtifactPowerPicker
	appearances   map[uint8][]domain.ArtifactAppearance
	unlocks       map[uint8][]domain.ArtifactUnlock
	knowledge     map[uint32]float32
	enchantments  map[uint32]domain.SpellItemEnchantment
	gemProperties map[uint32]domain.GemProperties
}

// New validates and indexes the catalog records.
func New(templates TemplateFile, balance BalanceFile) (*Catalog, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(templates); err != nil {
		return nil, fmt.Errorf(ErrFmtRecordInvalid, domain.ErrCatalogInvalid, err.Error())
	}
	if err := validate.Struct(balance); err != nil {
		return nil, fmt.Errorf(ErrFmtRecordInvalid, domain.ErrCatalogInvalid, err.Error())
	}

	c := &Catalog{
		templates:     make(map[uint32]*domain.ItemTemplate, len(templates.Templates)),
		bonusLists:    make(map[uint32][]domain.ItemBonusEntry, len(balance.BonusLists)),
		levelDeltas:   make(map[int16]uint32, len(balance.ItemLevelDeltaBonuses)),
		curves:        make(map[uint32][]domain.CurvePoint, len(balance.Curves)),
		ssd:           indexBy(balance.ScalingStatDistributions, func(r domain.ScalingStatDistribution) uint32 { return r.ID }),
		contentTuning: indexBy(balance.ContentTunings, func(r domain.ContentTuning) uint32 { return r.ID }),
		azeriteLevels: indexBy(balance.AzeriteLevels, func(r domain.AzeriteLevelInfo) uint32 { return r.Level }),
		empowered:     indexBy(balance.AzeriteEmpoweredItems, func(r domain.AzeriteEmpoweredItem) uint32 { return r.ItemID }),
		pvpBonus:      make(map[uint32]uint32, len(balance.PvpItemLevelBonuses)),
		priceQuality:  rowData(balance.PriceQuality),
		priceBase:     indexBy(balance.PriceBase, func(r domain.ItemPriceBase) uint32 { return r.ItemLevel }),
		priceArmor:    indexBy(balance.PriceArmor, func(r domain.ImportPriceArmor) domain.InventoryType { return r.InventoryType }),
		priceShield:   rowData(balance.PriceShield),
		priceWeapon:   rowData(balance.PriceWeapon),
		itemClasses:   indexBy(balance.ItemClasses, func(r domain.ItemClassRecord) domain.ItemClass { return r.ClassID }),
		powers:        make(map[uint32]domain.ArtifactPower, len(balance.ArtifactPowers)),
		powersByArt:   make(map[uint8][]domain.ArtifactPower),
		powerRanks:    make(map[rankKey]domain.ArtifactPowerRank, len(balance.ArtifactPowerRanks)),
		pickers:       indexBy(balance.ArtifactPowerPickers, func(r domain.ArtifactPowerPicker) uint32 { return r.ID }),
		appearances:   make(map[uint8][]domain.ArtifactAppearance),
		unlocks:       make(map[uint8][]domain.ArtifactUnlock),
		knowledge:     make(map[uint32]float32, len(balance.KnowledgeMultipliers)),
		enchantments:  indexBy(balance.Enchantments, func(r domain.SpellItemEnchantment) uint32 { return r.ID }),
		gemProperties: indexBy(balance.GemProperties, func(r domain.GemProperties) uint32 { return r.ID }),
	}

	for i := range templates.Templates {
		t := templates.Templates[i]
		if _, dup := c.templates[t.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateTemplate, domain.ErrCatalogInvalid, t.ID)
		}
		c.templates[t.ID] = &t
	}

	for _, l := range balance.BonusLists {
		if _, dup := c.bonusLists[l.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateBonusList, domain.ErrCatalogInvalid, l.ID)
		}
		c.bonusLists[l.ID] = slices.Clone(l.Entries)
	}

	for _, d := range balance.ItemLevelDeltaBonuses {
		if _, seen := c.levelDeltas[d.Delta]; !seen {
			c.levelDeltas[d.Delta] = d.BonusListID
		}
	}

	for _, cv := range balance.Curves {
		points := slices.Clone(cv.Points)
		slices.SortStableFunc(points, func(a, b domain.CurvePoint) int { return cmp.Compare(a.X, b.X) })
		c.curves[cv.ID] = points
	}

	for _, p := range balance.PvpItemLevelBonuses {
		c.pvpBonus[p.ItemID] = p.Bonus
	}

	for _, p := range balance.ArtifactPowers {
		if _, dup := c.powers[p.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateArtifactPow, domain.ErrCatalogInvalid, p.ID)
		}
		c.powers[p.ID] = p
		c.powersByArt[p.ArtifactID] = append(c.powersByArt[p.ArtifactID], p)
	}

	for _, r := range balance.ArtifactPowerRanks {
		c.powerRanks[rankKey{powerID: r.ArtifactPowerID, rank: r.RankIndex}] = r
	}

	for _, a := range balance.ArtifactAppearances {
		c.appearances[a.ArtifactID] = append(c.appearances[a.ArtifactID], a)
	}
	for _, a := range c.appearances {
		slices.SortStableFunc(a, func(x, y domain.ArtifactAppearance) int { return cmp.Compare(x.DisplayIndex, y.DisplayIndex) })
	}

	for _, u := range balance.ArtifactUnlocks {
		c.unlocks[u.ArtifactID] = append(c.unlocks[u.ArtifactID], u)
	}

	for _, k := range balance.KnowledgeMultipliers {
		c.knowledge[k.Level] = k.Multiplier
	}

	return c, nil
}

func indexBy[T any, K comparable](rows []T, key func(T) K) map[K]T {
	m := make(map[K]T, len(rows))
	for _, r := range rows {
		m[key(r)] = r
	}
	return m
}

func rowData(rows []domain.PriceRow) map[uint32]float32 {
	m := make(map[uint32]float32, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Data
	}
	return m
}

// TemplateCount returns the number of loaded templates.
func (c *Catalog) TemplateCount() int { return len(c.templates) }

func (c *Catalog) Template(id uint32) (*domain.ItemTemplate, bool) {
	t, ok := c.templates[id]
	return t, ok
}

func (c *Catalog) BonusList(id uint32) ([]domain.ItemBonusEntry, bool) {
	l, ok := c.bonusLists[id]
	return l, ok
}

func (c *Catalog) ItemLevelDeltaBonusList(delta int16) uint32 {
	return c.levelDeltas[delta]
}

// CurveValue evaluates a piecewise linear curve, holding the end values
// outside the sampled range.
func (c *Catalog) CurveValue(curveID uint32, x float32) float32 {
	points, ok := c.curves[curveID]
	if !ok || len(points) == 0 {
		return 0
	}
	if x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(points); i++ {
		hi := points[i]
		if x > hi.X {
			continue
		}
		lo := points[i-1]
		if hi.X == lo.X {
			return hi.Y
		}
		return lo.Y + (hi.Y-lo.Y)*(x-lo.X)/(hi.X-lo.X)
	}
	return last.Y
}

func (c *Catalog) ScalingStatDistribution(id uint32) (domain.ScalingStatDistribution, bool) {
	r, ok := c.ssd[id]
	return r, ok
}

func (c *Catalog) ContentTuning(id uint32) (domain.ContentTuning, bool) {
	r, ok := c.contentTuning[id]
	return r, ok
}

func (c *Catalog) AzeriteLevelInfo(level uint32) (domain.AzeriteLevelInfo, bool) {
	r, ok := c.azeriteLevels[level]
	return r, ok
}

func (c *Catalog) AzeriteEmpoweredItem(templateID uint32) (domain.AzeriteEmpoweredItem, bool) {
	r, ok := c.empowered[templateID]
	return r, ok
}

func (c *Catalog) PvpItemLevelBonus(templateID uint32) uint32 {
	return c.pvpBonus[templateID]
}

func (c *Catalog) PriceQuality(row uint32) (float32, bool) {
	v, ok := c.priceQuality[row]
	return v, ok
}

func (c *Catalog) PriceBase(itemLevel uint32) (domain.ItemPriceBase, bool) {
	r, ok := c.priceBase[itemLevel]
	return r, ok
}

func (c *Catalog) PriceArmor(inv domain.InventoryType) (domain.ImportPriceArmor, bool) {
	r, ok := c.priceArmor[inv]
	return r, ok
}

func (c *Catalog) PriceShield(row uint32) (float32, bool) {
	v, ok := c.priceShield[row]
	return v, ok
}

func (c *Catalog) PriceWeapon(row uint32) (float32, bool) {
	v, ok := c.priceWeapon[row]
	return v, ok
}

func (c *Catalog) ItemClass(class domain.ItemClass) (domain.ItemClassRecord, bool) {
	r, ok := c.itemClasses[class]
	return r, ok
}

func (c *Catalog) ArtifactPowers(artifactID uint8) []domain.ArtifactPower {
	return c.powersByArt[artifactID]
}

func (c *Catalog) ArtifactPower(id uint32) (domain.ArtifactPower, bool) {
	r, ok := c.powers[id]
	return r, ok
}

func (c *Catalog) ArtifactPowerRank(powerID uint32, rank uint8) (domain.ArtifactPowerRank, bool) {
	r, ok := c.powerRanks[rankKey{powerID: powerID, rank: rank}]
	return r, ok
}

func (c *Catalog) ArtifactPowerPicker(id uint32) (domain.ArtifactPowerPicker, bool) {
	r, ok := c.pickers[id]
	return r, ok
}

func (c *Catalog) ArtifactAppearances(artifactID uint8) []domain.ArtifactAppearance {
	return c.appearances[artifactID]
}

func (c *Catalog) ArtifactUnlocks(artifactID uint8) []domain.ArtifactUnlock {
	return c.unlocks[artifactID]
}

func (c *Catalog) KnowledgeMultiplier(level uint32) (float32, bool) {
	v, ok := c.knowledge[level]
	return v, ok
}

func (c *Catalog) Enchantment(id uint32) (domain.SpellItemEnchantment, bool) {
	r, ok := c.enchantments[id]
	return r, ok
}

func (c *Catalog) GemProperties(id uint32) (domain.GemProperties, bool) {
	r, ok := c.gemProperties[id]
	return r, ok
}
