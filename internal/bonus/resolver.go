package bonus

import (
	"context"
	"encoding/binary"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/zeebo/xxh3"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// Resolver composes templates and bonus lists into Data. Balance tables are
// immutable so a Resolver is safe to share between shards; the memo cache is
// internally synchronised.
type Resolver struct {
	catalog  repository.TemplateCatalog
	tables   repository.BalanceTables
	maxStats int
	cache    *expirable.LRU[uint64, *cachedData]
}

// cachedData keeps the inputs next to the result so a hash collision is
// detected instead of served.
type cachedData struct {
	templateID uint32
	lists      []uint32
	data       *Data
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxStats overrides the number of stat slots per item.
func WithMaxStats(n int) Option {
	return func(r *Resolver) { r.maxStats = n }
}

// WithCache sizes the composition cache. A size of zero disables caching.
func WithCache(size int, ttl time.Duration) Option {
	return func(r *Resolver) {
		if size <= 0 {
			r.cache = nil
			return
		}
		r.cache = expirable.NewLRU[uint64, *cachedData](size, nil, ttl)
	}
}

// NewResolver creates a resolver over the given registries.
func NewResolver(catalog repository.TemplateCatalog, tables repository.BalanceTables, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:  catalog,
		tables:   tables,
		maxStats: domain.MaxItemStats,
		cache:    expirable.NewLRU[uint64, *cachedData](DefaultCacheSize, nil, DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tables exposes the balance tables the resolver reads.
func (r *Resolver) Tables() repository.BalanceTables { return r.tables }

// Catalog exposes the template catalog the resolver reads.
func (r *Resolver) Catalog() repository.TemplateCatalog { return r.catalog }

// Base returns the template baseline.
func (r *Resolver) Base(tmpl *domain.ItemTemplate) *Data {
	d := NewData(tmpl, r.maxStats)
	if tmpl != nil {
		if emp, ok := r.tables.AzeriteEmpoweredItem(tmpl.ID); ok {
			d.AzeriteTierUnlockSetID = emp.AzeriteTierUnlockSetID
		}
	}
	return d
}

// AddBonusList applies every entry of a bonus list to d. Unknown lists are
// data integrity problems, not faults: they are logged and skipped.
func (r *Resolver) AddBonusList(ctx context.Context, d *Data, listID uint32) {
	entries, ok := r.tables.BonusList(listID)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownBonusList, "bonus_list_id", listID)
		metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindBonusList).Inc()
		return
	}
	d.AddEntries(entries)
}

// Resolve composes tmpl with lists in the supplied order. The returned Data
// is owned by the caller.
func (r *Resolver) Resolve(ctx context.Context, tmpl *domain.ItemTemplate, lists []uint32) *Data {
	if tmpl == nil {
		return r.Base(nil)
	}
	if r.cache == nil {
		return r.compose(ctx, tmpl, lists)
	}

	key := cacheKey(tmpl.ID, lists)
	if hit, ok := r.cache.Get(key); ok && hit.templateID == tmpl.ID && slices.Equal(hit.lists, lists) {
		metrics.BonusCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
		return hit.data.Clone()
	}
	metrics.BonusCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()

	d := r.compose(ctx, tmpl, lists)
	r.cache.Add(key, &cachedData{templateID: tmpl.ID, lists: slices.Clone(lists), data: d.Clone()})
	return d
}

func (r *Resolver) compose(ctx context.Context, tmpl *domain.ItemTemplate, lists []uint32) *Data {
	d := r.Base(tmpl)
	for _, id := range lists {
		r.AddBonusList(ctx, d, id)
	}
	return d
}

// ItemLevel computes the effective item level against the resolver's tables.
func (r *Resolver) ItemLevel(in LevelInput) uint32 {
	return ItemLevel(r.tables, in)
}

// FixedLevel clamps level into the scaling band of d.
func (r *Resolver) FixedLevel(d *Data, level uint32) (uint32, bool) {
	return FixedLevel(r.tables, d, level)
}

// Purge drops every memoised composition.
func (r *Resolver) Purge() {
	if r.cache != nil {
		r.cache.Purge()
	}
}

func cacheKey(templateID uint32, lists []uint32) uint64 {
	buf := make([]byte, 4*(len(lists)+1))
	binary.LittleEndian.PutUint32(buf, templateID)
	for i, id := range lists {
		binary.LittleEndian.PutUint32(buf[4*(i+1):], id)
	}
	return xxh3.Hash(buf)
}
