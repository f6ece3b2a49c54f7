package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/economy"
	"github.com/osse101/ItemForge_Go/internal/item"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/repository"
	"github.com/osse101/ItemForge_Go/internal/utils"
)

// ItemLoader loads a persisted item on behalf of its owner.
type ItemLoader interface {
	Load(ctx context.Context, guid, owner domain.GUID) (*item.Item, error)
}

// PriceQuoter prices templates and item instances.
type PriceQuoter interface {
	BuyPrice(tmpl *domain.ItemTemplate, quality domain.ItemQuality, itemLevel uint32) (uint32, bool)
	SellPrice(tmpl *domain.ItemTemplate, quality domain.ItemQuality, itemLevel uint32) uint32
	ItemBuyPrice(it economy.Priceable, itemLevel uint32) (uint32, bool)
	ItemSellPrice(it economy.Priceable, itemLevel uint32) uint32
}

// PriceResponse is a vendor quote. Standard is true when the buy price came
// from the template instead of the import price tables.
type PriceResponse struct {
	TemplateID uint32 `json:"template_id"`
	Quality    string `json:"quality"`
	ItemLevel  uint32 `json:"item_level"`
	BuyPrice   uint32 `json:"buy_price"`
	SellPrice  uint32 `json:"sell_price"`
	Standard   bool   `json:"standard"`
}

// ItemResponse is the inspection view of a persisted item.
type ItemResponse struct {
	GUID          domain.GUID `json:"guid"`
	Owner         domain.GUID `json:"owner"`
	Name          string      `json:"name"`
	Count         uint32      `json:"count"`
	RequiredLevel int32       `json:"required_level"`
	BonusListIDs  []uint32    `json:"bonus_list_ids"`
	Durability    uint32      `json:"durability"`
	MaxDurability uint32      `json:"max_durability"`
	Soulbound     bool        `json:"soulbound"`
	PriceResponse
}

// ItemHandler serves the read-only item inspection endpoints.
type ItemHandler struct {
	items     ItemLoader
	templates repository.TemplateCatalog
	prices    PriceQuoter
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(items ItemLoader, templates repository.TemplateCatalog, prices PriceQuoter) *ItemHandler {
	return &ItemHandler{items: items, templates: templates, prices: prices}
}

// HandleGetItem loads an item by guid and reports its resolved quality, item
// level and vendor prices. The optional owner query parameter names the
// holding player; ownerless items are viewed at player level 1.
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	guid, ok := parseUintParam(w, r, ParamGUID, 64, ErrMsgInvalidItemGUID)
	if !ok {
		return
	}
	owner, err := parseOptionalUintQuery(r, QueryOwner, 64)
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, ErrMsgInvalidOwnerGUID)
		return
	}

	it, err := h.items.Load(ctx, domain.GUID(guid), domain.GUID(owner))
	if err != nil {
		status, msg := mapServiceError(err)
		if status >= http.StatusInternalServerError {
			log.Error(LogMsgLoadItemFailed, "item_guid", guid, "error", err)
		}
		respondError(ctx, w, status, msg)
		return
	}

	level := it.ItemLevel(nil)
	buy, standard := h.prices.ItemBuyPrice(it, level)

	log.Debug(LogMsgItemInspected, "item_guid", guid, "entry", it.Entry(), "item_level", level)
	respondJSON(ctx, w, http.StatusOK, ItemResponse{
		GUID:          it.GUID(),
		Owner:         it.OwnerGUID(),
		Name:          it.Template().Name,
		Count:         it.Count(),
		RequiredLevel: it.RequiredLevel(),
		BonusListIDs:  it.BonusListIDs(),
		Durability:    it.Durability(),
		MaxDurability: it.MaxDurability(),
		Soulbound:     it.IsSoulBound(),
		PriceResponse: PriceResponse{
			TemplateID: it.Entry(),
			Quality:    utils.QualityName(it.Quality()),
			ItemLevel:  level,
			BuyPrice:   buy,
			SellPrice:  h.prices.ItemSellPrice(it, level),
			Standard:   standard,
		},
	})
}

// templatePriceQuery overrides the template's own quality and base item level.
type templatePriceQuery struct {
	Quality   string `validate:"omitempty,quality"`
	ItemLevel uint32 `validate:"omitempty,min=1,max=1300"`
}

// HandleGetTemplatePrice quotes the vendor prices of a template, optionally
// at another quality or item level.
func (h *ItemHandler) HandleGetTemplatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseUintParam(w, r, ParamTemplateID, 32, ErrMsgInvalidTemplateID)
	if !ok {
		return
	}

	level, err := parseOptionalUintQuery(r, QueryItemLevel, 32)
	if err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{QueryItemLevel: "Invalid value"},
		})
		return
	}
	q := templatePriceQuery{Quality: r.URL.Query().Get(QueryQuality), ItemLevel: uint32(level)}
	if !validateRequest(w, r, &q) {
		return
	}

	tmpl, found := h.templates.Template(uint32(id))
	if !found {
		respondError(ctx, w, http.StatusNotFound, ErrMsgTemplateNotFound)
		return
	}

	quality := tmpl.Quality
	if q.Quality != "" {
		quality, _ = utils.ParseQuality(q.Quality)
	}
	itemLevel := tmpl.BaseItemLevel
	if q.ItemLevel != 0 {
		itemLevel = q.ItemLevel
	}

	buy, standard := h.prices.BuyPrice(tmpl, quality, itemLevel)
	resp := PriceResponse{
		TemplateID: tmpl.ID,
		Quality:    utils.QualityName(quality),
		ItemLevel:  itemLevel,
		BuyPrice:   buy,
		SellPrice:  h.prices.SellPrice(tmpl, quality, itemLevel),
		Standard:   standard,
	}
	logger.FromContext(ctx).Debug(LogMsgTemplatePriceQuote, "template_id", tmpl.ID, "buy", resp.BuyPrice)
	respondJSON(ctx, w, http.StatusOK, resp)
}
