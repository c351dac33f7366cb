package handler

import (
	"net/http"

	"github.com/osse101/CropProfit_Go/internal/pricing"
)

// SeedPriceResponse is the answer of GET /api/v1/seeds/price. ShopPrice and
// Stocked are set only when a shop was named.
type SeedPriceResponse struct {
	ItemID        string `json:"item_id"`
	Cheapest      int    `json:"cheapest"`
	MostExpensive int    `json:"most_expensive"`
	Shop          string `json:"shop,omitempty"`
	ShopPrice     *int   `json:"shop_price,omitempty"`
	Stocked       *bool  `json:"stocked,omitempty"`
}

// HandleGetSeedPrice looks up what a seed costs.
// @Summary Seed price
// @Tags seeds
// @Produce json
// @Param item query string true "Seed item id, qualified or bare"
// @Param shop query string false "Shop id"
// @Success 200 {object} SeedPriceResponse
// @Failure 404 {object} ErrorResponse "Unknown shop"
// @Router /api/v1/seeds/price [get]
func HandleGetSeedPrice(svc PriceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetQueryParam(r, w, "item")
		if !ok {
			return
		}

		cheapest, err := svc.CheapestSeedPrice(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgSeedPriceFailed, err)
			return
		}
		expensive, err := svc.ExpensiveSeedPrice(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgSeedPriceFailed, err)
			return
		}
		resp := SeedPriceResponse{ItemID: itemID, Cheapest: cheapest, MostExpensive: expensive}

		if shopID := GetOptionalQueryParam(r, "shop", ""); shopID != "" {
			price, err := svc.SpecificShopPrice(r.Context(), itemID, shopID)
			if err != nil {
				respondServiceError(w, r, ErrMsgSeedPriceFailed, err)
				return
			}
			stocked := price != pricing.NoShopPrice
			resp.Shop = shopID
			resp.Stocked = &stocked
			if stocked {
				resp.ShopPrice = &price
			}
		}

		respondJSON(w, r, http.StatusOK, resp)
	}
}
