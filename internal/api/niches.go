package api

import (
	"context"

	"github.com/usecart/usecart-go/internal/types"
)

// GetNiche returns the overview for a niche keyword. GET /niches/:keyword
func GetNiche(ctx context.Context, r Requester, keyword string) (*types.Response[types.NicheOverview], error) {
	return call[types.NicheOverview](ctx, r, get("niches", keyword))
}
