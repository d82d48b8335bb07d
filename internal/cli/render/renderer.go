package render

import (
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.RefreshWalletsResult] = (*WalletsRenderer)(nil)
	_ Renderer[*domain.RunSummary]            = (*SummaryRenderer)(nil)
)
