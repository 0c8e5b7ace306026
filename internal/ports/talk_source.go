package ports

import (
	"context"

	"github.com/bnema/conference-tracks/internal/domain"
)

type TalkSource interface {
	Talks(ctx context.Context) ([]domain.Talk, error)
}
