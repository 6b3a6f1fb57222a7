package inbound

import (
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/domain"
)

// StoryCuratorPort normalizes raw headline records into indexed stories.
type StoryCuratorPort interface {
	Normalize(raw []outbound.RawArticle, limit int) []domain.Story
}
