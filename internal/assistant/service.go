package assistant

import (
	"context"
	"fmt"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
)

const systemPromptFormat = `You are a friendly barista assistant for a café storefront.
Recommend items from the menu below only. When you mention a product, append
its token in the form {{id}} right after the name so the storefront can link it.

Menu:
%s`

// Reply is one assistant answer with its resolved product references.
type Reply struct {
	Text     string            `json:"text"`
	Products []catalog.Product `json:"products"`
}

// Service runs menu-grounded chat conversations.
type Service struct {
	completer Completer
	catalog   *catalog.Catalog
}

// NewService wires the assistant over a completion backend and the catalog.
func NewService(completer Completer, cat *catalog.Catalog) *Service {
	return &Service{completer: completer, catalog: cat}
}

// Chat answers the conversation using only the products the viewer may see.
// Product tokens in the reply are stripped from the text and surfaced as
// structured references; unknown tokens vanish.
func (s *Service) Chat(ctx context.Context, history []Message, visible []catalog.Product) (Reply, error) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{
		Role:    RoleSystem,
		Content: fmt.Sprintf(systemPromptFormat, BuildMenuContext(visible)),
	})
	messages = append(messages, history...)

	raw, err := s.completer.Complete(ctx, messages)
	if err != nil {
		return Reply{}, err
	}

	text, products := ExtractProductRefs(raw, s.catalog)
	if products == nil {
		products = []catalog.Product{}
	}
	return Reply{Text: text, Products: products}, nil
}
