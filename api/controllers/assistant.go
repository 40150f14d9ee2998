package controllers

import (
	"net/http"

	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/api/validators"
	"github.com/dmtumanov/beanline-backend/internal/assistant"
	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	"github.com/dmtumanov/beanline-backend/pkg/visibility"
)

type assistantChatRequest struct {
	Messages []assistantMessage `json:"messages" validate:"required,min=1,max=50,dive"`
}

type assistantMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

// AssistantChat answers a storefront chat turn. The model only sees the
// menu as the requesting viewer sees it, so hidden products never leak
// through recommendations.
func AssistantChat(assistantSvc *assistant.Service, cat *catalog.Catalog, prefsSvc *prefs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assistantChatRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		hiddenIDs, err := prefsSvc.HiddenProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		visible := visibility.FilterProducts(cat.Products(), hiddenIDs, middleware.IsAdminFromContext(r.Context()))

		history := make([]assistant.Message, 0, len(req.Messages))
		for _, m := range req.Messages {
			history = append(history, assistant.Message{Role: m.Role, Content: m.Content})
		}

		reply, err := assistantSvc.Chat(r.Context(), history, visible)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reply)
	}
}
