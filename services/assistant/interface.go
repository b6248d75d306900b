package assistant

import (
	"context"

	"roomly/models"
)

// IntentExtractor converts free text into a structured booking request. It
// may leave fields empty; missing fields surface as validation failures at
// the operation that needs them, never as crashes.
type IntentExtractor interface {
	Extract(ctx context.Context, freeText string) (*models.BookingRequest, error)
}

// Response is what the assistant pipeline hands back to the transport layer.
type Response struct {
	Parsed models.BookingRequest `json:"parsed"`
	Result *RouteResult          `json:"result"`
}

// AssistantService drives the free-text pipeline: extraction, context merge,
// routing.
type AssistantService interface {
	Process(ctx context.Context, req models.AssistantRequest) (*Response, error)
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Extractor IntentExtractor
	CtxStore  ContextStore
	Router    *Router
}
