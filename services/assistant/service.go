package assistant

import (
	"context"
	"fmt"

	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

// Process runs the free-text pipeline: extract structured details, merge
// with any cached context from earlier turns, route to the operation, and
// update the cached context for the next turn.
func (s *DefaultAssistantService) Process(ctx context.Context, req models.AssistantRequest) (*Response, error) {
	extracted, err := s.Extractor.Extract(ctx, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("intent extraction: %w", err)
	}

	// The authenticated caller wins over whatever the model extracted.
	if req.EmployeeID != "" {
		extracted.EmployeeID = req.EmployeeID
	}

	s.mergeContext(ctx, req.EmployeeID, extracted)

	result, err := s.Router.Route(ctx, *extracted)
	if err != nil {
		return nil, err
	}

	// A completed booking or cancellation ends the conversation thread.
	if s.CtxStore != nil && (result.Intent == models.IntentBook || result.Intent == models.IntentCancel) {
		if err := s.CtxStore.Clear(ctx, req.EmployeeID); err != nil {
			utils.GetLogger().Warn("failed to clear assistant context", zap.Error(err))
		}
	}

	return &Response{Parsed: *extracted, Result: result}, nil
}

// mergeContext fills fields the extractor left empty from the previous turn's
// context, then saves the merged view for the next turn. Cache failures are
// logged and ignored; context continuity is best-effort.
func (s *DefaultAssistantService) mergeContext(ctx context.Context, employeeID string, extracted *models.BookingRequest) {
	if s.CtxStore == nil || employeeID == "" {
		return
	}

	prev, err := s.CtxStore.Get(ctx, employeeID)
	if err != nil {
		utils.GetLogger().Warn("failed to load assistant context", zap.Error(err))
		return
	}

	if extracted.Room == "" {
		extracted.Room = prev.Room
	}
	if extracted.Attendees == 0 {
		extracted.Attendees = prev.Attendees
	}
	if extracted.Date == "" {
		extracted.Date = prev.Date
	}
	if extracted.Time == "" {
		extracted.Time = prev.Time
	}
	if extracted.Purpose == "" {
		extracted.Purpose = prev.Purpose
	}

	merged := &models.AssistantContext{
		Room:      extracted.Room,
		Attendees: extracted.Attendees,
		Date:      extracted.Date,
		Time:      extracted.Time,
		Purpose:   extracted.Purpose,
	}
	if err := s.CtxStore.Set(ctx, employeeID, merged); err != nil {
		utils.GetLogger().Warn("failed to save assistant context", zap.Error(err))
	}
}
