// File: services/assistant/gemini.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"roomly/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const extractionPrompt = `You are a helpful office assistant. Today is %s. Extract the following from the user's input and respond with only a JSON object:
- "room": room name
- "attendees": number of people (integer)
- "date": date in absolute YYYY-MM-DD format (convert relative dates like "tomorrow" or "next Monday")
- "time": time slot as "HH:MM AM/PM to HH:MM AM/PM"
- "purpose": meeting purpose
- "employee_id": employee ID
- "intent": one of "book", "cancel", "view", "availability"

Leave any field the user did not mention as an empty string (or 0 for attendees).

User: %s
Respond only with the JSON object, enclosed in triple backticks.`

// Placeholder values some models emit for absent fields.
var placeholderIDs = map[string]bool{
	"none": true, "null": true, "xxx": true, "not provided": true, "missing": true,
}

// GeminiExtractor extracts structured booking requests from free text via
// the Gemini generative model.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

func NewGeminiExtractor(apiKey string) *GeminiExtractor {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiExtractor{model: model}
}

func (g *GeminiExtractor) Extract(ctx context.Context, freeText string) (*models.BookingRequest, error) {
	prompt := fmt.Sprintf(extractionPrompt, time.Now().Format("2006-01-02"), freeText)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini generate error: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return parseExtraction(sb.String())
}

// parseExtraction strips code fences and unmarshals the model output into a
// booking request, normalizing placeholder employee IDs to empty.
func parseExtraction(raw string) (*models.BookingRequest, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var req models.BookingRequest
	if err := json.Unmarshal([]byte(cleaned), &req); err != nil {
		return nil, fmt.Errorf("failed to parse extraction output: %w", err)
	}
	if placeholderIDs[strings.ToLower(req.EmployeeID)] {
		req.EmployeeID = ""
	}
	return &req, nil
}
