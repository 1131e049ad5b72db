package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/est22/snatch/internal/core/domain"
)

// CaptureTextInput is the input schema for the capture_text tool.
type CaptureTextInput struct {
	Text   string `json:"text" jsonschema:"the text to classify into vocabulary candidates"`
	Accept bool   `json:"accept,omitempty" jsonschema:"save all resulting candidates as entries (default false, classify only)"`
}

// CandidateOutput represents a single classified fragment.
type CandidateOutput struct {
	Text       string `json:"text"`
	LangCode   string `json:"lang_code"`
	IsLearning bool   `json:"is_learning"`
}

// CaptureTextOutput is the output schema for the capture_text tool.
type CaptureTextOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
	Saved      int               `json:"saved"`
}

// ListVocabularyInput is the input schema for the list_vocabulary tool.
type ListVocabularyInput struct {
	LangCode      string `json:"lang_code,omitempty" jsonschema:"filter by 2-letter language code"`
	FavoritesOnly bool   `json:"favorites_only,omitempty" jsonschema:"only return favorite entries"`
	Search        string `json:"search,omitempty" jsonschema:"substring match on word or example sentence"`
}

// EntryOutput represents a stored vocabulary entry.
type EntryOutput struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	LangCode   string `json:"lang_code"`
	Example    string `json:"example,omitempty"`
	Category   string `json:"category"`
	BoxLevel   int    `json:"box_level"`
	IsFavorite bool   `json:"is_favorite"`
}

// ListVocabularyOutput is the output schema for the list_vocabulary tool.
type ListVocabularyOutput struct {
	Entries []EntryOutput `json:"entries"`
	Count   int           `json:"count"`
}

// ReviewDueInput is the input schema for the review_due tool.
type ReviewDueInput struct{}

// ReviewDueOutput is the output schema for the review_due tool.
type ReviewDueOutput struct {
	DueCount int           `json:"due_count"`
	Entries  []EntryOutput `json:"entries"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "capture_text",
		Description: "Classify text into vocabulary candidates, optionally saving them as entries",
	}, s.handleCaptureText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_vocabulary",
		Description: "List captured vocabulary entries",
	}, s.handleListVocabulary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "review_due",
		Description: "List the vocabulary entries that are currently due for review",
	}, s.handleReviewDue)
}

// handleCaptureText handles the capture_text tool invocation.
func (s *Server) handleCaptureText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CaptureTextInput,
) (*mcp.CallToolResult, CaptureTextOutput, error) {
	candidates, err := s.ports.Capture.ClassifyText(ctx, input.Text)
	if err != nil {
		return nil, CaptureTextOutput{}, err
	}

	output := CaptureTextOutput{
		Candidates: make([]CandidateOutput, len(candidates)),
	}
	for i, c := range candidates {
		output.Candidates[i] = CandidateOutput{
			Text:       c.Text,
			LangCode:   string(c.LangCode),
			IsLearning: c.IsLearningLanguage,
		}
	}

	if input.Accept && len(candidates) > 0 {
		entries, err := s.ports.Capture.AcceptCandidates(ctx, candidates)
		if err != nil {
			return nil, CaptureTextOutput{}, err
		}
		output.Saved = len(entries)
	} else {
		// Classification-only calls leave no pending state behind.
		s.ports.Capture.Reset()
	}

	return nil, output, nil
}

// handleListVocabulary handles the list_vocabulary tool invocation.
func (s *Server) handleListVocabulary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListVocabularyInput,
) (*mcp.CallToolResult, ListVocabularyOutput, error) {
	filter := domain.EntryFilter{
		FavoritesOnly: input.FavoritesOnly,
		Search:        input.Search,
	}
	if input.LangCode != "" {
		filter.LangCode = domain.NormalizeLangCode(input.LangCode)
	}

	entries, err := s.ports.Vocabulary.List(ctx, filter)
	if err != nil {
		return nil, ListVocabularyOutput{}, err
	}

	output := ListVocabularyOutput{
		Entries: entriesToOutput(entries),
		Count:   len(entries),
	}
	return nil, output, nil
}

// handleReviewDue handles the review_due tool invocation.
func (s *Server) handleReviewDue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ReviewDueInput,
) (*mcp.CallToolResult, ReviewDueOutput, error) {
	now := time.Now()
	entries, err := s.ports.Vocabulary.List(ctx, domain.EntryFilter{DueBefore: &now})
	if err != nil {
		return nil, ReviewDueOutput{}, err
	}

	output := ReviewDueOutput{
		DueCount: len(entries),
		Entries:  entriesToOutput(entries),
	}
	return nil, output, nil
}

// entriesToOutput converts domain entries to the wire representation.
func entriesToOutput(entries []domain.Entry) []EntryOutput {
	out := make([]EntryOutput, len(entries))
	for i, e := range entries {
		example := e.ExampleSentence
		if example == e.Word {
			example = ""
		}
		out[i] = EntryOutput{
			ID:         e.ID,
			Word:       e.Word,
			LangCode:   string(e.LangCode),
			Example:    example,
			Category:   string(e.Category),
			BoxLevel:   e.BoxLevel,
			IsFavorite: e.IsFavorite,
		}
	}
	return out
}
