package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/est22/snatch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for snatch resources.
	uriScheme = "snatch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full vocabulary.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "entries",
		Name:        "entries",
		Description: "All captured vocabulary entries",
		MIMEType:    "application/json",
	}, s.handleEntriesResource)

	// Template for per-language vocabulary.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "entries/{langCode}",
		Name:        "entries-by-language",
		Description: "Captured vocabulary entries for one language",
		MIMEType:    "application/json",
	}, s.handleEntriesByLanguageResource)
}

// handleEntriesResource returns the full vocabulary as JSON.
func (s *Server) handleEntriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return s.entriesResult(ctx, req.Params.URI, domain.EntryFilter{})
}

// handleEntriesByLanguageResource returns entries for a single language.
func (s *Server) handleEntriesByLanguageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract langCode from URI: snatch://entries/{langCode}
	lang := strings.TrimPrefix(req.Params.URI, uriScheme+"entries/")
	if lang == "" || strings.Contains(lang, "/") {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	filter := domain.EntryFilter{LangCode: domain.NormalizeLangCode(lang)}
	return s.entriesResult(ctx, req.Params.URI, filter)
}

// entriesResult lists entries under the filter and wraps them as a JSON
// resource payload.
func (s *Server) entriesResult(
	ctx context.Context,
	uri string,
	filter domain.EntryFilter,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Vocabulary.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	data, err := json.MarshalIndent(entriesToOutput(entries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling entries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
