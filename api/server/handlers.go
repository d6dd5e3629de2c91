package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/your-org/content-studio/llm/agents"
	"github.com/your-org/content-studio/llm/tasks"
)

// TokenRequest asks for an access token using the API key
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// MetaTagsRequest asks for meta tags for existing content
type MetaTagsRequest struct {
	Content        string   `json:"content"`
	TargetKeywords []string `json:"target_keywords"`
	ContentType    string   `json:"content_type"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
			"providers": s.studio.Providers(),
		},
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	if err := s.auth.CheckAPIKey(req.APIKey); err != nil {
		s.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API Key")
		return
	}

	token, err := s.auth.IssueToken("api-client")
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token")
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"access_token": token,
			"token_type":   "bearer",
			"expires_in":   int(s.auth.TokenTTL().Seconds()),
		},
	})
}

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var req tasks.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	result, err := s.studio.CreateContent(r.Context(), req)
	if err != nil {
		s.writeTaskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleReviewContent(w http.ResponseWriter, r *http.Request) {
	var req tasks.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	result, err := s.studio.ReviewContent(r.Context(), req)
	if err != nil {
		s.writeTaskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleOptimizeSEO(w http.ResponseWriter, r *http.Request) {
	var req tasks.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	result, err := s.studio.OptimizeSEO(r.Context(), req)
	if err != nil {
		s.writeTaskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleMetaTags(w http.ResponseWriter, r *http.Request) {
	var req MetaTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	result, err := s.studio.GenerateMetaTags(r.Context(), req.Content, req.TargetKeywords, req.ContentType)
	if err != nil {
		s.writeTaskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req tasks.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	result, err := s.studio.Research(r.Context(), req)
	if err != nil {
		s.writeTaskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleCreativeIdeas(w http.ResponseWriter, r *http.Request) {
	var req tasks.IdeationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON payload")
		return
	}

	result, err := s.studio.GenerateIdeas(r.Context(), req)
	if err != nil {
		s.writeTaskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if topic := r.URL.Query().Get("topic"); topic != "" {
		entries, err := s.studio.HistoryByTopic(r.Context(), topic)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "HISTORY_ERROR", "Failed to load history")
			return
		}
		s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: entries})
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.studio.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "HISTORY_ERROR", "Failed to load history")
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: entries})
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	type agentInfo struct {
		Name         string              `json:"name"`
		Schema       agents.AgentSchema  `json:"schema"`
		Capabilities []agents.Capability `json:"capabilities"`
		Stats        agents.AgentStats   `json:"stats"`
	}

	var infos []agentInfo
	for _, a := range s.studio.Agents() {
		infos = append(infos, agentInfo{
			Name:         a.Name(),
			Schema:       a.Schema(),
			Capabilities: a.Capabilities(),
			Stats:        a.Stats(),
		})
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: infos})
}

// writeTaskError maps pipeline errors onto HTTP statuses
func (s *Server) writeTaskError(w http.ResponseWriter, err error) {
	var ve *agents.ValidationError
	if errors.As(err, &ve) {
		s.writeError(w, http.StatusBadRequest, ve.Code, ve.Message)
		return
	}
	s.writeError(w, http.StatusInternalServerError, "PIPELINE_ERROR", err.Error())
}
