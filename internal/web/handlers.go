package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	mrand "math/rand"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/DathaCode/moody-backend/internal/classifier"
	"github.com/DathaCode/moody-backend/internal/mood"
	"github.com/DathaCode/moody-backend/internal/playlist"
	spotifycat "github.com/DathaCode/moody-backend/internal/spotify"
	"github.com/DathaCode/moody-backend/internal/vibes"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	auth       *spotifyauth.Authenticator
	sessions   *SessionStore
	classifier classifier.Analyzer
	log        *zap.Logger
	validate   *validator.Validate
	timeout    time.Duration

	// newCatalog builds the catalog client for a session token.
	// Overridable in tests.
	newCatalog func(r *http.Request, token *oauth2.Token) playlist.Catalog

	// newRand supplies the per-request random source.
	newRand func() *mrand.Rand
}

// NewHandlers creates the handler set.
func NewHandlers(auth *spotifyauth.Authenticator, sessions *SessionStore, analyzer classifier.Analyzer, log *zap.Logger, timeout time.Duration) *Handlers {
	h := &Handlers{
		auth:       auth,
		sessions:   sessions,
		classifier: analyzer,
		log:        log,
		validate:   validator.New(),
		timeout:    timeout,
		newRand: func() *mrand.Rand {
			return mrand.New(mrand.NewSource(time.Now().UnixNano()))
		},
	}
	h.newCatalog = func(r *http.Request, token *oauth2.Token) playlist.Catalog {
		return spotifycat.NewFromToken(r.Context(), auth, token, log)
	}
	return h
}

// generateRequest is the body of POST /api/playlists and the mood
// preview endpoints.
type generateRequest struct {
	Text     string `json:"text" validate:"required,max=500"`
	IsPublic bool   `json:"isPublic"`
}

// previewResponse is the body of POST /api/moods/preview.
type previewResponse struct {
	Analysis mood.Analysis `json:"analysis"`
	Tracks   []mood.Track  `json:"tracks"`
	Vibes    []vibes.Vibe  `json:"vibes"`
	Outliers int           `json:"outliers"`
}

// GeneratePlaylist handles POST /api/playlists: classify the mood text
// and create a matching playlist on the user's Spotify account.
func (h *Handlers) GeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	analysis, err := h.classifier.Analyze(ctx, req.Text)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not classify mood text")
		return
	}

	gen := playlist.NewGenerator(
		h.newCatalog(r, session.Token),
		h.newRand(),
		h.log,
		playlist.WithPublicPlaylists(req.IsPublic),
	)

	pl, err := gen.Generate(ctx, analysis, session.UserID)
	if err != nil {
		h.respondPipelineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, pl)
}

// PreviewMood handles POST /api/moods/preview: classify the text, run
// the keyword track search, and group the results into vibes. Read-only;
// nothing is created on the external service.
func (h *Handlers) PreviewMood(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	analysis, err := h.classifier.Analyze(ctx, req.Text)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not classify mood text")
		return
	}

	gen := playlist.NewGenerator(h.newCatalog(r, session.Token), h.newRand(), h.log)

	tracks, err := gen.SearchByKeywords(ctx, analysis)
	if err != nil {
		h.respondPipelineError(w, r, err)
		return
	}

	groups, outliers := vibes.Group(tracks, vibes.DefaultConfig())

	respondJSON(w, http.StatusOK, previewResponse{
		Analysis: analysis,
		Tracks:   tracks,
		Vibes:    groups,
		Outliers: len(outliers),
	})
}

// AnalyzeMood handles POST /api/moods/analyze: classification only.
func (h *Handlers) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	analysis, err := h.classifier.Analyze(ctx, req.Text)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not classify mood text")
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Home handles GET /: reports authentication state.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		respondJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"userId":        session.UserID,
		"userName":      session.UserName,
	})
}

// Login initiates the Spotify OAuth flow (GET /auth/login).
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	state, err := generateOAuthState()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate state")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})

	http.Redirect(w, r, h.auth.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the OAuth callback from Spotify (GET /callback).
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing state cookie")
		return
	}

	state := r.URL.Query().Get("state")
	if state != stateCookie.Value {
		respondError(w, http.StatusBadRequest, "state mismatch")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("spotify auth error: %s", errMsg))
		return
	}

	token, err := h.auth.Token(r.Context(), state, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get token")
		return
	}

	client := spotify.New(h.auth.Client(r.Context(), token))
	user, err := client.CurrentUser(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get user info")
		return
	}

	session, err := h.sessions.Create(token, user.ID, user.DisplayName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.sessions.SetCookie(w, session)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

// Logout clears the session (POST /auth/logout).
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if session := h.sessions.GetFromRequest(r); session != nil {
		h.sessions.Delete(session.ID)
	}
	h.sessions.ClearCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// decodeGenerateRequest decodes and validates the shared request body,
// writing the error response itself on failure.
func (h *Handlers) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "text is required and must be at most 500 characters")
		return req, false
	}
	return req, true
}

// requestContext bounds the external call chain of one request.
func (h *Handlers) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// respondPipelineError maps pipeline errors to HTTP statuses.
func (h *Handlers) respondPipelineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, mood.ErrUnknownMood):
		respondError(w, http.StatusBadRequest, "unrecognized mood")
	case errors.Is(err, playlist.ErrNoCandidates):
		respondError(w, http.StatusNotFound, "no tracks found for this mood")
	default:
		h.log.Error("pipeline failed",
			zap.String("requestID", requestIDFrom(r.Context())),
			zap.Error(err))
		respondError(w, http.StatusBadGateway, "music service unavailable")
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// generateOAuthState creates a random state string for OAuth.
func generateOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
