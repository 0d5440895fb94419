package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"karilike/internal/app"
	"karilike/internal/domain"
	"karilike/internal/i18n"
)

// Handlers serve a single session: the App owns one current user, one home
// view and one chat per opened property.
type Handlers struct {
	App *app.App

	mu    sync.Mutex
	chats map[string]*app.ChatSession
}

func NewHandlers(a *app.App) *Handlers {
	return &Handlers{App: a, chats: map[string]*app.ChatSession{}}
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/properties", h.listProperties)
		r.Get("/properties/{id}", h.getProperty)
		r.Post("/properties/{id}/ratings", h.rateProperty)
		r.Get("/properties/{id}/chat", h.chatHistory)
		r.Post("/properties/{id}/chat", h.chatSend)
		r.Get("/cities", h.listCities)

		r.Get("/home", h.home)
		r.Post("/home/search", h.homeSearch)
		r.Post("/home/category", h.homeCategory)
		r.Delete("/home/search", h.homeClear)
		r.Get("/chat", h.chatHistory)
		r.Post("/chat", h.chatSend)

		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)

		r.Get("/listings/draft", h.draft)
		r.Post("/listings", h.submitListing)
		r.Post("/listings/description", h.describeListing)

		r.Get("/owners/{key}/ratings", h.ownerAggregate)
		r.Post("/owners/{key}/ratings", h.rateOwner)

		r.Get("/i18n/{key}", h.translate)
		r.Put("/locale", h.setLocale)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain sentinels to problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, domain.ErrAccountExists):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, domain.ErrBusy):
		writeProblem(w, http.StatusConflict, "Busy", err.Error())
	case errors.Is(err, domain.ErrNoImages),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyQuery),
		errors.Is(err, i18n.ErrUnknownLocale):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeJSON honours If-None-Match for cacheable reads.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	etag, body := calcETagAndBody(v)
	if r.Method == http.MethodGet && etag != "" {
		if inm := r.Header.Get("If-None-Match"); inm == etag {
			w.Header().Set("ETag", etag)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 8<<20)).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return false
	}
	return true
}

// ---- properties ----

type propertiesResponse struct {
	Items []domain.Property `json:"items"`
	Count int               `json:"count"`
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	var items []domain.Property
	switch {
	case qs.Get("category") != "":
		c, err := domain.ParseCategory(qs.Get("category"))
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
			return
		}
		items = h.App.Catalog.ByCategory(c)
	case strings.TrimSpace(qs.Get("q")) != "" || strings.TrimSpace(qs.Get("city")) != "":
		ai, _ := strconv.ParseBool(qs.Get("ai"))
		res, err := h.App.Search.Search(r.Context(), app.Query{Text: qs.Get("q"), City: qs.Get("city"), AIMode: ai}, h.App.Catalog.All())
		if err != nil {
			writeError(w, err)
			return
		}
		items = res
	default:
		items = h.App.Catalog.All()
	}
	writeJSON(w, r, http.StatusOK, propertiesResponse{Items: items, Count: len(items)})
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.App.Property(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Language", string(h.App.I18n.Locale()))
	writeJSON(w, r, http.StatusOK, p)
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.App.Catalog.Cities())
}

// ---- home view ----

type homeResponse struct {
	Title          string            `json:"title"`
	Subtitle       string            `json:"subtitle"`
	Items          []domain.Property `json:"items"`
	Filtered       bool              `json:"filtered"`
	ActiveCategory *domain.Category  `json:"activeCategory,omitempty"`
	Stale          bool              `json:"stale,omitempty"`
}

func (h *Handlers) homeBody(st app.HomeState) homeResponse {
	title, sub := h.App.Home.Heading(h.App.I18n)
	return homeResponse{
		Title:          title,
		Subtitle:       sub,
		Items:          st.Properties,
		Filtered:       st.Filtered,
		ActiveCategory: st.ActiveCategory,
	}
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.homeBody(h.App.Home.State()))
}

type searchRequest struct {
	Query  string `json:"query"`
	City   string `json:"city"`
	AIMode bool   `json:"aiMode"`
}

func (h *Handlers) homeSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.App.Home.ApplySearch(r.Context(), app.Query{Text: req.Query, City: req.City, AIMode: req.AIMode})
	if err != nil {
		writeError(w, err)
		return
	}
	body := h.homeBody(out.HomeState)
	body.Stale = out.Stale
	writeJSON(w, r, http.StatusOK, body)
}

func (h *Handlers) homeCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if !decode(w, r, &req) {
		return
	}
	c, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, h.homeBody(h.App.Home.ToggleCategory(c)))
}

func (h *Handlers) homeClear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.homeBody(h.App.Home.Clear()))
}

// ---- auth ----

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := h.App.Sessions.Signup(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, u)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}
	u, err := h.App.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, u)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.App.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	u := h.App.Sessions.Current()
	if u == nil {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "no active session")
		return
	}
	writeJSON(w, r, http.StatusOK, u)
}

// ---- listings ----

func (h *Handlers) draft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, app.NewDraft(h.App.Sessions.Current()))
}

func (h *Handlers) submitListing(w http.ResponseWriter, r *http.Request) {
	d := app.NewDraft(h.App.Sessions.Current())
	if !decode(w, r, &d) {
		return
	}
	sub, err := h.App.Listings.Submit(r.Context(), d, h.App.Sessions.Current())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, sub)
}

func (h *Handlers) describeListing(w http.ResponseWriter, r *http.Request) {
	d := app.NewDraft(h.App.Sessions.Current())
	if !decode(w, r, &d) {
		return
	}
	text, err := h.App.Listings.GenerateDescription(r.Context(), d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"description": text})
}

// ---- ratings ----

type ratingRequest struct {
	Stars int    `json:"stars"`
	Text  string `json:"text"`
}

func (h *Handlers) ownerAggregate(w http.ResponseWriter, r *http.Request) {
	a, err := h.App.Ratings.Aggregate(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, a)
}

func (h *Handlers) rateOwner(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if !decode(w, r, &req) {
		return
	}
	a, err := h.App.Ratings.Submit(r.Context(), chi.URLParam(r, "key"), req.Stars, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, a)
}

func (h *Handlers) rateProperty(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.App.RateOwner(r.Context(), chi.URLParam(r, "id"), req.Stars, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

// ---- chat ----

// chat returns the session for a property id, "" being the home page.
func (h *Handlers) chat(id string) (*app.ChatSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.chats[id]; ok {
		return c, nil
	}
	c, err := h.App.OpenChat(id)
	if err != nil {
		return nil, err
	}
	h.chats[id] = c
	return c, nil
}

func (h *Handlers) chatHistory(w http.ResponseWriter, r *http.Request) {
	c, err := h.chat(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, c.History())
}

func (h *Handlers) chatSend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decode(w, r, &req) {
		return
	}
	c, err := h.chat(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	msg, err := c.Send(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	if msg.Text == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, http.StatusOK, msg)
}

// ---- i18n ----

func (h *Handlers) translate(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	l := h.App.I18n.Locale()
	if v := qs.Get("locale"); v != "" {
		parsed, err := i18n.ParseLocale(v)
		if err != nil {
			writeError(w, err)
			return
		}
		l = parsed
	}
	params := i18n.Params{}
	for k, vs := range qs {
		if k != "locale" && len(vs) > 0 {
			params[k] = vs[0]
		}
	}
	key := i18n.Key(chi.URLParam(r, "key"))
	w.Header().Set("Content-Language", string(l))
	writeJSON(w, r, http.StatusOK, map[string]string{
		"key":    string(key),
		"text":   i18n.Translate(l, key, params),
		"dir":    i18n.DirOf(l),
		"locale": string(l),
	})
}

func (h *Handlers) setLocale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale string `json:"locale"`
	}
	if !decode(w, r, &req) {
		return
	}
	l, err := i18n.ParseLocale(req.Locale)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.App.I18n.SetLocale(l); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"locale": string(l), "dir": h.App.I18n.Dir()})
}
