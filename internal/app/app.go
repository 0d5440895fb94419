package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"karilike/internal/catalog"
	"karilike/internal/domain"
	"karilike/internal/i18n"
)

// Deps are the collaborators an App is built from.
type Deps struct {
	KV          domain.KVStore
	Assistant   domain.Assistant
	Ratings     domain.RatingsRepository
	Submissions domain.SubmissionSink
	Cache       domain.Cache // optional
	CacheTTL    time.Duration
	AuthDelay   time.Duration
	Locale      i18n.Locale
	Catalog     *catalog.Catalog // nil uses the built-in catalog
}

// App is the explicit application context shared by the surfaces. It owns
// the locale and session state; nothing in the core is a package global.
type App struct {
	I18n     *i18n.Store
	Sessions *SessionService
	Catalog  *catalog.Catalog
	Search   *SearchService
	Home     *HomeView
	Listings *ListingService
	Ratings  *RatingService
	AI       domain.Assistant
}

func New(d Deps) (*App, error) {
	tr, err := i18n.New(d.Locale)
	if err != nil {
		return nil, err
	}
	cat := d.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	search := NewSearchService(d.Assistant)
	return &App{
		I18n:     tr,
		Sessions: NewSessionService(d.KV, d.AuthDelay),
		Catalog:  cat,
		Search:   search,
		Home:     NewHomeView(cat, search),
		Listings: NewListingService(d.Submissions, d.Assistant),
		Ratings:  NewRatingService(d.Ratings, d.Cache, d.CacheTTL),
		AI:       d.Assistant,
	}, nil
}

// Start restores the session from durable storage.
func (a *App) Start(ctx context.Context) error {
	u, err := a.Sessions.LoadCurrentUser(ctx)
	if err != nil {
		return err
	}
	if u != nil {
		log.Info().Str("user_id", u.ID).Msg("session restored")
	}
	return nil
}

// Logout ends the session and resets per-user view state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Sessions.Logout(ctx); err != nil {
		return err
	}
	a.Home.Clear()
	return nil
}

// Property returns a catalog entry with its owner's live aggregate. When the
// ratings store has nothing for the owner the catalog values are kept.
func (a *App) Property(ctx context.Context, id string) (domain.Property, error) {
	p, err := a.Catalog.ByID(id)
	if err != nil {
		return domain.Property{}, err
	}
	agg, err := a.Ratings.Aggregate(ctx, p.OwnerKey())
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("aggregate lookup failed, using catalog rating")
		return p, nil
	}
	if agg.Count == 0 {
		return p, nil
	}
	return ApplyToProperty(p, agg), nil
}

// RateOwner applies a rating to the owner of property id and returns the
// property with the new aggregate.
func (a *App) RateOwner(ctx context.Context, id string, stars int, text string) (domain.Property, error) {
	p, err := a.Catalog.ByID(id)
	if err != nil {
		return domain.Property{}, err
	}
	// first rating on an unseeded owner starts from the catalog values
	if err := a.Ratings.Seed(ctx, p.OwnerKey(), domain.AggregateOf(p)); err != nil {
		return domain.Property{}, err
	}
	agg, err := a.Ratings.Submit(ctx, p.OwnerKey(), stars, text)
	if err != nil {
		return domain.Property{}, err
	}
	return ApplyToProperty(p, agg), nil
}

// OpenChat starts a chat for a property, or for the home page when id is "".
func (a *App) OpenChat(id string) (*ChatSession, error) {
	if id == "" {
		return NewChatSession(a.AI, nil, a.I18n), nil
	}
	p, err := a.Catalog.ByID(id)
	if err != nil {
		return nil, err
	}
	return NewChatSession(a.AI, &p, a.I18n), nil
}
