package goquery

import "github.com/fwojciec/nicobar"

// MangaSelectors holds the CSS selectors used to read one provider's pages.
type MangaSelectors struct {
	// ChapterTitle matches the heading of a chapter reader page.
	ChapterTitle string
	// ChapterPages matches page images, in reading order.
	ChapterPages string
	// ListTitle matches the meta element carrying the manga title.
	ListTitle string
	// ChapterLinks matches candidate chapter anchors on an index page.
	ChapterLinks string
	// CatalogCards matches catalog entries.
	CatalogCards string
}

// DefaultMangaSelectors returns the selectors shared by the supported providers.
func DefaultMangaSelectors() MangaSelectors {
	return MangaSelectors{
		ChapterTitle: "h1.text-lg",
		ChapterPages: "img.fixed-ratio-content",
		ListTitle:    "meta[property='og:title']",
		ChapterLinks: "a[href][class]",
		CatalogCards: "div[class*='card']",
	}
}

// Registry maps providers to their selectors.
type Registry struct {
	selectors map[nicobar.Provider]MangaSelectors
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		selectors: make(map[nicobar.Provider]MangaSelectors),
	}
}

// NewDefaultRegistry creates a Registry with DefaultMangaSelectors
// registered for every supported provider.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range nicobar.Providers() {
		r.Register(p, DefaultMangaSelectors())
	}
	return r
}

// Get returns the selectors for a provider.
// Returns EINVALID if no selectors are registered for the provider.
func (r *Registry) Get(provider nicobar.Provider) (MangaSelectors, error) {
	s, ok := r.selectors[provider]
	if !ok {
		return MangaSelectors{}, nicobar.Errorf(nicobar.EINVALID, "unsupported provider %q", string(provider))
	}
	return s, nil
}

// Register adds selectors for a provider.
// If selectors are already registered for the provider, they are replaced.
func (r *Registry) Register(provider nicobar.Provider, selectors MangaSelectors) {
	r.selectors[provider] = selectors
}

// List returns all registered providers.
func (r *Registry) List() []nicobar.Provider {
	providers := make([]nicobar.Provider, 0, len(r.selectors))
	for p := range r.selectors {
		providers = append(providers, p)
	}
	return providers
}
