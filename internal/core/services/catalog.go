package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/core/ports/gateways"
)

const (
	DefaultCatalogMaxPages      = 500
	DefaultCatalogMaxEmptyPages = 5
)

// popularCurrencies are always present in the catalog, ahead of anything the
// upstream returns. Descriptors use the Treasury country_currency_desc format.
var popularCurrencies = []domain.CatalogEntry{
	// North America
	domain.NewCatalogEntry("United States", domain.USDDescriptor),
	domain.NewCatalogEntry("Canada", "Canada-Dollar"),
	domain.NewCatalogEntry("Mexico", "Mexico-Peso"),

	// Europe
	domain.NewCatalogEntry("United Kingdom", "United Kingdom-Pound"),
	domain.NewCatalogEntry("Germany", "Euro Zone-Euro"),
	domain.NewCatalogEntry("France", "Euro Zone-Euro"),
	domain.NewCatalogEntry("Italy", "Euro Zone-Euro"),
	domain.NewCatalogEntry("Spain", "Euro Zone-Euro"),
	domain.NewCatalogEntry("Netherlands", "Euro Zone-Euro"),
	domain.NewCatalogEntry("Switzerland", "Switzerland-Franc"),

	// Asia-Pacific
	domain.NewCatalogEntry("Japan", "Japan-Yen"),
	domain.NewCatalogEntry("China", "China-Yuan"),
	domain.NewCatalogEntry("India", "India-Rupee"),
	domain.NewCatalogEntry("South Korea", "South-Korea-Won"),
	domain.NewCatalogEntry("Singapore", "Singapore-Dollar"),
	domain.NewCatalogEntry("Hong Kong", "Hong-Kong-Dollar"),
	domain.NewCatalogEntry("Australia", "Australia-Dollar"),
	domain.NewCatalogEntry("New Zealand", "New-Zealand-Dollar"),

	// South America
	domain.NewCatalogEntry("Brazil", "Brazil-Real"),
	domain.NewCatalogEntry("Argentina", "Argentina-Peso"),
	domain.NewCatalogEntry("Chile", "Chile-Peso"),
	domain.NewCatalogEntry("Colombia", "Colombia-Peso"),

	// Other regions
	domain.NewCatalogEntry("South Africa", "South-Africa-Rand"),
}

// PopularCurrencies returns a copy of the baseline catalog entries.
func PopularCurrencies() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(popularCurrencies))
	copy(out, popularCurrencies)
	return out
}

// Catalog is the set of country/currency pairs the service acknowledges.
// Every entry is reachable by its country and by its currency descriptor.
// A Catalog is never modified after it has been returned by a CatalogCache.
type Catalog struct {
	entries []domain.CatalogEntry
	index   map[string]int
	seen    map[string]struct{}
}

func newCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]int),
		seen:  make(map[string]struct{}),
	}
}

func lookupKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// add inserts e unless its composite key was already seen. The first entry
// indexed under a key keeps it.
func (c *Catalog) add(e domain.CatalogEntry) bool {
	ck := e.CompositeKey()
	if _, dup := c.seen[ck]; dup {
		return false
	}
	c.seen[ck] = struct{}{}
	c.entries = append(c.entries, e)
	pos := len(c.entries) - 1
	for _, k := range []string{lookupKey(e.Country), lookupKey(e.CurrencyCode)} {
		if _, taken := c.index[k]; !taken {
			c.index[k] = pos
		}
	}
	return true
}

// Len returns the number of distinct entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every entry once, in insertion order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by country or currency descriptor, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(key string) (domain.CatalogEntry, bool) {
	pos, ok := c.index[lookupKey(key)]
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return c.entries[pos], true
}

// CatalogLoaderOptions bounds the upstream pagination.
type CatalogLoaderOptions struct {
	MaxPages      int
	MaxEmptyPages int
}

func (o CatalogLoaderOptions) withDefaults() CatalogLoaderOptions {
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultCatalogMaxPages
	}
	if o.MaxEmptyPages <= 0 {
		o.MaxEmptyPages = DefaultCatalogMaxEmptyPages
	}
	return o
}

// loadCatalog seeds the popular currencies and then pages through the upstream
// listing. Records are sorted newest first, so every currency shows up early and
// a run of pages without new pairs ends the scan. An upstream failure stops the
// scan and returns what was collected so far.
func loadCatalog(ctx context.Context, gw gateways.TreasuryGateway, opts CatalogLoaderOptions, logger *slog.Logger) *Catalog {
	opts = opts.withDefaults()
	catalog := newCatalog()

	for _, e := range popularCurrencies {
		catalog.add(e)
	}
	logger.Info("Added popular currencies to catalog", slog.Int("count", catalog.Len()))

	lastPage := opts.MaxPages
	emptyPages := 0
	page := 1
	for ; page <= lastPage; page++ {
		resp, err := gw.ListCurrencies(ctx, page)
		if err != nil {
			logger.Error("Error fetching currencies from treasury API, keeping partial catalog",
				slog.Int("page", page),
				slog.Int("unique_currencies", catalog.Len()),
				slog.String("error", err.Error()))
			break
		}

		if page == 1 && resp.Meta != nil && resp.Meta.TotalPages > 0 {
			lastPage = min(lastPage, resp.Meta.TotalPages)
			logger.Info("Treasury API pagination",
				slog.Int("total_pages", resp.Meta.TotalPages),
				slog.Int("total_count", resp.Meta.TotalCount))
		}

		if len(resp.Data) == 0 {
			logger.Warn("Treasury API returned no data for page", slog.Int("page", page))
		}

		added := 0
		for _, rec := range resp.Data {
			if strings.TrimSpace(rec.Country) == "" || strings.TrimSpace(rec.CountryCurrencyDesc) == "" {
				continue
			}
			if catalog.add(domain.NewCatalogEntry(rec.Country, rec.CountryCurrencyDesc)) {
				added++
			}
		}

		if added > 0 {
			emptyPages = 0
			logger.Debug("Added new unique currencies",
				slog.Int("page", page), slog.Int("added", added), slog.Int("total", catalog.Len()))
			continue
		}

		emptyPages++
		if emptyPages >= opts.MaxEmptyPages {
			logger.Info("Stopped fetching currencies after consecutive pages with no new entries",
				slog.Int("page", page), slog.Int("empty_pages", emptyPages))
			break
		}
	}

	logger.Info("Currency catalog loaded",
		slog.Int("unique_currencies", catalog.Len()),
		slog.Int("lookup_keys", len(catalog.index)))
	catalog.seen = nil
	return catalog
}

// CatalogCache loads the catalog on first use and serves the same instance afterwards.
type CatalogCache struct {
	once    sync.Once
	catalog *Catalog

	gateway gateways.TreasuryGateway
	opts    CatalogLoaderOptions
	logger  *slog.Logger
}

// NewCatalogCache creates an empty cache. Nothing is fetched until Get is called.
func NewCatalogCache(gw gateways.TreasuryGateway, opts CatalogLoaderOptions, logger *slog.Logger) *CatalogCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogCache{gateway: gw, opts: opts, logger: logger}
}

// Get returns the catalog, loading it if this is the first call. Callers that
// arrive while the load is running wait for it. The load ignores cancellation
// of ctx so that one abandoned request cannot publish a truncated catalog.
func (c *CatalogCache) Get(ctx context.Context) *Catalog {
	c.once.Do(func() {
		c.catalog = loadCatalog(context.WithoutCancel(ctx), c.gateway, c.opts, c.logger)
	})
	return c.catalog
}
