package apiimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/orgball2608/subscraper/internal/api"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/orgball2608/subscraper/internal/ratelimit"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/errors"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/orgball2608/subscraper/pkg/retry"
	"go.uber.org/fx"
)

const (
	pageLimit = 50
	maxPages  = 200
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Limiter    ratelimit.Limiter `optional:"true"`
	HTTPClient *http.Client      `optional:"true"`
}

// ApiImpl talks to the platform's JSON API with the session cookie from the config.
type ApiImpl struct {
	http     *http.Client
	limiter  ratelimit.Limiter
	logger   logger.Logger
	config   *config.Config
	baseURL  string
	retryCfg retry.Config

	mu            sync.Mutex
	me            *domain.User
	subscriptions []*domain.Subscription
}

func New(opts Opts) *ApiImpl {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: 30 * time.Second,
		}
	}

	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.NewInMemoryLimiter(
			int(max(opts.Config.Site.RequestsPerSecond, 1)),
			time.Second,
			opts.Config.Site.RequestBurst,
		)
	}

	return &ApiImpl{
		http:     httpClient,
		limiter:  limiter,
		logger:   opts.Logger.WithComponent("ApiClient"),
		config:   opts.Config,
		baseURL:  strings.TrimRight(opts.Config.Site.APIURL, "/"),
		retryCfg: retry.DefaultConfig(),
	}
}

var _ api.Client = (*ApiImpl)(nil)

func (a *ApiImpl) SiteName() string {
	return a.config.Site.Name
}

func (a *ApiImpl) SiteSettings() *domain.SiteSettings {
	site := a.config.Site
	if site.FileDirectoryFormat == "" || site.FilenameFormat == "" {
		return nil
	}
	return &domain.SiteSettings{
		DateFormat:          site.DateFormat,
		FileDirectoryFormat: site.FileDirectoryFormat,
		FilenameFormat:      site.FilenameFormat,
		VideoQuality:        site.VideoQuality,
		IgnoredKeywords:     site.IgnoredKeywords,
		TextLength:          site.TextLength,
	}
}

// get performs a GET on path and decodes the JSON body into out.
// endpoint names the call for rate limiting and metrics.
func (a *ApiImpl) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return retry.Do(ctx, a.logger, endpoint, func() error {
		if err := a.limiter.Wait(ctx, endpoint); err != nil {
			return retry.Permanent(err)
		}

		err := a.do(ctx, endpoint, u, out)
		if err != nil && !errors.IsRetryable(err) {
			return retry.Permanent(err)
		}
		return err
	}, a.retryCfg)
}

func (a *ApiImpl) do(ctx context.Context, endpoint, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("User-Agent", a.config.Site.UserAgent)
	if a.config.Site.Cookie != "" {
		req.Header.Set("Cookie", a.config.Site.Cookie)
	}

	start := time.Now()
	resp, err := a.http.Do(req)
	observability.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.APIRequests.WithLabelValues(endpoint, "error").Inc()
		return errors.Wrap(fmt.Errorf("%w: %w", errors.ErrServiceUnavailable, err), "request "+endpoint)
	}
	defer safeClose(resp, a.logger)

	observability.APIRequests.WithLabelValues(endpoint, fmt.Sprint(resp.StatusCode)).Inc()
	if statusErr := errors.FromStatus(resp.StatusCode); statusErr != nil {
		return errors.WrapWithCode(statusErr, errors.CodeAPIStatus, fmt.Sprintf("%s returned %d", endpoint, resp.StatusCode))
	}

	body, err := readBody(resp)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeAPIDecode, "read "+endpoint)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeAPIDecode, "decode "+endpoint)
	}
	return nil
}

// page is the envelope of list endpoints.
type page[T any] struct {
	List    []T  `json:"list"`
	HasMore bool `json:"hasMore"`
}

// paginate walks an offset-paginated list endpoint until the server reports no more items.
func paginate[T any](ctx context.Context, a *ApiImpl, endpoint, path string, query url.Values) ([]T, error) {
	var all []T
	for i := 0; i < maxPages; i++ {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("limit", fmt.Sprint(pageLimit))
		q.Set("offset", fmt.Sprint(len(all)))

		var p page[T]
		if err := a.get(ctx, endpoint, path, q, &p); err != nil {
			return nil, err
		}
		all = append(all, p.List...)
		if !p.HasMore || len(p.List) == 0 {
			return all, nil
		}
	}
	a.logger.Warn("Pagination limit reached", "endpoint", endpoint, "items", len(all))
	return all, nil
}
