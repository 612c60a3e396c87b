// Package google talks to Google Calendar on behalf of a business: it exchanges refresh
// credentials, lists busy intervals, and mirrors bookings as calendar events.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/shared"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var scopes = []string{
	calendar.CalendarEventsScope,
	calendar.CalendarReadonlyScope,
	"email",
}

const (
	listPageSize   = 250
	defaultTimeout = 30 * time.Second
)

type Provider struct {
	oauth      *oauth2.Config
	calendarID string
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

type Option func(*Provider)

// WithHTTPClient sets the base client used for token and API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithEndpoints points token exchange and the Calendar API at other hosts.
func WithEndpoints(tokenURL, apiURL string) Option {
	return func(p *Provider) {
		p.oauth.Endpoint.TokenURL = tokenURL
		p.endpoint = apiURL
	}
}

func NewProvider(cfg config.GoogleConfig, logger *slog.Logger, opts ...Option) *Provider {
	p := &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       scopes,
		},
		calendarID: cfg.CalendarID,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
	if p.calendarID == "" {
		p.calendarID = "primary"
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func (p *Provider) Exchange(ctx context.Context, refreshToken string) (shared.Access, error) {
	if refreshToken == "" {
		return shared.Access{}, errs.Mark(errs.New("empty refresh credential"), shared.ErrProviderPermanent)
	}
	src := p.oauth.TokenSource(p.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return shared.Access{}, classify(err, "exchange refresh credential")
	}
	return shared.Access{Token: tok.AccessToken, Expiry: tok.Expiry}, nil
}

func (p *Provider) service(ctx context.Context, access shared.Access) (*calendar.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: access.Token, TokenType: "Bearer", Expiry: access.Expiry})
	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(p.withClient(ctx), ts))}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "build calendar client")
	}
	return svc, nil
}

// ListBusy returns the non-cancelled events intersecting [from, to). All-day events occupy
// their whole dates in from's zone.
func (p *Provider) ListBusy(ctx context.Context, access shared.Access, from, to time.Time) ([]slot.Window, error) {
	svc, err := p.service(ctx, access)
	if err != nil {
		return nil, err
	}

	var busy []slot.Window
	call := svc.Events.List(p.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		OrderBy("startTime").
		MaxResults(listPageSize).
		Context(ctx)

	err = call.Pages(ctx, func(page *calendar.Events) error {
		for _, ev := range page.Items {
			if ev.Status == "cancelled" || ev.Start == nil || ev.End == nil {
				continue
			}
			w, ok := eventWindow(ev, from.Location())
			if !ok {
				p.logger.Warn("Skipping calendar event with unreadable times", slog.String("event_id", ev.Id))
				continue
			}
			if w.Overlaps(slot.Window{Start: from, End: to}) {
				busy = append(busy, w)
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "list calendar events")
	}
	return busy, nil
}

func eventWindow(ev *calendar.Event, loc *time.Location) (slot.Window, bool) {
	if ev.Start.DateTime != "" && ev.End.DateTime != "" {
		start, err1 := time.Parse(time.RFC3339, ev.Start.DateTime)
		end, err2 := time.Parse(time.RFC3339, ev.End.DateTime)
		if err1 != nil || err2 != nil || !end.After(start) {
			return slot.Window{}, false
		}
		return slot.Window{Start: start, End: end}, true
	}
	start, err1 := time.ParseInLocation(time.DateOnly, ev.Start.Date, loc)
	end, err2 := time.ParseInLocation(time.DateOnly, ev.End.Date, loc)
	if err1 != nil || err2 != nil || !end.After(start) {
		return slot.Window{}, false
	}
	return slot.Window{Start: start, End: end}, true
}

func (p *Provider) CreateEvent(ctx context.Context, access shared.Access, in shared.CalendarEvent) (string, error) {
	svc, err := p.service(ctx, access)
	if err != nil {
		return "", err
	}

	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: in.TimeZone},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339), TimeZone: in.TimeZone},
		Reminders:   &calendar.EventReminders{UseDefault: true},
	}
	if in.AttendeeEmail != "" {
		ev.Attendees = []*calendar.EventAttendee{{Email: in.AttendeeEmail}}
	}

	created, err := svc.Events.Insert(p.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", classify(err, "create calendar event")
	}
	return created.Id, nil
}

// DeleteEvent treats an already-removed event as deleted.
func (p *Provider) DeleteEvent(ctx context.Context, access shared.Access, eventID string) error {
	svc, err := p.service(ctx, access)
	if err != nil {
		return err
	}
	err = svc.Events.Delete(p.calendarID, eventID).Context(ctx).Do()
	if err != nil && !notFound(err) {
		return classify(err, "delete calendar event")
	}
	return nil
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode completes the consent round trip and reports the connected calendar's owner.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	tok, err := p.oauth.Exchange(p.withClient(ctx), code)
	if err != nil {
		return "", "", classify(err, "exchange authorization code")
	}
	if tok.RefreshToken == "" {
		return "", "", errs.Mark(errs.New("consent returned no refresh credential"), shared.ErrProviderPermanent)
	}

	svc, err := p.service(ctx, shared.Access{Token: tok.AccessToken, Expiry: tok.Expiry})
	if err != nil {
		return "", "", err
	}
	cal, err := svc.Calendars.Get("primary").Context(ctx).Do()
	if err != nil {
		p.logger.Warn("Could not read connected calendar identity", slog.String("error", err.Error()))
		return tok.RefreshToken, "", nil
	}
	return tok.RefreshToken, cal.Id, nil
}
