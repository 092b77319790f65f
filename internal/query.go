// Package internal provides the aircraft query service and all associated
// program logic: configuration, the upstream API client, input validation
// and response formatting.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

const (
	// MaxRadiusNm is the largest search radius the upstream API accepts.
	MaxRadiusNm = 250
	// DefaultRadiusNm is used when a position query omits the radius.
	DefaultRadiusNm = 250
)

// QueryKind tags the nine supported query variants.
type QueryKind int

const (
	KindHex QueryKind = iota
	KindCallsign
	KindRegistration
	KindType
	KindSquawk
	KindPosition
	KindMilitary
	KindLADD
	KindPIA
)

// querySpec describes one query variant: the label used in validation
// messages and how its endpoint path is built. Value kinds carry a path
// prefix for the comma-joined input, category kinds a fixed path.
type querySpec struct {
	label     string
	prefix    string
	fixedPath string
	uppercase bool
}

// querySpecs is the endpoint and validation table for all query kinds.
var querySpecs = map[QueryKind]querySpec{
	KindHex:          {label: "hex ID", prefix: "/hex/"},
	KindCallsign:     {label: "callsign", prefix: "/callsign/"},
	KindRegistration: {label: "registration", prefix: "/reg/"},
	KindType:         {label: "ICAO type code", prefix: "/type/", uppercase: true},
	KindSquawk:       {label: "squawk code", prefix: "/squawk/"},
	KindPosition:     {label: "position", prefix: "/point/"},
	KindMilitary:     {label: "military", fixedPath: "/mil"},
	KindLADD:         {label: "LADD", fixedPath: "/ladd"},
	KindPIA:          {label: "PIA", fixedPath: "/pia"},
}

// Service answers aircraft queries: it validates inputs, delegates to the
// API client and formats the result. It is stateless and reentrant.
type Service struct {
	client *Client
	logger *slog.Logger
}

func NewService(client *Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ByHex looks up aircraft by one or more comma-separated Mode S hex IDs.
func (s *Service) ByHex(ctx context.Context, hexIDs string) (string, error) {
	return s.searchValues(ctx, KindHex, hexIDs)
}

// ByCallsign looks up aircraft by one or more comma-separated callsigns.
func (s *Service) ByCallsign(ctx context.Context, callsigns string) (string, error) {
	return s.searchValues(ctx, KindCallsign, callsigns)
}

// ByRegistration looks up aircraft by one or more comma-separated
// registrations (tail numbers).
func (s *Service) ByRegistration(ctx context.Context, registrations string) (string, error) {
	return s.searchValues(ctx, KindRegistration, registrations)
}

// ByType looks up aircraft by ICAO type code, e.g. A321 or B738.
func (s *Service) ByType(ctx context.Context, icaoType string) (string, error) {
	return s.searchValues(ctx, KindType, icaoType)
}

// BySquawk looks up aircraft by their 4-digit transponder code.
func (s *Service) BySquawk(ctx context.Context, squawk string) (string, error) {
	return s.searchValues(ctx, KindSquawk, squawk)
}

// NearPosition looks up aircraft within a radius (in nautical miles) of a
// coordinate. All parameters arrive as strings and are parsed here; an
// empty radius defaults to DefaultRadiusNm.
func (s *Service) NearPosition(ctx context.Context, latitude, longitude, radius string) (string, error) {
	path, err := positionPath(latitude, longitude, radius)
	if err != nil {
		return "", err
	}

	return s.search(ctx, path)
}

// Military returns all aircraft tagged as military.
func (s *Service) Military(ctx context.Context) (string, error) {
	return s.search(ctx, querySpecs[KindMilitary].fixedPath)
}

// LADD returns all aircraft on the Limiting Aircraft Data Displayed list.
func (s *Service) LADD(ctx context.Context) (string, error) {
	return s.search(ctx, querySpecs[KindLADD].fixedPath)
}

// PIA returns all aircraft flying under a privacy ICAO address.
func (s *Service) PIA(ctx context.Context) (string, error) {
	return s.search(ctx, querySpecs[KindPIA].fixedPath)
}

func (s *Service) searchValues(ctx context.Context, kind QueryKind, raw string) (string, error) {
	path, err := valuesPath(kind, raw)
	if err != nil {
		return "", err
	}

	return s.search(ctx, path)
}

// search runs one validated query end to end. Validation never reaches this
// point; every path passed in maps to exactly one upstream URL.
func (s *Service) search(ctx context.Context, path string) (string, error) {
	result, err := s.client.Fetch(ctx, path)
	if err != nil {
		return "", err
	}

	s.logger.Debug("search",
		slog.String("path", path),
		slog.Int("aircraft", len(result.Aircraft)),
	)

	return FormatRecords(result.Aircraft), nil
}

// valuesPath validates a comma-separated input for a value kind and builds
// its endpoint path. Elements are trimmed, empty elements are dropped and
// the remainder is forwarded comma-joined.
func valuesPath(kind QueryKind, raw string) (string, error) {
	spec := querySpecs[kind]

	values := make([]string, 0, 1)
	for _, value := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	if len(values) == 0 {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, spec.label)
	}

	joined := strings.Join(values, ",")
	if spec.uppercase {
		joined = strings.ToUpper(joined)
	}

	return spec.prefix + url.PathEscape(joined), nil
}

// positionPath validates latitude, longitude and radius and builds the
// point query path. Out-of-range values are rejected, never clamped.
func positionPath(latitude, longitude, radius string) (string, error) {
	latitude = strings.TrimSpace(latitude)
	longitude = strings.TrimSpace(longitude)
	radius = strings.TrimSpace(radius)

	if latitude == "" || longitude == "" {
		return "", fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	}

	lat, latErr := strconv.ParseFloat(latitude, 64)
	if latErr != nil {
		return "", fmt.Errorf("%w: invalid latitude %q", ErrValidation, latitude)
	}

	lon, lonErr := strconv.ParseFloat(longitude, 64)
	if lonErr != nil {
		return "", fmt.Errorf("%w: invalid longitude %q", ErrValidation, longitude)
	}

	radiusNm := float64(DefaultRadiusNm)
	if radius != "" {
		var radiusErr error
		if radiusNm, radiusErr = strconv.ParseFloat(radius, 64); radiusErr != nil {
			return "", fmt.Errorf("%w: invalid radius %q", ErrValidation, radius)
		}
	}

	if lat < -90 || lat > 90 {
		return "", fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	}

	if lon < -180 || lon > 180 {
		return "", fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	}

	if radiusNm <= 0 {
		return "", fmt.Errorf("%w: radius must be positive", ErrValidation)
	}

	if radiusNm > MaxRadiusNm {
		return "", fmt.Errorf("%w: radius cannot exceed %d nm", ErrValidation, MaxRadiusNm)
	}

	return fmt.Sprintf("%s%v/%v/%v", querySpecs[KindPosition].prefix, lat, lon, radiusNm), nil
}
