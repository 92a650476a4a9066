package resolver

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Error kinds surfaced to the lookup endpoint. Handlers classify with
// errors.Is and map each kind to its HTTP status.
var (
	// ErrNoMatch: valid postal code, but no containing district or no MP
	// record. Maps to 404.
	ErrNoMatch = errors.New("no riding found for postal code")

	// ErrUpstream: the Represent API was unreachable or answered with a
	// non-success status. Maps to 500.
	ErrUpstream = errors.New("upstream lookup service failed")

	// ErrData: the local boundary dataset is missing expected fields.
	// A deployment defect, not a user error. Maps to 500.
	ErrData = errors.New("boundary dataset malformed")
)

// Resolution is a resolver's answer for one postal code. MPName/MPEmail
// are only populated by the representative strategy and serve as fallback
// data for the roster reconciler, never as the authoritative answer.
type Resolution struct {
	RidingName string
	MPName     string
	MPEmail    string

	// HasFallback marks whether MPName/MPEmail carry upstream data.
	HasFallback bool
}

// RidingResolver resolves a normalized postal code to a riding name.
type RidingResolver interface {
	// Name returns the strategy name for logging purposes.
	Name() string

	// Resolve maps a normalized postal code (uppercase, no spaces) to a
	// riding. Errors wrap one of the kind sentinels above.
	Resolve(ctx context.Context, postal string) (Resolution, error)
}

// Strategy identifies which resolver strategy to use.
type Strategy string

const (
	StrategyGeometry       Strategy = "geometry"
	StrategyRepresentative Strategy = "representative"
)

var registry = make(map[Strategy]func(Config) (RidingResolver, error))

// register binds a strategy constructor; called from init() in each
// strategy's file.
func register(s Strategy, constructor func(Config) (RidingResolver, error)) {
	registry[s] = constructor
}

// New builds the configured resolver. With Fallback enabled the other
// strategy is tried whenever the primary fails with ErrNoMatch or
// ErrUpstream.
func New(cfg Config) (RidingResolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resolver config: %w", err)
	}

	primary, err := build(cfg.Strategy, cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.Fallback {
		return primary, nil
	}

	secondary, err := build(other(cfg.Strategy), cfg)
	if err != nil {
		return nil, err
	}
	return &chain{primary: primary, secondary: secondary}, nil
}

func build(s Strategy, cfg Config) (RidingResolver, error) {
	constructor, ok := registry[s]
	if !ok {
		return nil, fmt.Errorf("unknown resolver strategy %q", s)
	}
	return constructor(cfg)
}

func other(s Strategy) Strategy {
	if s == StrategyGeometry {
		return StrategyRepresentative
	}
	return StrategyGeometry
}

// chain tries the primary strategy and falls back to the secondary on
// no-match and upstream errors. When both fail, the primary's error wins:
// it reflects the deployment's intended data path.
type chain struct {
	primary   RidingResolver
	secondary RidingResolver
}

func (c *chain) Name() string {
	return c.primary.Name() + "+" + c.secondary.Name()
}

func (c *chain) Resolve(ctx context.Context, postal string) (Resolution, error) {
	res, err := c.primary.Resolve(ctx, postal)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ErrNoMatch) && !errors.Is(err, ErrUpstream) {
		return Resolution{}, err
	}

	log.Printf("[resolver] %s failed (%v), trying %s", c.primary.Name(), err, c.secondary.Name())

	res, ferr := c.secondary.Resolve(ctx, postal)
	if ferr != nil {
		log.Printf("[resolver] fallback %s also failed: %v", c.secondary.Name(), ferr)
		return Resolution{}, err
	}
	return res, nil
}
