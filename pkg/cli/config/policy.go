package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/lakecity-club/clubstate/pkg/effect"
)

// Surface tunes one staleness-monitored surface
type Surface struct {
	FreshnessMinutes int `toml:"freshness_minutes"`
	IntervalSeconds  int `toml:"interval_seconds"`
}

func (s *Surface) Validate() error {
	if s.FreshnessMinutes <= 0 {
		return goerr.New("freshness_minutes must be positive", goerr.V("value", s.FreshnessMinutes))
	}
	if s.IntervalSeconds <= 0 {
		return goerr.New("interval_seconds must be positive", goerr.V("value", s.IntervalSeconds))
	}
	return nil
}

func (s Surface) policy() effect.SurfacePolicy {
	return effect.SurfacePolicy{
		Freshness: time.Duration(s.FreshnessMinutes) * time.Minute,
		Interval:  time.Duration(s.IntervalSeconds) * time.Second,
	}
}

// Policy tunes the data-synchronization behavior: per-surface freshness,
// session duration, the article body image budget and the auth timeout.
// Every value has a shipped default; a TOML file overrides selectively.
type Policy struct {
	path string

	SessionMinutes      int `toml:"session_minutes"`
	MaxBodyImages       int `toml:"max_body_images"`
	AuthTimeoutMillis   int `toml:"auth_timeout_ms"`
	InitialDelaySeconds int `toml:"initial_delay_seconds"`

	ArticlesHome             Surface `toml:"articles_home"`
	ArticlesFiltered         Surface `toml:"articles_filtered"`
	ImagesMetadata           Surface `toml:"images_metadata"`
	ImagesFilteredThumbnails Surface `toml:"images_filtered_thumbnails"`
	AlbumCovers              Surface `toml:"album_covers"`
	ArticleBanners           Surface `toml:"article_banners"`
	Events                   Surface `toml:"events"`
	Members                  Surface `toml:"members"`
}

// Flags returns CLI flags for policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to a TOML policy file overriding the default freshness/session policy",
			Sources:     cli.EnvVars("CLUBSTATE_POLICY"),
			Destination: &p.path,
		},
	}
}

// Load fills the defaults and overlays the TOML file when one is configured
func (p *Policy) Load() error {
	defaults := effect.DefaultSchedulerConfig()
	fromPolicy := func(sp effect.SurfacePolicy) Surface {
		return Surface{
			FreshnessMinutes: int(sp.Freshness / time.Minute),
			IntervalSeconds:  int(sp.Interval / time.Second),
		}
	}

	p.SessionMinutes = 30
	p.MaxBodyImages = 10
	p.AuthTimeoutMillis = int(effect.DefaultAuthTimeout / time.Millisecond)
	p.InitialDelaySeconds = int(defaults.InitialDelay / time.Second)
	p.ArticlesHome = fromPolicy(defaults.ArticlesHome)
	p.ArticlesFiltered = fromPolicy(defaults.ArticlesFiltered)
	p.ImagesMetadata = fromPolicy(defaults.ImagesMetadata)
	p.ImagesFilteredThumbnails = fromPolicy(defaults.ImagesFilteredThumbnails)
	p.AlbumCovers = fromPolicy(defaults.AlbumCovers)
	p.ArticleBanners = fromPolicy(defaults.ArticleBanners)
	p.Events = fromPolicy(defaults.Events)
	p.Members = fromPolicy(defaults.Members)

	if p.path == "" {
		return p.Validate()
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read policy file", goerr.V("path", p.path))
	}
	if err := toml.Unmarshal(raw, p); err != nil {
		return goerr.Wrap(err, "failed to parse policy file", goerr.V("path", p.path))
	}

	return p.Validate()
}

// Validate checks if the Policy is valid
func (p *Policy) Validate() error {
	if p.SessionMinutes <= 0 {
		return goerr.New("session_minutes must be positive", goerr.V("value", p.SessionMinutes))
	}
	if p.MaxBodyImages <= 0 {
		return goerr.New("max_body_images must be positive", goerr.V("value", p.MaxBodyImages))
	}
	if p.AuthTimeoutMillis <= 0 {
		return goerr.New("auth_timeout_ms must be positive", goerr.V("value", p.AuthTimeoutMillis))
	}
	if p.InitialDelaySeconds < 0 {
		return goerr.New("initial_delay_seconds must not be negative", goerr.V("value", p.InitialDelaySeconds))
	}

	surfaces := map[string]*Surface{
		"articles_home":              &p.ArticlesHome,
		"articles_filtered":          &p.ArticlesFiltered,
		"images_metadata":            &p.ImagesMetadata,
		"images_filtered_thumbnails": &p.ImagesFilteredThumbnails,
		"album_covers":               &p.AlbumCovers,
		"article_banners":            &p.ArticleBanners,
		"events":                     &p.Events,
		"members":                    &p.Members,
	}
	for name, s := range surfaces {
		if err := s.Validate(); err != nil {
			return goerr.Wrap(err, "invalid surface policy", goerr.V("surface", name))
		}
	}
	return nil
}

// SessionDuration returns the configured session duration
func (p *Policy) SessionDuration() time.Duration {
	return time.Duration(p.SessionMinutes) * time.Minute
}

// AuthTimeout returns the configured auth request timeout
func (p *Policy) AuthTimeout() time.Duration {
	return time.Duration(p.AuthTimeoutMillis) * time.Millisecond
}

// SchedulerConfig translates the policy into the scheduler's config
func (p *Policy) SchedulerConfig() effect.SchedulerConfig {
	return effect.SchedulerConfig{
		InitialDelay:             time.Duration(p.InitialDelaySeconds) * time.Second,
		ArticlesHome:             p.ArticlesHome.policy(),
		ArticlesFiltered:         p.ArticlesFiltered.policy(),
		ImagesMetadata:           p.ImagesMetadata.policy(),
		ImagesFilteredThumbnails: p.ImagesFilteredThumbnails.policy(),
		AlbumCovers:              p.AlbumCovers.policy(),
		ArticleBanners:           p.ArticleBanners.policy(),
		Events:                   p.Events.policy(),
		Members:                  p.Members.policy(),
	}
}
