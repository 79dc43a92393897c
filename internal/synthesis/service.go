package synthesis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ainnoce10/ebf-backend/internal/stats"
	"github.com/ainnoce10/ebf-backend/pkg/config"
	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

// Fixed texts shown when the collaborator cannot produce a synthesis. They
// replace the generated content in place; the caller never sees an error.
const (
	FallbackStats   = "Synthèse des statistiques indisponible pour le moment."
	FallbackReports = "Synthèse des rapports indisponible pour le moment."
)

// Source tags where a Result's text came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceCache     Source = "cache"
	SourceFallback  Source = "fallback"
)

// Result is the outcome of a synthesis request. Text is always populated,
// either with generated content or with the fixed fallback.
type Result struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	SynthesisKey(digest string) string
}

// Service produces natural-language summaries of dashboard data.
type Service interface {
	SummarizeStats(ctx context.Context, rows []stats.Row, site string) Result
	SummarizeReports(ctx context.Context, reports []models.ReportRecord, period string) Result
}

type service struct {
	client   generator
	cache    cache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds a synthesis service. The cache is optional; when nil every
// call reaches the collaborator.
func NewService(client generator, cacheStore cache, cfg config.SynthesisConfig, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("synthesis client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		client:   client,
		cache:    cacheStore,
		cacheTTL: cfg.CacheTTL,
		logg:     logg,
	}, nil
}

// SummarizeStats synthesizes the aggregated rows for one site selection.
// Failures of any kind degrade to the fixed fallback text.
func (s *service) SummarizeStats(ctx context.Context, rows []stats.Row, site string) Result {
	prompt := statsPrompt(rows, site)
	return s.summarize(ctx, prompt, FallbackStats)
}

// SummarizeReports synthesizes the filed reports for one period selection.
func (s *service) SummarizeReports(ctx context.Context, reports []models.ReportRecord, period string) Result {
	prompt := reportsPrompt(reports, period)
	return s.summarize(ctx, prompt, FallbackReports)
}

func (s *service) summarize(ctx context.Context, prompt, fallback string) Result {
	digest := promptDigest(prompt)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cache.SynthesisKey(digest)); err == nil && cached != "" {
			return Result{Text: cached, Source: SourceCache}
		}
	}

	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("synthesis degraded to fallback: %v", err))
		return Result{Text: fallback, Source: SourceFallback}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.SynthesisKey(digest), text, s.cacheTTL); err != nil {
			s.logg.Warn(ctx, fmt.Sprintf("synthesis cache write failed: %v", err))
		}
	}
	return Result{Text: text, Source: SourceGenerated}
}

func statsPrompt(rows []stats.Row, site string) string {
	snapshot, _ := json.Marshal(rows)
	var b strings.Builder
	b.WriteString("Tu es l'assistant de gestion d'EBF, une entreprise de services techniques en Côte d'Ivoire. ")
	b.WriteString(fmt.Sprintf("Rédige une courte synthèse (3 phrases maximum) des statistiques suivantes pour le site %q. ", site))
	b.WriteString("Mentionne les tendances du chiffre d'affaires, des dépenses et des interventions.\n\nDonnées:\n")
	b.Write(snapshot)
	return b.String()
}

func reportsPrompt(reports []models.ReportRecord, period string) string {
	type line struct {
		Date    string `json:"date"`
		Site    string `json:"site,omitempty"`
		Content string `json:"content"`
	}
	lines := make([]line, 0, len(reports))
	for _, report := range reports {
		entry := line{Date: report.Date, Content: report.Content}
		if report.Site != nil {
			entry.Site = *report.Site
		}
		lines = append(lines, entry)
	}
	snapshot, _ := json.Marshal(lines)

	var b strings.Builder
	b.WriteString("Tu es l'assistant de gestion d'EBF, une entreprise de services techniques en Côte d'Ivoire. ")
	b.WriteString(fmt.Sprintf("Rédige une courte synthèse (3 phrases maximum) des rapports techniciens pour la période %q. ", period))
	b.WriteString("Dégage les faits marquants et les problèmes récurrents.\n\nRapports:\n")
	b.Write(snapshot)
	return b.String()
}

func promptDigest(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
