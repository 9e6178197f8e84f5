package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/config"
	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/metrics"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"go.uber.org/zap"
)

type SearchUseCase struct {
	profileRepo repository.ProfileRepository
	cfg         config.SearchConfig
	logger      *zap.Logger
}

func NewSearchUseCase(
	profileRepo repository.ProfileRepository,
	cfg config.SearchConfig,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		profileRepo: profileRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// SearchResult is one candidate profile with its score against the requester
type SearchResult struct {
	*domain.Profile
	MatchPercentage int `json:"matchPercentage"`
}

// SearchResponse represents one page of ranked candidates
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// CompatibilityResponse explains a single pairwise score
type CompatibilityResponse struct {
	CandidateID int                     `json:"candidateId"`
	Percentage  int                     `json:"percentage"`
	Quality     domain.MatchQuality     `json:"quality"`
	Breakdown   matching.ScoreBreakdown `json:"breakdown"`
}

// Search validates the criteria, resolves the requester and returns the
// requested page of filtered, scored and ordered candidates.
func (uc *SearchUseCase) Search(ctx context.Context, requesterID int, in *matching.SearchInput) (*SearchResponse, error) {
	start := time.Now()

	q, err := in.Parse(uc.cfg.DefaultPageSize, uc.cfg.MaxPageSize)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("unknown", metrics.OutcomeInvalidCriteria).Inc()
		uc.logger.Debug("rejected search criteria",
			zap.Int("requester_id", requesterID),
			zap.Error(err),
		)
		return nil, err
	}
	sortLabel := string(q.Sort)

	requester, err := uc.profileRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			metrics.SearchRequests.WithLabelValues(sortLabel, metrics.OutcomeUnknownRequester).Inc()
			return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownRequester, requesterID)
		}
		metrics.SearchRequests.WithLabelValues(sortLabel, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to get requester profile: %w", err)
	}

	pool, err := uc.profileRepo.GetAll(ctx)
	if err != nil {
		metrics.SearchRequests.WithLabelValues(sortLabel, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	filtered := matching.Filter(pool, requester.ID, q.Criteria)
	ranked := matching.Rank(filtered, requester, q.Sort)
	page, totalPages := matching.Paginate(ranked, q.Page, q.PageSize)

	results := make([]SearchResult, 0, len(page))
	for _, c := range page {
		results = append(results, SearchResult{
			Profile:         c.Profile,
			MatchPercentage: c.Percentage,
		})
	}

	elapsed := time.Since(start)
	metrics.SearchRequests.WithLabelValues(sortLabel, metrics.OutcomeOK).Inc()
	metrics.SearchDuration.WithLabelValues(sortLabel).Observe(elapsed.Seconds())
	metrics.SearchCandidates.Observe(float64(len(filtered)))

	uc.logger.Info("roommate search",
		zap.Int("requester_id", requesterID),
		zap.String("sort", sortLabel),
		zap.Int("pool", len(pool)),
		zap.Int("matched", len(filtered)),
		zap.Int("page", q.Page),
		zap.Int("page_size", q.PageSize),
		zap.Duration("elapsed", elapsed),
	)

	return &SearchResponse{
		Results:    results,
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      len(filtered),
		TotalPages: totalPages,
	}, nil
}

// Compatibility scores a single candidate from the requester's point of view
func (uc *SearchUseCase) Compatibility(ctx context.Context, requesterID, candidateID int) (*CompatibilityResponse, error) {
	if requesterID == candidateID {
		return nil, domain.ErrSelfMatch
	}

	requester, err := uc.profileRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownRequester, requesterID)
		}
		return nil, fmt.Errorf("failed to get requester profile: %w", err)
	}

	candidate, err := uc.profileRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	b := matching.Breakdown(requester, candidate)
	result := domain.ScoreResult{CandidateID: candidate.ID, Percentage: b.Percentage}

	return &CompatibilityResponse{
		CandidateID: result.CandidateID,
		Percentage:  result.Percentage,
		Quality:     result.Quality(),
		Breakdown:   b,
	}, nil
}
