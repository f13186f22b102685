package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/scoring"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
)

// DefaultListLimit applies when a list request does not set a limit.
const DefaultListLimit = 100

type AdService struct {
	store store.Store
}

func NewAdService(s store.Store) *AdService {
	return &AdService{store: s}
}

// CreateAd validates the input, fills in the score when it is zero and persists the ad.
func (s *AdService) CreateAd(ctx context.Context, in *model.AdCreate) (*model.Ad, error) {
	if err := validateAdCreate(in); err != nil {
		return nil, err
	}
	clicks, cost, score := *in.ClickCount, *in.Cost, *in.Score
	if score == 0 {
		score = scoring.CalculateScore(clicks, cost, in.Source)
	}
	ad := &model.Ad{
		ProjectName: in.ProjectName,
		ProjectID:   in.ProjectID,
		Source:      in.Source,
		SourceURL:   in.SourceURL,
		Type:        model.DefaultAdType,
		ClickCount:  clicks,
		Cost:        cost,
		Score:       score,
	}
	out, err := s.store.Ads().Create(ctx, ad)
	if err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return out, nil
}

// ListAds returns ads ordered by id. A zero limit means DefaultListLimit.
func (s *AdService) ListAds(ctx context.Context, req model.ListAdsRequest) ([]*model.Ad, error) {
	if req.Skip < 0 || req.Limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must be non-negative", model.ErrValidation)
	}
	if req.Limit == 0 {
		req.Limit = DefaultListLimit
	}
	out, err := s.store.Ads().List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	return out, nil
}

func (s *AdService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	out, err := s.store.Ads().Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return out, nil
}

func validateAdCreate(in *model.AdCreate) error {
	if in == nil {
		return fmt.Errorf("%w: body is required", model.ErrValidation)
	}
	for _, f := range []struct{ name, val string }{
		{"project_name", in.ProjectName},
		{"project_id", in.ProjectID},
		{"source", in.Source},
	} {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%w: %s is required", model.ErrValidation, f.name)
		}
	}
	switch {
	case in.ClickCount == nil:
		return fmt.Errorf("%w: click_count is required", model.ErrValidation)
	case in.Cost == nil:
		return fmt.Errorf("%w: cost is required", model.ErrValidation)
	case in.Score == nil:
		return fmt.Errorf("%w: score is required", model.ErrValidation)
	}
	if *in.ClickCount < 0 {
		return fmt.Errorf("%w: click_count must be non-negative", model.ErrValidation)
	}
	if *in.Cost < 0 {
		return fmt.Errorf("%w: cost must be non-negative", model.ErrValidation)
	}
	return nil
}
