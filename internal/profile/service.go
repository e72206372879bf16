package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/wellness/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile

type profileRepo interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

type Service struct {
	repo profileRepo
	now  func() time.Time
}

func NewService(repo profileRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileService.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return s.repo.Get(ctx, userID)
}

// GetCompleted returns ErrOnboardingIncomplete for profiles that did not finish onboarding.
func (s *Service) GetCompleted(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.OnboardingComplete {
		return nil, ErrOnboardingIncomplete
	}
	return p, nil
}

func (s *Service) getOrEmpty(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return newEmptyProfile(userID), nil
	}
	return p, err
}

// SaveProgress stores a partially filled onboarding form. Targets are not touched.
func (s *Service) SaveProgress(ctx context.Context, userID string, fields Fields) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileService.saveProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := fields.Validate(); err != nil {
		return nil, err
	}

	p, err := s.getOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	fields.applyTo(p)
	p.UpdatedAt = s.now()

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CompleteOnboarding applies the final form, computes the daily targets and marks onboarding done.
func (s *Service) CompleteOnboarding(ctx context.Context, userID string, fields Fields) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileService.completeOnboarding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := fields.Validate(); err != nil {
		return nil, err
	}

	p, err := s.getOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	fields.applyTo(p)

	dailyTargets, err := computeTargets(p)
	if err != nil {
		return nil, err
	}
	p.setTargets(dailyTargets)
	p.OnboardingComplete = true
	p.UpdatedAt = s.now()

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	log.Debugf("onboarding complete for [%s], calories target: %d", userID, dailyTargets.Calories)
	return p, nil
}

// Update edits an existing profile. Targets of a completed profile follow goal and biometric changes.
func (s *Service) Update(ctx context.Context, userID string, fields Fields) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileService.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := fields.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	fields.applyTo(p)

	if p.OnboardingComplete && fields.affectsTargets() {
		dailyTargets, err := computeTargets(p)
		if err != nil {
			return nil, fmt.Errorf("recompute targets: %w", err)
		}
		p.setTargets(dailyTargets)
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
