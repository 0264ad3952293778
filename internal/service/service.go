package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-health/internal/analyzer"
	"github.com/Dan9191/finance-health/internal/middleware"
	"github.com/Dan9191/finance-health/internal/models"
)

// Service handles business logic
type Service struct {
	log *logrus.Logger
}

// NewService initializes a new service
func NewService(log *logrus.Logger) *Service {
	return &Service{log: log}
}

// Analyze validates a questionnaire submission and builds its report
func (s *Service) Analyze(ctx context.Context, raw models.RawProfile) (*models.Report, error) {
	entry := s.log.WithField("request_id", middleware.RequestIDFromContext(ctx))

	report, err := analyzer.GenerateReport(raw)
	if err != nil {
		var perr *models.InvalidProfileError
		if errors.As(err, &perr) {
			entry.WithField("field", perr.Field).Warnf("Rejected profile: %v", perr.Err)
		} else {
			entry.Errorf("Failed to analyze profile: %v", err)
		}
		return nil, err
	}

	entry.WithFields(logrus.Fields{
		"score":           report.Score,
		"profile":         report.ProfileLabel,
		"recommendations": len(report.Recommendations),
		"warnings":        len(report.Warnings),
	}).Info("Profile analyzed")
	return &report, nil
}

// Fields returns the questionnaire configuration
func (s *Service) Fields() []models.FieldSpec {
	return models.Fields
}
