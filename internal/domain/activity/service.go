package activity

import (
	"context"

	"pet-care-companion/internal/domain/pets"
)

// Service expone las series del collar validando que la mascota exista. Las
// series en sí son puras (misma entrada, misma salida), por lo que el estado
// del servicio es solo la referencia al registro de mascotas.
type Service struct {
	petsSvc *pets.Service
}

func NewService(petsSvc *pets.Service) *Service {
	return &Service{petsSvc: petsSvc}
}

func (s *Service) Samples(ctx context.Context, petID int64, rng TimeRange) ([]Sample, error) {
	if _, err := s.petsSvc.GetByID(ctx, petID); err != nil {
		return nil, err
	}
	return SamplesFor(petID, rng), nil
}

func (s *Service) Summary(ctx context.Context, petID int64, rng TimeRange) (Summary, error) {
	if _, err := s.petsSvc.GetByID(ctx, petID); err != nil {
		return Summary{}, err
	}
	return SummaryFor(petID, rng), nil
}

func (s *Service) Alerts(ctx context.Context, petID int64, rng TimeRange) (AlertReport, error) {
	if _, err := s.petsSvc.GetByID(ctx, petID); err != nil {
		return AlertReport{}, err
	}
	return AlertsFor(petID, rng), nil
}

func (s *Service) HealthSamples(ctx context.Context, petID int64, rng TimeRange) ([]HealthSample, error) {
	if _, err := s.petsSvc.GetByID(ctx, petID); err != nil {
		return nil, err
	}
	return HealthSamplesFor(petID, rng), nil
}

func (s *Service) HealthAbnormalities(ctx context.Context, petID int64, rng TimeRange) (Abnormality, error) {
	if _, err := s.petsSvc.GetByID(ctx, petID); err != nil {
		return Abnormality{}, err
	}
	return CheckAbnormalities(petID, rng), nil
}
