package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/repository"
)

var (
	// ErrInvalidFilter is returned when explorer filter parameters fail validation
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrReadingNotFound is returned when no reading has the requested ID
	ErrReadingNotFound = errors.New("reading not found")
)

// ReadingService handles business logic for the data explorer
type ReadingService struct {
	readingRepo *repository.ReadingRepository
	validate    *validator.Validate
}

// NewReadingService creates a new reading service
func NewReadingService(readingRepo *repository.ReadingRepository) *ReadingService {
	return &ReadingService{
		readingRepo: readingRepo,
		validate:    validator.New(),
	}
}

// GetReadings retrieves readings with filtering and pagination
func (s *ReadingService) GetReadings(filter models.ReadingFilter) (*models.ReadingsResponse, error) {
	if err := s.validate.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	filter.Normalize()

	readings, total, err := s.readingRepo.GetReadings(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings: %w", err)
	}

	// Calculate total pages
	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.ReadingsResponse{
		Data:       readings,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetReadingByID retrieves a single reading by ID
func (s *ReadingService) GetReadingByID(id string) (*models.Reading, error) {
	reading, err := s.readingRepo.GetReadingByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}
	if reading == nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingNotFound, id)
	}
	return reading, nil
}
