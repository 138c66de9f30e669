package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Chinmaytikole/DiscoverCart/internal/content"
	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/model"
	"github.com/Chinmaytikole/DiscoverCart/internal/repository"
	"github.com/Chinmaytikole/DiscoverCart/internal/slug"

	"gorm.io/gorm"
)

// SectionService defines business operations for catalog sections.
type SectionService interface {
	Create(ctx context.Context, req dto.CreateSectionRequest) (dto.SectionResponse, error)
	List(ctx context.Context) ([]dto.SectionResponse, error)
	BySlug(ctx context.Context, s string) (dto.SectionDetailResponse, error)
	Delete(ctx context.Context, id uint) error
}

type sectionService struct {
	repo     repository.SectionRepository
	products repository.ProductRepository
	synth    *content.Synthesizer
}

func NewSectionService(repo repository.SectionRepository, products repository.ProductRepository, synth *content.Synthesizer) SectionService {
	return &sectionService{repo: repo, products: products, synth: synth}
}

func mapSection(s model.Section) dto.SectionResponse {
	return dto.SectionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// Create derives the section slug from the name and rejects duplicates.
// The duplicate policy is slug-based: two names that normalize to the same
// slug count as the same section even when they differ textually.
func (s *sectionService) Create(ctx context.Context, req dto.CreateSectionRequest) (dto.SectionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.SectionResponse{}, validationf("section name is required")
	}

	base := slug.Make(name)
	taken, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return dto.SectionResponse{}, err
	}
	if taken {
		return dto.SectionResponse{}, ErrConflict
	}

	section := &model.Section{
		Name:        name,
		Slug:        base,
		Description: s.synth.SectionDescription(ctx, name),
	}
	if err := s.repo.Create(ctx, section); err != nil {
		// Concurrent creation of the same slug loses here: the unique
		// constraint is the last line of defense.
		return dto.SectionResponse{}, err
	}
	return mapSection(*section), nil
}

func (s *sectionService) List(ctx context.Context) ([]dto.SectionResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SectionResponse, 0, len(list))
	for _, sec := range list {
		result = append(result, mapSection(sec))
	}
	return result, nil
}

func (s *sectionService) BySlug(ctx context.Context, slugValue string) (dto.SectionDetailResponse, error) {
	section, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SectionDetailResponse{}, ErrNotFound
		}
		return dto.SectionDetailResponse{}, err
	}

	products, err := s.products.ListBySection(ctx, section.ID)
	if err != nil {
		return dto.SectionDetailResponse{}, err
	}
	return dto.SectionDetailResponse{
		Section:  mapSection(*section),
		Products: mapProducts(products),
	}, nil
}

// Delete refuses to remove a section that still owns products.
func (s *sectionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	return s.repo.Delete(ctx, id)
}
