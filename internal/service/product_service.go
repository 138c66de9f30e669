package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Chinmaytikole/DiscoverCart/internal/content"
	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/model"
	"github.com/Chinmaytikole/DiscoverCart/internal/repository"
	"github.com/Chinmaytikole/DiscoverCart/internal/slug"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// featuredLimit is how many recent products the homepage shows.
const featuredLimit = 6

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	QuickUpdate(ctx context.Context, id uint, req dto.QuickUpdateRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	BySlug(ctx context.Context, s string) (dto.ProductResponse, error)
	Recent(ctx context.Context) ([]dto.ProductResponse, error)
	All(ctx context.Context) ([]dto.ProductResponse, error)
	Search(ctx context.Context, query string) ([]dto.ProductResponse, error)
}

type productService struct {
	repo     repository.ProductRepository
	sections repository.SectionRepository
	synth    *content.Synthesizer
}

func NewProductService(repo repository.ProductRepository, sections repository.SectionRepository, synth *content.Synthesizer) ProductService {
	return &productService{repo: repo, sections: sections, synth: synth}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		AffiliateLink:    p.AffiliateLink,
		Price:            p.Price,
		DiscountPct:      p.DiscountPct,
		ImageURL:         p.ImageURL,
		ShortDescription: p.ShortDescription,
		FullReview:       p.FullReview,
		Pros:             content.DecodeList(p.Pros),
		Cons:             content.DecodeList(p.Cons),
		SEOTitle:         p.SEOTitle,
		MetaDescription:  p.MetaDescription,
		SectionID:        p.SectionID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func mapProducts(list []model.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result
}

// parseDiscount coerces free-text discount input to a percentage. Empty or
// non-numeric input becomes 0 without failing; a parsed value outside [0,100]
// is rejected.
func parseDiscount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, nil
	}
	if v < 0 || v > 100 {
		return 0, validationf("discount percentage must be between 0 and 100")
	}
	return v, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	affiliate := strings.TrimSpace(req.AffiliateLink)
	if name == "" || affiliate == "" || req.SectionID == 0 {
		return dto.ProductResponse{}, validationf("product name, affiliate link, and section are required")
	}

	section, err := s.sections.FindByID(ctx, req.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, validationf("invalid section selected")
		}
		return dto.ProductResponse{}, err
	}

	discount, err := parseDiscount(req.Discount)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	resolved, err := slug.Resolve(slug.Make(name), func(candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		return dto.ProductResponse{}, err
	}

	bundle := s.synth.ProductContent(ctx, name, affiliate, section.Name, req.Price)

	p := &model.Product{
		Name:             name,
		Slug:             resolved,
		AffiliateLink:    affiliate,
		Price:            req.Price,
		DiscountPct:      discount,
		ImageURL:         strings.TrimSpace(req.ImageURL),
		ShortDescription: bundle.ShortDescription,
		FullReview:       bundle.FullReview,
		Pros:             content.EncodeList(bundle.Pros),
		Cons:             content.EncodeList(bundle.Cons),
		SEOTitle:         bundle.SEOTitle,
		MetaDescription:  bundle.MetaDescription,
		SectionID:        section.ID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		// Two concurrent writers can both observe the slug as free; the
		// unique constraint rejects the loser and the caller sees a
		// creation failure instead of silent corruption.
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

// Update applies either a full content regeneration or a partial field update
// inside a single transaction; any error leaves the record unchanged.
func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	var updated model.Product

	err := s.repo.Transaction(ctx, func(tx repository.ProductRepository) error {
		p, err := tx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return validationf("product name cannot be blank")
			}
			if name != p.Name {
				resolved, err := slug.Resolve(slug.Make(name), func(candidate string) (bool, error) {
					return tx.SlugExists(ctx, candidate, p.ID)
				})
				if err != nil {
					return err
				}
				p.Name = name
				p.Slug = resolved
			}
		}
		if req.AffiliateLink != nil && strings.TrimSpace(*req.AffiliateLink) != "" {
			p.AffiliateLink = strings.TrimSpace(*req.AffiliateLink)
		}
		if req.Price != nil {
			p.Price = req.Price
		}
		if req.Discount != nil {
			discount, err := parseDiscount(*req.Discount)
			if err != nil {
				return err
			}
			p.DiscountPct = discount
		}
		if req.ImageURL != nil {
			p.ImageURL = strings.TrimSpace(*req.ImageURL)
		}

		if req.Regenerate {
			// Fresh synthesis replaces the whole bundle; manually supplied
			// content fields in the same request are ignored.
			section, err := s.sections.FindByID(ctx, p.SectionID)
			if err != nil {
				return err
			}
			bundle := s.synth.ProductContent(ctx, p.Name, p.AffiliateLink, section.Name, p.Price)
			p.ShortDescription = bundle.ShortDescription
			p.FullReview = bundle.FullReview
			p.Pros = content.EncodeList(bundle.Pros)
			p.Cons = content.EncodeList(bundle.Cons)
			p.SEOTitle = bundle.SEOTitle
			p.MetaDescription = bundle.MetaDescription
		} else {
			// Partial update: only non-empty replacements are applied.
			if req.ShortDescription != nil && *req.ShortDescription != "" {
				p.ShortDescription = *req.ShortDescription
			}
			if req.FullReview != nil && *req.FullReview != "" {
				p.FullReview = *req.FullReview
			}
			if len(req.Pros) > 0 {
				p.Pros = content.EncodeList(req.Pros)
			}
			if len(req.Cons) > 0 {
				p.Cons = content.EncodeList(req.Cons)
			}
			if req.SEOTitle != nil && *req.SEOTitle != "" {
				p.SEOTitle = *req.SEOTitle
			}
			if req.MetaDescription != nil && *req.MetaDescription != "" {
				p.MetaDescription = *req.MetaDescription
			}
		}

		if err := tx.Save(ctx, p); err != nil {
			return err
		}
		updated = *p
		return nil
	})
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(updated), nil
}

// QuickUpdate changes a single field from an enumerated allow-list; unknown
// field names are rejected without mutating anything.
func (s *productService) QuickUpdate(ctx context.Context, id uint, req dto.QuickUpdateRequest) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, ErrNotFound
		}
		return dto.ProductResponse{}, err
	}

	value := strings.TrimSpace(req.Value)

	switch req.Field {
	case "name":
		if value == "" {
			return dto.ProductResponse{}, validationf("product name cannot be blank")
		}
		if value != p.Name {
			resolved, err := slug.Resolve(slug.Make(value), func(candidate string) (bool, error) {
				return s.repo.SlugExists(ctx, candidate, p.ID)
			})
			if err != nil {
				return dto.ProductResponse{}, err
			}
			p.Name = value
			p.Slug = resolved
		}
	case "price":
		if value == "" {
			p.Price = nil
		} else {
			price, err := decimal.NewFromString(value)
			if err != nil {
				return dto.ProductResponse{}, validationf("invalid price value")
			}
			p.Price = &price
		}
	case "affiliate_link":
		if value == "" {
			return dto.ProductResponse{}, validationf("affiliate link cannot be blank")
		}
		p.AffiliateLink = value
	case "image_url":
		p.ImageURL = value
	case "discount_percentage":
		discount, err := parseDiscount(value)
		if err != nil {
			return dto.ProductResponse{}, err
		}
		p.DiscountPct = discount
	default:
		return dto.ProductResponse{}, validationf("invalid field: %s", req.Field)
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) BySlug(ctx context.Context, slugValue string) (dto.ProductResponse, error) {
	p, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, ErrNotFound
		}
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) Recent(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.ListRecent(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	return mapProducts(list), nil
}

func (s *productService) All(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapProducts(list), nil
}

// Search matches a case-insensitive substring across name, short description,
// and full review. Empty-query handling belongs to the caller.
func (s *productService) Search(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	list, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return mapProducts(list), nil
}
