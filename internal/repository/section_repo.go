package repository

import (
	"context"

	"github.com/Chinmaytikole/DiscoverCart/internal/model"

	"gorm.io/gorm"
)

// SectionRepository defines the data access contract for sections.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type SectionRepository interface {
	Create(ctx context.Context, s *model.Section) error
	FindByID(ctx context.Context, id uint) (*model.Section, error)
	FindBySlug(ctx context.Context, slug string) (*model.Section, error)
	List(ctx context.Context) ([]model.Section, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, id uint) error
	CountProducts(ctx context.Context, sectionID uint) (int64, error)
}

type sectionRepo struct{ db *gorm.DB }

func NewSectionRepository(db *gorm.DB) SectionRepository { return &sectionRepo{db: db} }

func (r *sectionRepo) Create(ctx context.Context, s *model.Section) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sectionRepo) FindByID(ctx context.Context, id uint) (*model.Section, error) {
	var s model.Section
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepo) FindBySlug(ctx context.Context, slug string) (*model.Section, error) {
	var s model.Section
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepo) List(ctx context.Context) ([]model.Section, error) {
	var list []model.Section
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *sectionRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Section{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *sectionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Section{}, id).Error
}

func (r *sectionRepo) CountProducts(ctx context.Context, sectionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}
