package repository

import (
	"context"

	"github.com/Chinmaytikole/DiscoverCart/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	// SlugExists checks slug uniqueness, optionally excluding the record being
	// updated (excludeID 0 means no exclusion).
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Save(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint) error
	ListBySection(ctx context.Context, sectionID uint) ([]model.Product, error)
	ListRecent(ctx context.Context, limit int) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
	// Transaction runs fn against a transaction-bound repository; any error
	// rolls the whole mutation back.
	Transaction(ctx context.Context, fn func(r ProductRepository) error) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *productRepo) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) ListBySection(ctx context.Context, sectionID uint) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *productRepo) ListRecent(ctx context.Context, limit int) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *productRepo) Search(ctx context.Context, query string) ([]model.Product, error) {
	var list []model.Product
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR short_description ILIKE ? OR full_review ILIKE ?", pattern, pattern, pattern).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *productRepo) Transaction(ctx context.Context, fn func(ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&productRepo{db: tx})
	})
}
