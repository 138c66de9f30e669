package service_test

import (
	"context"
	"sort"

	"github.com/Chinmaytikole/DiscoverCart/internal/model"
	"github.com/Chinmaytikole/DiscoverCart/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory SectionRepository stub ─────────────────────────────────────────

type stubSectionRepo struct {
	sections map[uint]*model.Section
	nextID   uint
	products *stubProductRepo
}

func newStubSectionRepo(products *stubProductRepo) *stubSectionRepo {
	return &stubSectionRepo{sections: make(map[uint]*model.Section), nextID: 1, products: products}
}

func (r *stubSectionRepo) Create(_ context.Context, s *model.Section) error {
	for _, existing := range r.sections {
		if existing.Slug == s.Slug || existing.Name == s.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.sections[s.ID] = s
	return nil
}

func (r *stubSectionRepo) FindByID(_ context.Context, id uint) (*model.Section, error) {
	s, ok := r.sections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSectionRepo) FindBySlug(_ context.Context, slug string) (*model.Section, error) {
	for _, s := range r.sections {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSectionRepo) List(_ context.Context) ([]model.Section, error) {
	list := make([]model.Section, 0, len(r.sections))
	for _, s := range r.sections {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *stubSectionRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, s := range r.sections {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSectionRepo) Delete(_ context.Context, id uint) error {
	delete(r.sections, id)
	return nil
}

func (r *stubSectionRepo) CountProducts(_ context.Context, sectionID uint) (int64, error) {
	var count int64
	for _, p := range r.products.products {
		if p.SectionID == sectionID {
			count++
		}
	}
	return count, nil
}

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	for _, existing := range r.products {
		if existing.Slug == p.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, slug string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	for _, p := range r.products {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) sorted() []model.Product {
	list := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, *p)
	}
	// newest first — stub IDs are monotonic
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list
}

func (r *stubProductRepo) ListBySection(_ context.Context, sectionID uint) ([]model.Product, error) {
	var list []model.Product
	for _, p := range r.sorted() {
		if p.SectionID == sectionID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *stubProductRepo) ListRecent(_ context.Context, limit int) ([]model.Product, error) {
	list := r.sorted()
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]model.Product, error) {
	return r.sorted(), nil
}

func (r *stubProductRepo) Search(_ context.Context, query string) ([]model.Product, error) {
	var list []model.Product
	for _, p := range r.sorted() {
		if containsFold(p.Name, query) || containsFold(p.ShortDescription, query) || containsFold(p.FullReview, query) {
			list = append(list, p)
		}
	}
	return list, nil
}

// Transaction snapshots the map and restores it when fn fails, mirroring a
// database rollback.
func (r *stubProductRepo) Transaction(_ context.Context, fn func(repository.ProductRepository) error) error {
	snapshot := make(map[uint]*model.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snapshot[id] = &cp
	}
	if err := fn(r); err != nil {
		r.products = snapshot
		return err
	}
	return nil
}
