package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/storage"
)

// --- in-memory user repository ---

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*domain.User
	addresses map[uuid.UUID][]domain.Address
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uuid.UUID]*domain.User),
		addresses: make(map[uuid.UUID][]domain.Address),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user by email: %w", repository.ErrNotFound)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user by username: %w", repository.ErrNotFound)
}

func (f *fakeUserRepo) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username || strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListAddresses(ctx context.Context, userID uuid.UUID) ([]domain.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Address{}
	out = append(out, f.addresses[userID]...)
	return out, nil
}

func (f *fakeUserRepo) AddAddress(ctx context.Context, address *domain.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addresses[address.UserID] = append(f.addresses[address.UserID], *address)
	return nil
}

func (f *fakeUserRepo) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.addresses[userID]
	for i, a := range list {
		if a.ID == addressID {
			f.addresses[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("address %s: %w", addressID, repository.ErrNotFound)
}

// --- in-memory product repository ---

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*domain.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := *product
	f.products[product.ID] = &p
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matches := []*domain.Product{}
	for _, p := range f.products {
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(p.Title), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		if filter.MinPrice != nil && p.Price.Amount < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price.Amount > *filter.MaxPrice {
			continue
		}
		copied := *p
		matches = append(matches, &copied)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	if filter.Skip >= len(matches) {
		return []*domain.Product{}, nil
	}
	matches = matches[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(matches) {
		matches = matches[:filter.Limit]
	}
	return matches, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, repository.ErrNotFound)
	}
	p := *product
	f.products[product.ID] = &p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	delete(f.products, id)
	return nil
}

// --- in-memory token blacklist ---

type fakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]bool)}
}

func (f *fakeBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[token] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[token], nil
}

// --- recording image uploader ---

type fakeUploader struct {
	mu       sync.Mutex
	uploaded []string
}

func (f *fakeUploader) Upload(ctx context.Context, fileName string, body io.Reader) (*storage.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, fileName)
	key := fmt.Sprintf("products/test/%s", fileName)
	url := "http://images.test/" + key
	return &storage.UploadResult{URL: url, ThumbnailURL: url, FileID: key}, nil
}
