package handler

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/storage"
)

type memUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*domain.User
	addresses map[uuid.UUID][]domain.Address
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:     make(map[uuid.UUID]*domain.User),
		addresses: make(map[uuid.UUID][]domain.Address),
	}
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *user
	m.users[user.ID] = &u
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user by email: %w", repository.ErrNotFound)
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user by username: %w", repository.ErrNotFound)
}

func (m *memUserRepo) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username || strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) ListAddresses(ctx context.Context, userID uuid.UUID) ([]domain.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Address{}
	out = append(out, m.addresses[userID]...)
	return out, nil
}

func (m *memUserRepo) AddAddress(ctx context.Context, address *domain.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addresses[address.UserID] = append(m.addresses[address.UserID], *address)
	return nil
}

func (m *memUserRepo) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.addresses[userID]
	for i, a := range list {
		if a.ID == addressID {
			m.addresses[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("address %s: %w", addressID, repository.ErrNotFound)
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*domain.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*domain.Product)}
}

func (m *memProductRepo) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := *product
	m.products[product.ID] = &p
	return nil
}

func (m *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
}

func (m *memProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Product{}
	for _, p := range m.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memProductRepo) Update(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, repository.ErrNotFound)
	}
	p := *product
	m.products[product.ID] = &p
	return nil
}

func (m *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	delete(m.products, id)
	return nil
}

type memBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemBlacklist() *memBlacklist {
	return &memBlacklist{revoked: make(map[string]bool)}
}

func (m *memBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[token] = true
	return nil
}

func (m *memBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[token], nil
}

type memUploader struct{}

func (memUploader) Upload(ctx context.Context, fileName string, body io.Reader) (*storage.UploadResult, error) {
	key := "products/test/" + fileName
	url := "http://images.test/" + key
	return &storage.UploadResult{URL: url, ThumbnailURL: url, FileID: key}, nil
}
