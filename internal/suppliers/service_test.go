package suppliers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

// mockRepo mirrors the SQL repository's contract, including the atomic
// max+1 id allocation.
type mockRepo struct {
	mu        sync.Mutex
	suppliers map[int64]Supplier
	products  map[int64][]SupplierProduct
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		suppliers: make(map[int64]Supplier),
		products:  make(map[int64][]SupplierProduct),
	}
}

func (m *mockRepo) List(ctx context.Context) ([]SupplierBrief, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SupplierBrief, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		out = append(out, SupplierBrief{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

func (m *mockRepo) Get(ctx context.Context, id int64) (Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.suppliers[id]
	if !ok {
		return Supplier{}, httpx.ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) Products(ctx context.Context, supplierID int64) ([]SupplierProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[supplierID], nil
}

func (m *mockRepo) Create(ctx context.Context, req CreateSupplierRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var max int64
	for id := range m.suppliers {
		if id > max {
			max = id
		}
	}
	id := max + 1
	m.suppliers[id] = Supplier{
		ID:           id,
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactTitle: req.ContactTitle,
		Address:      req.Address,
		City:         req.City,
		Phone:        req.Phone,
	}
	return id, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, patch UpdateSupplierRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.suppliers[id]
	if !ok {
		return httpx.ErrNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.ContactName != nil {
		s.ContactName = patch.ContactName
	}
	if patch.ContactTitle != nil {
		s.ContactTitle = patch.ContactTitle
	}
	if patch.Address != nil {
		s.Address = patch.Address
	}
	if patch.City != nil {
		s.City = patch.City
	}
	if patch.Phone != nil {
		s.Phone = patch.Phone
	}
	m.suppliers[id] = s
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.suppliers[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(m.suppliers, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()

	first, err := service.Create(ctx, CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := service.Create(ctx, CreateSupplierRequest{Name: "Bolt"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// Deleting below the max does not free the id for reuse.
	require.NoError(t, service.Delete(ctx, first.ID))
	third, err := service.Create(ctx, CreateSupplierRequest{Name: "Crate"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()

	const workers = 50
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := service.Create(ctx, CreateSupplierRequest{Name: "Race"})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- s.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateSupplierRequest{
		Name:        "Acme",
		ContactName: strptr("Jane Doe"),
		City:        strptr("Gdansk"),
	})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, UpdateSupplierRequest{
		City: strptr("Sopot"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", updated.Name)
	require.NotNil(t, updated.ContactName)
	assert.Equal(t, "Jane Doe", *updated.ContactName)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Sopot", *updated.City)
	assert.Nil(t, updated.Phone, "absent fields stay absent")
}

func TestUpdateEmptyPatchReturnsCurrentEntity(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, UpdateSupplierRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateMissingSupplier(t *testing.T) {
	service := NewService(newMockRepo())

	_, err := service.Update(context.Background(), 42, UpdateSupplierRequest{Name: strptr("X")})
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteMissingSupplierMutatesNothing(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)

	err = service.Delete(ctx, 42)
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	still, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, still)
}

func TestProductsEmptyIsNotFound(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()

	_, err := service.Products(ctx, 7)
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	repo.products[7] = []SupplierProduct{{ID: 10, Name: "Chai", Category: "Beverages"}}
	products, err := service.Products(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
