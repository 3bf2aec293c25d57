package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/internal/data/repository"
	"github.com/sauls8/nwa-jumpers/internal/dto/request"
)

type fakeInflatableRepo struct {
	items       map[string]*entity.Inflatable
	updateCalls []map[string]any
}

func newFakeInflatableRepo() *fakeInflatableRepo {
	return &fakeInflatableRepo{items: map[string]*entity.Inflatable{}}
}

func (f *fakeInflatableRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Inflatable, error) {
	out := []*entity.Inflatable{}
	for _, inf := range f.items {
		if activeOnly && !inf.IsActive {
			continue
		}
		out = append(out, inf)
	}
	return out, nil
}

func (f *fakeInflatableRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Inflatable, error) {
	out := []*entity.Inflatable{}
	for _, inf := range f.items {
		if inf.Category == category && inf.IsActive {
			out = append(out, inf)
		}
	}
	return out, nil
}

func (f *fakeInflatableRepo) FindByID(ctx context.Context, id string) (*entity.Inflatable, error) {
	inf, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return inf, nil
}

func (f *fakeInflatableRepo) Create(ctx context.Context, inflatable *entity.Inflatable) error {
	inflatable.CreatedAt = time.Now()
	inflatable.UpdatedAt = inflatable.CreatedAt
	f.items[inflatable.ID] = inflatable
	return nil
}

func (f *fakeInflatableRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, ok := f.items[id]; !ok {
		return fmt.Errorf("inflatable %s not found", id)
	}
	f.updateCalls = append(f.updateCalls, fields)
	return nil
}

func (f *fakeInflatableRepo) SetActive(ctx context.Context, id string, active bool) error {
	inf, ok := f.items[id]
	if !ok {
		return fmt.Errorf("inflatable %s not found", id)
	}
	inf.IsActive = active
	return nil
}

func newInventoryService(t *testing.T, fake *fakeInflatableRepo) InventoryService {
	t.Helper()
	repo := &repository.Repository{Inflatable: fake}
	return NewInventoryService(repo, zap.NewNop())
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateInflatableDerivesSlugID(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	created, err := svc.CreateInflatable(context.Background(), &request.CreateInflatableRequest{
		Name:     "Castle w/ Slide",
		Price:    floatPtr(250),
		Category: "combo",
		Features: []string{"slide", "basketball hoop"},
	})
	require.NoError(t, err)

	assert.Equal(t, "castle-w-slide", created.ID)
	assert.Equal(t, 1, created.IsActive)
	assert.Equal(t, []string{"slide", "basketball hoop"}, created.Features)
}

func TestCreateInflatableRejectsDuplicateID(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	_, err := svc.CreateInflatable(context.Background(), &request.CreateInflatableRequest{
		Name: "Castle Combo", Price: floatPtr(250), Category: "combo",
	})
	require.NoError(t, err)

	_, err = svc.CreateInflatable(context.Background(), &request.CreateInflatableRequest{
		Name: "Castle Combo", Price: floatPtr(300), Category: "combo",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateInflatableBuildsFieldMap(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	_, err := svc.CreateInflatable(context.Background(), &request.CreateInflatableRequest{
		Name: "Castle Combo", Price: floatPtr(250), Category: "combo",
	})
	require.NoError(t, err)

	newPrice := 275.0
	inactive := false
	_, err = svc.UpdateInflatable(context.Background(), "castle-combo", &request.UpdateInflatableRequest{
		Price:    &newPrice,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	require.Len(t, fake.updateCalls, 1)
	fields := fake.updateCalls[0]
	assert.Equal(t, 275.0, fields["price"])
	assert.Equal(t, 0, fields["is_active"])
	assert.NotContains(t, fields, "name")
}

func TestUpdateInflatableRejectsNegativePrice(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	_, err := svc.CreateInflatable(context.Background(), &request.CreateInflatableRequest{
		Name: "Castle Combo", Price: floatPtr(250), Category: "combo",
	})
	require.NoError(t, err)

	bad := -10.0
	_, err = svc.UpdateInflatable(context.Background(), "castle-combo", &request.UpdateInflatableRequest{
		Price: &bad,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, fake.updateCalls)
}

func TestDeleteInflatableIsSoft(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	_, err := svc.CreateInflatable(context.Background(), &request.CreateInflatableRequest{
		Name: "Castle Combo", Price: floatPtr(250), Category: "combo",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInflatable(context.Background(), "castle-combo"))

	// Row survives and is still fetchable by ID, just inactive.
	inf, err := svc.GetInflatable(context.Background(), "castle-combo")
	require.NoError(t, err)
	assert.Equal(t, 0, inf.IsActive)

	active, err := svc.ListInflatables(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestDeleteInflatableNotFound(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	err := svc.DeleteInflatable(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBulkCreateReportsPerItemErrors(t *testing.T) {
	fake := newFakeInflatableRepo()
	svc := newInventoryService(t, fake)

	result, err := svc.BulkCreateInflatables(context.Background(), &request.BulkCreateInflatablesRequest{
		Inflatables: []request.CreateInflatableRequest{
			{Name: "Castle Combo", Price: floatPtr(250), Category: "combo"},
			{Name: "Castle Combo", Price: floatPtr(300), Category: "combo"}, // duplicate
			{Name: "Water Slide", Price: floatPtr(200), Category: "water"},
		},
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Len(t, result.Created, 2)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "already exists")
}
