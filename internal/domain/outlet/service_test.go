package outlet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellpoint/internal/core/apperror"
)

type fakeRepo struct {
	byID   map[int64]*Outlet
	byCode map[string]*Outlet
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:   make(map[int64]*Outlet),
		byCode: make(map[string]*Outlet),
		nextID: 1,
	}
}

func (r *fakeRepo) Create(ctx context.Context, o *Outlet) error {
	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = o
	r.byCode[o.Code] = o
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*Outlet, error) {
	if o, ok := r.byID[id]; ok {
		return o, nil
	}
	return nil, apperror.NewNotFound("outlet", id)
}

func (r *fakeRepo) GetByCode(ctx context.Context, code string) (*Outlet, error) {
	if o, ok := r.byCode[code]; ok {
		return o, nil
	}
	return nil, apperror.NewNotFound("outlet", code)
}

func (r *fakeRepo) List(ctx context.Context) ([]*Outlet, error) {
	out := make([]*Outlet, 0, len(r.byID))
	for i := int64(1); i < r.nextID; i++ {
		if o, ok := r.byID[i]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func TestSegment_PadsToThreeDigits(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, svc.Create(ctx, NewOutlet("OUT"+string(rune('A'+i)), "Outlet")))
	}

	seg, err := svc.Segment(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "007", seg)
}

func TestSegment_WideIDsKeepAllDigits(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[1234] = &Outlet{ID: 1234, Code: "BIG", Name: "Big"}
	svc := NewService(repo)

	seg, err := svc.Segment(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, "1234", seg)
}

func TestSegment_UnknownOutlet(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Segment(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSegment_InvalidID(t *testing.T) {
	svc := NewService(newFakeRepo())

	for _, id := range []int64{0, -1} {
		_, err := svc.Segment(context.Background(), id)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestCreate_DuplicateCode(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, NewOutlet("MAIN", "Main Store")))

	err := svc.Create(ctx, NewOutlet("MAIN", "Impostor"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestCreate_RejectsMissingFields(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, NewOutlet("", "No Code")))
	assert.Error(t, svc.Create(ctx, NewOutlet("NONAME", "")))
}
