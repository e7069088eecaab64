package ordernum

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellpoint/internal/core/apperror"
	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/internal/domain/order"
)

// --- Test doubles ---

// memStore is an in-memory OrderStore. forcedCollisions makes the next N
// existence checks report a collision regardless of content, which is how
// the retry tests steer the allocator.
type memStore struct {
	mu               sync.Mutex
	orders           []*order.Order
	byNumber         map[string]*order.Order
	forcedCollisions int
	existsCalls      int
}

func newMemStore() *memStore {
	return &memStore{byNumber: make(map[string]*order.Order)}
}

func (m *memStore) insert(o *order.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
	m.byNumber[o.Number] = o
}

func (m *memStore) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.existsCalls++
	if m.forcedCollisions > 0 {
		m.forcedCollisions--
		return true, nil
	}
	_, ok := m.byNumber[number]
	return ok, nil
}

func (m *memStore) LastNumberByPrefix(ctx context.Context, prefix string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.orders) - 1; i >= 0; i-- {
		if strings.HasPrefix(m.orders[i].Number, prefix) {
			return m.orders[i].Number, nil
		}
	}
	return "", nil
}

func (m *memStore) LastByOutlet(ctx context.Context, outletID int64) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].OutletID == outletID {
			return m.orders[i], nil
		}
	}
	return nil, nil
}

func (m *memStore) CountByOutlet(ctx context.Context, outletID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, o := range m.orders {
		if o.OutletID == outletID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountByOutletSince(ctx context.Context, outletID int64, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, o := range m.orders {
		if o.OutletID == outletID && !o.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// staticOutlets resolves outlet ids from a fixed map.
type staticOutlets map[int64]string

func (s staticOutlets) Segment(ctx context.Context, outletID int64) (string, error) {
	seg, ok := s[outletID]
	if !ok {
		return "", apperror.NewNotFound("outlet", outletID)
	}
	return seg, nil
}

// passTx executes the function without a real transaction. The memStore
// mutex stands in for store-level isolation.
type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(store *memStore) *Service {
	return NewService(store, staticOutlets{7: "007", 12: "012"}, passTx{})
}

func persist(store *memStore, res *corenum.Result, outletID int64) {
	store.insert(&order.Order{
		Number:    res.Number,
		OutletID:  outletID,
		CreatedAt: res.GeneratedAt,
	})
}

// --- Sequence formats ---

func TestGenerate_Sequential_EmptyStore(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatSequential, 7))
	require.NoError(t, err)

	assert.Equal(t, "ORD-007-0001", res.Number)
	assert.Equal(t, int64(1), res.Sequence)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestGenerate_Sequential_Monotonic(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()
	cfg := corenum.DefaultConfig(corenum.FormatSequential, 7)

	for i, want := range []string{"ORD-007-0001", "ORD-007-0002", "ORD-007-0003"} {
		res, err := svc.Generate(ctx, cfg)
		require.NoError(t, err)
		assert.Equal(t, want, res.Number)
		assert.Equal(t, int64(i+1), res.Sequence)
		persist(store, res, 7)
	}
}

func TestGenerate_Sequential_OutletScopesAreIndependent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	res7, err := svc.Generate(ctx, corenum.DefaultConfig(corenum.FormatSequential, 7))
	require.NoError(t, err)
	persist(store, res7, 7)

	res12, err := svc.Generate(ctx, corenum.DefaultConfig(corenum.FormatSequential, 12))
	require.NoError(t, err)
	persist(store, res12, 12)

	// Both outlets issue sequence 1; the numbers differ only in the
	// outlet segment.
	assert.Equal(t, int64(1), res7.Sequence)
	assert.Equal(t, int64(1), res12.Sequence)
	assert.Equal(t, "ORD-007-0001", res7.Number)
	assert.Equal(t, "ORD-012-0001", res12.Number)
}

func TestGenerate_Sequential_CustomPrefixAndWidth(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cfg := corenum.Config{
		Format:         corenum.FormatSequential,
		OutletID:       7,
		Prefix:         "POS",
		SequenceLength: 6,
	}
	res, err := svc.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "POS-007-000001", res.Number)
}

func TestGenerate_DateBased_ResetsAtDayBoundary(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()
	cfg := corenum.DefaultConfig(corenum.FormatDateBased, 7)

	day1 := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }

	res, err := svc.Generate(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "ORD-007-20250115-0001", res.Number)
	persist(store, res, 7)

	res, err = svc.Generate(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "ORD-007-20250115-0002", res.Number)
	persist(store, res, 7)

	// Next UTC day: the sequence restarts at 1 under the new date segment.
	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }

	res, err = svc.Generate(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "ORD-007-20250116-0001", res.Number)
	assert.Equal(t, int64(1), res.Sequence)
}

func TestGenerate_Sequential_MalformedLastNumberRestartsSafely(t *testing.T) {
	store := newMemStore()
	store.insert(&order.Order{Number: "ORD-007-LEGACY", OutletID: 7, CreatedAt: time.Now()})
	svc := newTestService(store)

	// Unparseable tail restarts the counter; the existence re-check keeps
	// the candidate collision-free.
	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatSequential, 7))
	require.NoError(t, err)
	assert.Equal(t, "ORD-007-0001", res.Number)
	assert.Equal(t, int64(1), res.Sequence)
}

// --- Random formats ---

func TestGenerate_RandomNumeric(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatRandomNumeric, 7))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-007-\d{6}$`), res.Number)
	assert.Equal(t, int64(0), res.Sequence)
}

func TestGenerate_Random_Alphanumeric(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatRandom, 7))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-007-[A-Z0-9]{6}$`), res.Number)
}

func TestGenerate_CompactNumeric(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatCompactNumeric, 7))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD007\d{5}$`), res.Number)
	assert.NotContains(t, res.Number, "-")
}

func TestGenerate_Hybrid(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	svc.now = func() time.Time { return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) }

	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatHybrid, 7))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-007-20250115-[A-Z0-9]{4}$`), res.Number)
	assert.Equal(t, int64(0), res.Sequence)
}

func TestGenerate_ConcurrentRandomAllocationsAreUnique(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()
	cfg := corenum.DefaultConfig(corenum.FormatRandom, 7)

	const n = 50
	var wg sync.WaitGroup
	numbers := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Generate(ctx, cfg)
			if err != nil {
				t.Error(err)
				return
			}
			persist(store, res, 7)
			numbers <- res.Number
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, n)
	for num := range numbers {
		assert.False(t, seen[num], "duplicate number %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

// --- Retry discipline ---

func TestGenerate_Sequential_AbsorbsTransientCollisions(t *testing.T) {
	store := newMemStore()
	store.forcedCollisions = 2 // first two attempts collide, third succeeds
	svc := newTestService(store)

	res, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatSequential, 7))
	require.NoError(t, err)
	assert.Equal(t, "ORD-007-0001", res.Number)
}

func TestGenerate_Sequential_ExhaustsRetries(t *testing.T) {
	store := newMemStore()
	store.forcedCollisions = 100 // every attempt collides
	svc := newTestService(store)

	_, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatSequential, 7))
	require.Error(t, err)
	assert.True(t, apperror.IsNumberExhausted(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, sequenceMaxAttempts, appErr.Details["attempts"])
	assert.Equal(t, sequenceMaxAttempts, store.existsCalls)
}

func TestGenerate_Random_ExhaustsRetries(t *testing.T) {
	store := newMemStore()
	store.forcedCollisions = 100
	svc := newTestService(store)

	_, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatRandom, 7))
	require.Error(t, err)
	assert.True(t, apperror.IsNumberExhausted(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, randomMaxAttempts, appErr.Details["attempts"])
}

func TestGenerate_Hybrid_RetriesAreBounded(t *testing.T) {
	store := newMemStore()
	store.forcedCollisions = 100
	svc := newTestService(store)

	_, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatHybrid, 7))
	require.Error(t, err)
	assert.True(t, apperror.IsNumberExhausted(err))
	// Hybrid must not retry forever: same budget as the other random formats.
	assert.Equal(t, randomMaxAttempts, store.existsCalls)
}

// --- Fatal preconditions ---

func TestGenerate_UnknownOutletFailsFast(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.Generate(context.Background(), corenum.DefaultConfig(corenum.FormatSequential, 99))
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	// No candidate generation, no store access.
	assert.Equal(t, 0, store.existsCalls)
}

func TestGenerate_InvalidConfigFailsBeforeStoreAccess(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	tests := []corenum.Config{
		{Format: "snowflake", OutletID: 7},
		{Format: corenum.FormatSequential, OutletID: 0},
		{Format: corenum.FormatRandom, OutletID: 7, RandomLength: -2},
	}
	for _, cfg := range tests {
		_, err := svc.Generate(context.Background(), cfg)
		require.Error(t, err, "config %+v", cfg)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
	assert.Equal(t, 0, store.existsCalls)
}

func TestGenerate_CancelledContextAbortsRetryLoop(t *testing.T) {
	store := newMemStore()
	store.forcedCollisions = 100
	svc := newTestService(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, corenum.DefaultConfig(corenum.FormatSequential, 7))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_SpecExample(t *testing.T) {
	// generate({format: sequential, outletId: 7, prefix: ORD,
	// sequenceLength: 4}) against an empty store.
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	cfg := corenum.Config{
		Format:         corenum.FormatSequential,
		OutletID:       7,
		Prefix:         "ORD",
		SequenceLength: 4,
	}

	res, err := svc.Generate(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, "ORD-007-0001", res.Number)
	require.Equal(t, int64(1), res.Sequence)
	persist(store, res, 7)

	res, err = svc.Generate(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, "ORD-007-0002", res.Number)
	require.Equal(t, int64(2), res.Sequence)
}

func TestGenerate_AllFormatsPassValidator(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	formats := []corenum.Format{
		corenum.FormatSequential,
		corenum.FormatDateBased,
		corenum.FormatRandom,
		corenum.FormatRandomNumeric,
		corenum.FormatCompactNumeric,
		corenum.FormatHybrid,
	}

	for _, f := range formats {
		t.Run(string(f), func(t *testing.T) {
			res, err := svc.Generate(ctx, corenum.DefaultConfig(f, 7))
			require.NoError(t, err)

			report := corenum.ValidateNumber(res.Number, "ORD")
			assert.True(t, report.Valid,
				fmt.Sprintf("%s failed validation: %v", res.Number, report.Errors))
		})
	}
}
