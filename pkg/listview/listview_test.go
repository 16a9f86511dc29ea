package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomline/gridview/pkg/resolve"
	"github.com/fathomline/gridview/pkg/types"
)

// fakeBackend implements Lister and resolve.Fetcher over in-memory data.
type fakeBackend struct {
	mu         sync.Mutex
	collection []types.Record
	refs       map[string]map[string]types.Record
	failRefs   bool
	oneCalls   int
}

func (b *fakeBackend) List(ctx context.Context, resource string) ([]types.Record, int, error) {
	return b.collection, len(b.collection), nil
}

func (b *fakeBackend) FetchOne(ctx context.Context, resource, id string) (types.Record, error) {
	b.mu.Lock()
	b.oneCalls++
	b.mu.Unlock()
	if b.failRefs {
		return nil, errors.New("ref backend down")
	}
	rec, ok := b.refs[resource][id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return rec, nil
}

func (b *fakeBackend) FetchBatch(ctx context.Context, resource string, ids []string) ([]types.Record, error) {
	return nil, types.ErrBatchUnsupported
}

func orderSchema() types.Schema {
	return types.Schema{
		Resource: "orders",
		Fields: []types.FieldSpec{
			{Name: "id", Kind: types.FieldString, Sortable: true},
			{Name: "status", Kind: types.FieldString, Sortable: true},
			{Name: "createdAt", Kind: types.FieldDate, Sortable: true},
			{Name: "userId", Kind: types.FieldRef, Searchable: true, Sortable: true,
				Ref: &types.ReferenceSpec{SourceField: "userId", TargetResource: "users", DisplayField: "name"}},
		},
	}
}

func newTestView(b *fakeBackend) *ListView {
	cfg := types.Config{BaseURL: "http://test", PageSize: 10}
	return New(orderSchema(), b, b, cfg, nil)
}

func testBackend() *fakeBackend {
	return &fakeBackend{
		collection: []types.Record{
			{"id": "o1", "status": "PENDING", "createdAt": "2023-01-01", "userId": "u1"},
			{"id": "o2", "status": "SHIPPED", "createdAt": "2023-06-01", "userId": "u2"},
			{"id": "o3", "status": "SHIPPED", "createdAt": "2023-03-01", "userId": "u1"},
		},
		refs: map[string]map[string]types.Record{
			"users": {
				"u1": {"id": "u1", "name": "Alice Zhang"},
				"u2": {"id": "u2", "name": "Ben Okafor"},
			},
		},
	}
}

func TestListViewPageResolvesReferences(t *testing.T) {
	b := testBackend()
	v := newTestView(b)
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	result := v.Page(ctx)

	require.Len(t, result.Visible, 3)
	assert.Equal(t, 1, result.TotalPages)

	field, _ := v.Schema().Field("userId")
	assert.Equal(t, "Alice Zhang", v.Display(result.Visible[0], field))

	// Two distinct user ids across three records: two fetches, not three.
	assert.Equal(t, 2, b.oneCalls)
}

func TestListViewReferenceFailureDegradesToPlaceholder(t *testing.T) {
	b := testBackend()
	b.failRefs = true
	v := newTestView(b)
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	result := v.Page(ctx)

	require.Len(t, result.Visible, 3)
	field, _ := v.Schema().Field("userId")
	for _, rec := range result.Visible {
		assert.Equal(t, resolve.Placeholder, v.Display(rec, field))
	}
}

func TestListViewSettersResetPageIndex(t *testing.T) {
	v := newTestView(testBackend())

	tests := []struct {
		name   string
		mutate func()
	}{
		{name: "SetSearch", mutate: func() { v.SetSearch("x") }},
		{name: "SetFilter", mutate: func() { v.SetFilter("status", "SHIPPED") }},
		{name: "SetExpr", mutate: func() { v.SetExpr("total > 1") }},
		{name: "SetSort", mutate: func() { v.SetSort("createdAt", types.SortDesc) }},
		{name: "SetPageSize", mutate: func() { v.SetPageSize(5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetPage(3)
			require.Equal(t, 3, v.PageState().Index)
			tt.mutate()
			assert.Equal(t, 1, v.PageState().Index)
		})
	}
}

func TestListViewFilterAndSort(t *testing.T) {
	b := testBackend()
	v := newTestView(b)
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	v.SetFilter("status", "SHIPPED")
	v.SetSort("createdAt", types.SortDesc)
	result := v.Page(ctx)

	require.Len(t, result.Visible, 2)
	assert.Equal(t, "o2", result.Visible[0].ID())
	assert.Equal(t, "o3", result.Visible[1].ID())

	// Clearing the filter with the "all" sentinel restores the full set.
	v.SetFilter("status", types.PredicateAll)
	result = v.Page(ctx)
	assert.Len(t, result.Visible, 3)
}

func TestListViewSearchByResolvedName(t *testing.T) {
	b := testBackend()
	v := newTestView(b)
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	v.SetSearch("alice")
	result := v.Page(ctx)

	require.Len(t, result.Visible, 2)
	for _, rec := range result.Visible {
		uid, _ := rec.StringField("userId")
		assert.Equal(t, "u1", uid)
	}
}

func TestListViewRefreshPreservesResolvedReferences(t *testing.T) {
	b := testBackend()
	v := newTestView(b)
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	v.Page(ctx)
	require.Equal(t, 2, b.oneCalls)
	require.Equal(t, uint64(1), v.Generation())

	// Refresh the collection with one new record referencing a new user.
	b.mu.Lock()
	b.collection = append(b.collection, types.Record{"id": "o4", "userId": "u3"})
	b.refs["users"]["u3"] = types.Record{"id": "u3", "name": "Carla Duarte"}
	b.mu.Unlock()

	require.NoError(t, v.Load(ctx))
	require.Equal(t, uint64(2), v.Generation())
	v.Page(ctx)

	// Only the previously unseen id is fetched after the refresh.
	assert.Equal(t, 3, b.oneCalls)
}

func TestListViewPagination(t *testing.T) {
	b := &fakeBackend{}
	for i := 0; i < 25; i++ {
		b.collection = append(b.collection, types.Record{"id": fmt.Sprintf("o%02d", i)})
	}
	v := newTestView(b)
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	v.SetPage(3)
	result := v.Page(ctx)

	assert.Len(t, result.Visible, 5)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 25, result.Filtered)
}
