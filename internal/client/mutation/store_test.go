package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testView struct {
	Items   map[string]int
	Version int
}

func cloneView(v testView) testView {
	c := testView{Version: v.Version}
	if v.Items != nil {
		c.Items = make(map[string]int, len(v.Items))
		for k, val := range v.Items {
			c.Items[k] = val
		}
	}
	return c
}

func newTestStore(items map[string]int) *Store[testView] {
	return NewStore(testView{Items: items}, WithClone(cloneView))
}

func setItem(id string, val int) func(testView) testView {
	return func(v testView) testView {
		v.Items[id] = val
		return v
	}
}

func TestStore_OptimisticApply(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	gen, err := s.Dispatch(OptimisticApply("a", setItem("a", 5)))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, 5, s.State().Items["a"])
	assert.True(t, s.Pending("a"))

	prior, ok := s.Prior("a")
	require.True(t, ok)
	assert.Equal(t, 1, prior.Items["a"])
}

func TestStore_SecondOptimisticKeepsFirstPrior(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 5)))
	require.NoError(t, err)
	_, err = s.Dispatch(OptimisticApply("a", setItem("a", 9)))
	require.NoError(t, err)

	prior, ok := s.Prior("a")
	require.True(t, ok)
	assert.Equal(t, 1, prior.Items["a"])
	assert.Equal(t, 9, s.State().Items["a"])
}

func TestStore_AuthoritativeReplaceSettlesEntity(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1, "b": 1})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 2)))
	require.NoError(t, err)
	_, err = s.Dispatch(OptimisticApply("b", setItem("b", 2)))
	require.NoError(t, err)

	_, err = s.Dispatch(AuthoritativeReplace("a", testView{Items: map[string]int{"a": 3, "b": 1}, Version: 7}))
	require.NoError(t, err)

	assert.False(t, s.Pending("a"))
	assert.True(t, s.Pending("b"))
	assert.Equal(t, 7, s.State().Version)
}

func TestStore_Forget(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 2)))
	require.NoError(t, err)
	gen := s.Generation()

	s.Forget("a")

	assert.False(t, s.Pending("a"))
	_, ok := s.Prior("a")
	assert.False(t, ok)
	assert.Equal(t, 2, s.State().Items["a"])
	assert.Equal(t, gen, s.Generation())
}

func TestStore_FullReplaceSettlesAll(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1, "b": 1})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 2)))
	require.NoError(t, err)
	_, err = s.Dispatch(OptimisticApply("b", setItem("b", 2)))
	require.NoError(t, err)

	_, err = s.Dispatch(AuthoritativeReplace("", testView{Items: map[string]int{}}))
	require.NoError(t, err)

	assert.False(t, s.Pending("a"))
	assert.False(t, s.Pending("b"))
}

func TestStore_Rollback(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 100)))
	require.NoError(t, err)

	gen, err := s.Dispatch(Rollback("a", testView{Items: map[string]int{"a": 1}}))
	require.NoError(t, err)

	assert.Equal(t, uint64(2), gen)
	assert.Equal(t, 1, s.State().Items["a"])
	assert.False(t, s.Pending("a"))
	_, ok := s.Prior("a")
	assert.False(t, ok)
}

func TestStore_NilPatch(t *testing.T) {
	s := newTestStore(map[string]int{})

	_, err := s.Dispatch(OptimisticApply[testView]("a", nil))
	require.Error(t, err)
	assert.Equal(t, uint64(0), s.Generation())
}

func TestStore_UnknownAction(t *testing.T) {
	s := newTestStore(map[string]int{})

	_, err := s.Dispatch(Action[testView]{Kind: ActionKind(42)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown(42)")
}

func TestStore_StateIsIsolated(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	snapshot := s.State()
	snapshot.Items["a"] = 999

	assert.Equal(t, 1, s.State().Items["a"])
}

func TestStore_PatchDoesNotTouchPrior(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 2)))
	require.NoError(t, err)

	prior, _ := s.Prior("a")
	assert.Equal(t, 1, prior.Items["a"])
}

func TestStore_Subscribe(t *testing.T) {
	s := newTestStore(map[string]int{"a": 1})

	var changes []Change[testView]
	s.Subscribe(func(c Change[testView]) {
		changes = append(changes, c)
	})

	_, err := s.Dispatch(OptimisticApply("a", setItem("a", 2)))
	require.NoError(t, err)
	_, err = s.Dispatch(AuthoritativeReplace("a", testView{Items: map[string]int{"a": 3}}))
	require.NoError(t, err)

	require.Len(t, changes, 2)
	assert.Equal(t, ActionOptimisticApply, changes[0].Kind)
	assert.False(t, changes[0].Authoritative())
	assert.Equal(t, uint64(1), changes[0].Generation)
	assert.Equal(t, 2, changes[0].State.Items["a"])

	assert.Equal(t, ActionAuthoritativeReplace, changes[1].Kind)
	assert.True(t, changes[1].Authoritative())
	assert.Equal(t, uint64(2), changes[1].Generation)
	assert.Equal(t, "a", changes[1].EntityID)
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "optimistic_apply", ActionOptimisticApply.String())
	assert.Equal(t, "authoritative_replace", ActionAuthoritativeReplace.String())
	assert.Equal(t, "rollback", ActionRollback.String())
}
