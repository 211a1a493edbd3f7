package outcome

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	r := Map(Success(2), func(v int) string { return strconv.Itoa(v * 10) })
	assert.True(t, r.Equals(Success("20")))

	f := Map(Failure[int](errBoom), func(v int) string { return "never" })
	assert.True(t, f.Equals(Failure[string](errBoom)))
}

func TestMap_FunctorLaws(t *testing.T) {
	t.Parallel()

	id := func(v int) int { return v }
	double := func(v int) int { return v * 2 }
	inc := func(v int) int { return v + 1 }

	for _, r := range []Outcome[int]{Success(3), Failure[int](errBoom)} {
		assert.True(t, Map(r, id).Equals(r))
		assert.True(t, Map(Map(r, double), inc).Equals(
			Map(r, func(v int) int { return inc(double(v)) })))
	}
}

func TestThen(t *testing.T) {
	t.Parallel()

	half := func(v int) Outcome[int] {
		if v%2 != 0 {
			return Failure[int](errors.New("odd"))
		}
		return Success(v / 2)
	}

	// monad identity: Success(v).chain(f) == f(v)
	assert.True(t, Then(Success(8), half).Equals(half(8)))
	assert.True(t, Then(Success(3), half).Equals(half(3)))

	// left zero: a failure never reaches f
	called := false
	f := Then(Failure[int](errBoom), func(v int) Outcome[int] {
		called = true
		return Success(v)
	})
	assert.True(t, f.Equals(Failure[int](errBoom)))
	assert.False(t, called)
}

func TestBiMap(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return errors.Join(errors.New("ctx"), err) }
	show := func(v int) string { return strconv.Itoa(v) }

	assert.True(t, BiMap(Success(4), wrap, show).Equals(Success("4")))
	assert.ErrorIs(t, BiMap(Failure[int](errBoom), wrap, show).Err(), errBoom)
}

func TestApply(t *testing.T) {
	t.Parallel()

	inc := func(v int) int { return v + 1 }
	errFn := errors.New("fn")

	r := Apply(Success(1), Success(inc))
	assert.True(t, r.Equals(Success(2)))

	// the function side's failure wins even when the value side also failed
	assert.Equal(t, errFn, Apply(Success(1), Failure[func(int) int](errFn)).Err())
	assert.Equal(t, errFn, Apply(Failure[int](errBoom), Failure[func(int) int](errFn)).Err())
	assert.Equal(t, errBoom, Apply(Failure[int](errBoom), Success(inc)).Err())
}

func TestExtend(t *testing.T) {
	t.Parallel()

	sum := func(r Outcome[int]) int { return r.Value() + 10 }

	assert.True(t, Extend(Success(1), sum).Equals(Success(11)))
	assert.True(t, Extend(Failure[int](errBoom), sum).Equals(Failure[int](errBoom)))
}

func TestReduce(t *testing.T) {
	t.Parallel()

	add := func(acc int, v int) int { return acc + v }

	assert.Equal(t, 7, Reduce(Success(5), add, 2))
	assert.Equal(t, 2, Reduce(Failure[int](errBoom), add, 2))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	report := func(r Outcome[int]) string {
		return Match(r,
			func(err error) string { return "err: " + err.Error() },
			func(v int) string { return "ok: " + strconv.Itoa(v) })
	}

	assert.Equal(t, "ok: 2", report(Success(2)))
	assert.Equal(t, "err: boom", report(Failure[int](errBoom)))

	all := MatchAny(Success(2), func(r Outcome[int]) bool { return r.IsSuccess() })
	assert.True(t, all)
}

func TestMaybeRoundTrip(t *testing.T) {
	t.Parallel()

	m := Success(6).Maybe()
	require.True(t, m.IsPresent())
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	assert.True(t, Failure[int](errBoom).Maybe().IsEmpty())
	assert.True(t, Success(6).ErrMaybe().IsEmpty())

	em := Failure[int](errBoom).ErrMaybe()
	require.True(t, em.IsPresent())
	assert.Equal(t, errBoom, em.OrElse(nil))

	back := FromMaybe(m, errBoom)
	assert.True(t, back.Equals(Success(6)))
	assert.Equal(t, errBoom, FromMaybe(Failure[int](errBoom).Maybe(), errBoom).Err())
}
