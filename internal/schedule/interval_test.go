package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2030, 1, 7, h, m, 0, 0, time.UTC)
}

func iv(sh, sm, eh, em int) Interval {
	return Interval{Start: at(sh, sm), End: at(eh, em)}
}

func TestOverlapsIsStrict(t *testing.T) {
	// encostar não conflita: [09:00,10:00) e [10:00,11:00)
	assert.False(t, iv(9, 0, 10, 0).Overlaps(iv(10, 0, 11, 0)))
	assert.False(t, iv(10, 0, 11, 0).Overlaps(iv(9, 0, 10, 0)))

	assert.True(t, iv(9, 0, 10, 0).Overlaps(iv(9, 30, 10, 30)))
	assert.True(t, iv(9, 0, 12, 0).Overlaps(iv(10, 0, 11, 0)))
	assert.True(t, iv(10, 0, 11, 0).Overlaps(iv(9, 0, 12, 0)))
}

func TestContains(t *testing.T) {
	window := iv(9, 0, 12, 0)

	assert.True(t, window.Contains(iv(9, 0, 12, 0)))
	assert.True(t, window.Contains(iv(10, 0, 10, 30)))
	assert.False(t, window.Contains(iv(8, 30, 9, 30)))
	assert.False(t, window.Contains(iv(11, 30, 12, 30)))
}

func TestSubtract(t *testing.T) {
	base := iv(9, 0, 12, 0)

	t.Run("sem sobreposicao devolve o original", func(t *testing.T) {
		out := base.Subtract(iv(13, 0, 14, 0))
		require.Len(t, out, 1)
		assert.Equal(t, base, out[0])
	})

	t.Run("exclusao cobre tudo devolve vazio", func(t *testing.T) {
		assert.Empty(t, base.Subtract(iv(8, 0, 13, 0)))
	})

	t.Run("corte no inicio", func(t *testing.T) {
		out := base.Subtract(iv(8, 0, 10, 0))
		require.Len(t, out, 1)
		assert.Equal(t, iv(10, 0, 12, 0), out[0])
	})

	t.Run("corte no fim", func(t *testing.T) {
		out := base.Subtract(iv(11, 0, 13, 0))
		require.Len(t, out, 1)
		assert.Equal(t, iv(9, 0, 11, 0), out[0])
	})

	t.Run("exclusao no meio devolve dois pedacos", func(t *testing.T) {
		out := base.Subtract(iv(10, 0, 10, 30))
		require.Len(t, out, 2)
		assert.Equal(t, iv(9, 0, 10, 0), out[0])
		assert.Equal(t, iv(10, 30, 12, 0), out[1])
	})
}

func TestSubtractAll(t *testing.T) {
	open := []Interval{iv(9, 0, 12, 0), iv(13, 0, 18, 0)}
	exclusions := []Interval{
		iv(10, 0, 10, 30),
		iv(10, 15, 11, 0), // sobrepõe a exclusão anterior
		iv(17, 0, 19, 0),  // atravessa o fim do expediente
	}

	out := SubtractAll(open, exclusions)

	require.Equal(t, []Interval{
		iv(9, 0, 10, 0),
		iv(11, 0, 12, 0),
		iv(13, 0, 17, 0),
	}, out)

	// resultado disjunto, crescente e sem duração zero
	for i, piece := range out {
		assert.False(t, piece.IsZero())
		for _, ex := range exclusions {
			assert.False(t, piece.Overlaps(ex))
		}
		if i > 0 {
			assert.False(t, piece.Start.Before(out[i-1].End))
		}
	}
}

func TestSubtractAllIgnoresZeroLength(t *testing.T) {
	open := []Interval{iv(9, 0, 12, 0), iv(14, 0, 14, 0)}
	out := SubtractAll(open, []Interval{iv(10, 0, 10, 0)})

	require.Len(t, out, 1)
	assert.Equal(t, iv(9, 0, 12, 0), out[0])
}
