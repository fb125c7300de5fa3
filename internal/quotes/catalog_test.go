package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posilife/posilife/internal/model"
)

func TestEveryAgendaHasQuotes(t *testing.T) {
	c := NewCatalog()
	for _, a := range model.Agendas {
		pool := c.ForAgenda(a)
		assert.NotEmpty(t, pool, "agenda %s has no quotes", a)
		for _, q := range pool {
			assert.Equal(t, a, q.Category)
			assert.NotEmpty(t, q.Text)
			assert.NotEmpty(t, q.Author)
		}
	}
}

func TestRandomForAgenda(t *testing.T) {
	c := NewCatalog()
	q, ok := c.RandomForAgenda(model.AgendaHealth)
	require.True(t, ok)
	assert.Equal(t, model.AgendaHealth, q.Category)
}

func TestForToday(t *testing.T) {
	c := NewCatalog()

	got := c.ForToday(model.AgendaStudy, 3)
	require.Len(t, got, 3)
	seen := make(map[string]bool)
	for _, q := range got {
		assert.Equal(t, model.AgendaStudy, q.Category)
		assert.False(t, seen[q.Text], "duplicate quote %q", q.Text)
		seen[q.Text] = true
	}

	// Asking for more than the pool holds returns the whole pool.
	all := c.ForToday(model.AgendaStudy, 100)
	assert.Len(t, all, len(c.ForAgenda(model.AgendaStudy)))

	assert.Empty(t, c.ForToday(model.AgendaStudy, 0))
}

func TestAllReturnsCopy(t *testing.T) {
	c := NewCatalog()
	all := c.All()
	require.NotEmpty(t, all)
	all[0].Text = "mutated"
	assert.NotEqual(t, "mutated", c.All()[0].Text)
}
