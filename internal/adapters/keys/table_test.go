package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stoplight/internal/domain"
)

func TestTable_RegisterAndUnregister(t *testing.T) {
	table := NewTable()
	c := domain.MustParseCombo("Alt+G")

	require.NoError(t, table.Register(c))
	assert.True(t, table.IsRegistered(c))
	assert.Equal(t, []domain.Combo{c}, table.Registered())

	require.NoError(t, table.Unregister(c))
	assert.False(t, table.IsRegistered(c))
	assert.NoError(t, table.Unregister(c))
}

func TestTable_RejectsDoubleRegistration(t *testing.T) {
	table := NewTable()
	c := domain.MustParseCombo("Alt+G")
	require.NoError(t, table.Register(c))

	assert.ErrorIs(t, table.Register(c), domain.ErrKeyUnavailable)
}

func TestTable_RejectsReserved(t *testing.T) {
	table := NewTable()
	table.Reserve(domain.MustParseCombo("Q"), "quit")

	err := table.Register(domain.MustParseCombo("q"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrKeyUnavailable)
	assert.Contains(t, err.Error(), "quit")
}

func TestTable_RejectsUndeliverable(t *testing.T) {
	tests := []string{"Cmd+G", "Ctrl+Shift+G", "Super+F1"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			err := NewTable().Register(domain.MustParseCombo(input))
			assert.ErrorIs(t, err, domain.ErrKeyUnavailable)
		})
	}
}

func TestTable_RegisteredIsSorted(t *testing.T) {
	table := NewTable()
	for _, s := range []string{"Alt+S", "Alt+A", "F2"} {
		require.NoError(t, table.Register(domain.MustParseCombo(s)))
	}

	var names []string
	for _, c := range table.Registered() {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"Alt+A", "Alt+S", "F2"}, names)
}
