package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

func TestDirtyTracker(t *testing.T) {
	var d DirtyTracker
	assert.False(t, d.Any())

	d.Mark(FieldLoot)
	d.Mark(FieldCount)
	d.Mark(FieldCount)

	assert.True(t, d.Dirty(FieldCount))
	assert.False(t, d.Dirty(FieldText))
	assert.Equal(t, []Field{FieldCount, FieldLoot}, d.Fields())

	d.Reset()
	assert.False(t, d.Any())
	assert.Empty(t, d.Fields())

	assert.Equal(t, "count", FieldCount.String())
	assert.Equal(t, "field(0x80000000)", Field(1<<31).String())
}

func TestDiff(t *testing.T) {
	svc := newTestServices(t)
	it := persisted(newTestItem(t, svc, 1, tmplPotion))

	out, err := it.Diff()
	require.NoError(t, err)
	assert.Nil(t, out, "clean item")

	it.SetCount(nil, 7)
	it.SetText("hello")
	it.SetModifier(domain.ModifierBattlePetLevel, 12)

	out, err = it.Diff()
	require.NoError(t, err)

	var diff map[string]any
	require.NoError(t, msgpack.Unmarshal(out, &diff))
	assert.Len(t, diff, 3)
	assert.EqualValues(t, 7, diff["count"])
	assert.Equal(t, "hello", diff["text"])
	assert.Contains(t, diff, "modifiers")
	assert.False(t, it.Dirty().Any(), "diff consumes the tracker")
}
