package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`[]`, `"x"`, `12`, `null`, ``, `{bad`} {
		_, ok := ParseRecord([]byte(raw))
		assert.False(t, ok, raw)
	}
	_, ok := ParseRecord([]byte(` {"a":1}`))
	assert.True(t, ok)
}

func TestRecordAliases(t *testing.T) {
	r, ok := ParseRecord([]byte(`{
		"symbol": "PEPE",
		"token": "  ",
		"confidence": "87.5",
		"chain": null,
		"rank": 3,
		"details": {"price_usd": 0.5, "name": "Pepe", "reasons": ["volume spike"]},
		"created_at": "2024-10-10T10:10:10Z",
		"seen": 1728555010
	}`))
	require.True(t, ok)

	assert.Equal(t, "PEPE", r.Str("", "token", "symbol"))
	assert.Equal(t, "multi", r.Str("multi", "chain", "network"))
	assert.Equal(t, "3", r.Str("", "rank"))

	score, ok := r.Num("score", "confidence")
	assert.True(t, ok)
	assert.Equal(t, 87.5, score)
	assert.Equal(t, 0.0, r.NumOr(0, "score"))
	assert.Equal(t, 3, r.IntOr(0, "rank"))

	assert.Equal(t, 0.5, r.NumOr(0, "price", "details.price_usd"))
	assert.Equal(t, "Pepe", r.Str("", "details.name"))
	assert.Equal(t, []string{"volume spike"}, r.Strings("details.reasons"))

	created, ok := r.Time("created_at")
	require.True(t, ok)
	assert.Equal(t, 2024, created.Year())

	seen, ok := r.Time("missing", "seen")
	require.True(t, ok)
	assert.Equal(t, time.Unix(1728555010, 0).Unix(), seen.Unix())

	assert.True(t, r.Has("chain", "rank"))
	assert.False(t, r.Has("chain"))
}

func TestRecordObjects(t *testing.T) {
	r, ok := ParseRecord([]byte(`{"data":[{"value":"40"}, 7, {"value":"35"}]}`))
	require.True(t, ok)
	items := r.Objects("data")
	require.Len(t, items, 2)
	assert.Equal(t, 35, items[1].IntOr(50, "value"))
	assert.Nil(t, r.Objects("missing"))
}
