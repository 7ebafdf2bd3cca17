package usecase

import (
	"testing"

	"GodSignal/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestFilterWhalesChains(t *testing.T) {
	txs := []models.WhaleTransaction{
		{Token: "PEPE", Chain: "ETH"},
		{Token: "WIF", Chain: "SOL"},
		{Token: "QUICK", Chain: "POLYGON"},
		{Token: "AERO", Chain: "BASE"},
	}

	tests := []struct {
		name  string
		chain string
		want  []string
	}{
		{"empty keeps all", "", []string{"PEPE", "WIF", "QUICK", "AERO"}},
		{"ALL keeps all", "ALL", []string{"PEPE", "WIF", "QUICK", "AERO"}},
		{"lowercase all", "all", []string{"PEPE", "WIF", "QUICK", "AERO"}},
		{"known chain", "SOL", []string{"WIF"}},
		{"chain outside built-in set", "POLYGON", []string{"QUICK"}},
		{"lowercase query", "polygon", []string{"QUICK"}},
		{"no match", "TRON", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, tx := range FilterWhales(txs, tt.chain) {
				got = append(got, tx.Token)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
