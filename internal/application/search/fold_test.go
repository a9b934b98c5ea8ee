package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/search"
)

func TestPlier(t *testing.T) {
	cases := []struct {
		nom    string
		entree string
		veut   string
	}{
		{"accents français", "Électricité Générale", "electricite generale"},
		{"cédille", "Façade", "facade"},
		{"espaces de bordure", "  Boulangerie  ", "boulangerie"},
		{"déjà normalisé", "menuiserie", "menuiserie"},
		{"siren inchangé", "123456789", "123456789"},
		{"vide", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.nom, func(t *testing.T) {
			assert.Equal(t, tc.veut, search.Plier(tc.entree))
		})
	}
}
