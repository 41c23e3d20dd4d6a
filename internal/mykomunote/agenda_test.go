package mykomunote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesFromRows(t *testing.T) {
	// Arrange
	client := NewClient(Config{ObligatoryClass: "fa-star"})
	payload := `[
		{
			"INTITULE": "<b>Anatomie</b>",
			"TYPE_COURS": "CM - ",
			"UE_CODE": "UE : 04.01",
			"UE_LIBE": "Sciences biologiques",
			"GROUPE": "Gpe : Gr B",
			"MEMBRE_PERSO": "Formateur(s) : Mme Dupont",
			"title": "<span><i class=\"fa-star\"></i>Anatomie</span>",
			"start": "2026-09-01T09:00:00",
			"end": "2026-09-01T11:00:00"
		},
		"not a dictionary",
		{
			"INTITULE": "Sans horaire",
			"start": "when?",
			"end": "2026-09-01T11:00:00"
		}
	]`
	var raw []any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	// Act
	entries := client.entriesFromRows(raw, time.UTC)

	// Assert: the two malformed rows are skipped, not fatal
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Anatomie", entry.Title)
	assert.Equal(t, "CM", entry.TypeLabel)
	assert.Equal(t, "UE : 04.01", entry.UECode)
	assert.Equal(t, "B", entry.Group)
	assert.Equal(t, "Mme Dupont", entry.Trainers)
	assert.True(t, entry.Obligatory)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), entry.Start)
}

func TestFetchAgenda(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "agenda/module", r.Form.Get("sCheminVersFichier"))
		assert.Equal(t, "true", r.Form.Get("bEstUneClasse"))
		assert.NotEmpty(t, r.Form.Get("startDate"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"INTITULE": "Anatomie", "start": "2026-09-01T09:00:00", "end": "2026-09-01T11:00:00"}]`))
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL:      server.URL,
		APIEndpoint:  "api",
		ModuleAgenda: "agenda/module",
		ActionAgenda: "charger",
	})

	// Act
	entries, err := client.FetchAgenda(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		time.UTC,
	)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Anatomie", entries[0].Title)
}

func TestFetchAgendaRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIEndpoint: "api"})

	_, err := client.FetchAgenda(time.Now(), time.Now(), time.UTC)
	assert.Error(t, err)
}
