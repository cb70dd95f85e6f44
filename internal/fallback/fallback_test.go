package fallback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"zenhealing/internal/domain"
)

// The fallback datasets stand in for live backend responses, so a JSON
// round-trip through the domain types must be lossless: any field-name drift
// between fallback and schema shows up here.
func TestStructuralSyncWithDomainTypes(t *testing.T) {
	t.Run("doctors", func(t *testing.T) {
		original := Doctors()
		blob, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded []domain.Doctor
		require.NoError(t, json.Unmarshal(blob, &decoded))
		require.Equal(t, original, decoded)
	})

	t.Run("articles", func(t *testing.T) {
		original := Articles()
		blob, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded []domain.Article
		require.NoError(t, json.Unmarshal(blob, &decoded))
		require.Equal(t, original, decoded)
	})

	t.Run("specialities", func(t *testing.T) {
		original := Specialities()
		blob, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded []domain.Speciality
		require.NoError(t, json.Unmarshal(blob, &decoded))
		require.Equal(t, original, decoded)
	})
}

func TestDatasetsAreNonEmpty(t *testing.T) {
	require.NotEmpty(t, Specialities())
	require.NotEmpty(t, Locations())
	require.NotEmpty(t, Symptoms())
	require.NotEmpty(t, Doctors())
	require.NotEmpty(t, Articles())
}

func TestDoctorsReferenceKnownLookups(t *testing.T) {
	specIDs := map[int64]bool{}
	for _, s := range Specialities() {
		specIDs[s.ID] = true
	}
	locIDs := map[int64]bool{}
	for _, l := range Locations() {
		locIDs[l.ID] = true
	}
	symIDs := map[int64]bool{}
	for _, s := range Symptoms() {
		symIDs[s.ID] = true
	}

	for _, d := range Doctors() {
		require.True(t, specIDs[d.SpecialityID], "doctor %d has unknown speciality", d.ID)
		require.True(t, locIDs[d.LocationID], "doctor %d has unknown location", d.ID)
		for _, sym := range d.Symptoms {
			require.True(t, symIDs[sym], "doctor %d has unknown symptom %d", d.ID, sym)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := Doctors()
	a[0].Name = "mutated"
	a[0].Symptoms[0] = 999

	b := Doctors()
	require.Equal(t, "Dr. John Smith", b[0].Name)
	require.Equal(t, int64(1), b[0].Symptoms[0])
}
