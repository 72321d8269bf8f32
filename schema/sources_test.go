package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceMappingsCoverAllSources(t *testing.T) {
	assert.Len(t, SourceMappings, len(AllSourceTables))
	for i, m := range SourceMappings {
		assert.Equal(t, AllSourceTables[i], m.Table, "mapping order must match AllSourceTables")
	}
}

func TestSourceMappingsRequiredColumns(t *testing.T) {
	for _, m := range SourceMappings {
		// Every source must map the fields the unified view depends on.
		assert.NotEmpty(t, m.IncidentTime, "%s: incident time column", m.Table)
		assert.NotEmpty(t, m.IncidentType, "%s: incident type column", m.Table)
		assert.NotEmpty(t, m.Description, "%s: description column", m.Table)
		assert.NotEmpty(t, m.Address, "%s: address column", m.Table)
		assert.NotEmpty(t, m.Neighborhood, "%s: neighborhood column", m.Table)
	}
}

func TestSourceMappingsCoordinateCarriers(t *testing.T) {
	// Exactly three sources carry native coordinates; the rest project NULL.
	withCoords := map[SourceTable]bool{}
	for _, m := range SourceMappings {
		has := m.Latitude != "" && m.Longitude != ""
		withCoords[m.Table] = has
		// A source either has both coordinate columns or neither.
		assert.Equal(t, m.Latitude == "", m.Longitude == "", "%s: lat/lon must pair", m.Table)
	}
	assert.True(t, withCoords[SourceServiceRequests])
	assert.True(t, withCoords[SourceFireServiceCalls])
	assert.True(t, withCoords[SourcePoliceIncidents])
	assert.False(t, withCoords[SourceFireIncidents])
	assert.False(t, withCoords[SourceFireSafetyComplaints])
	assert.False(t, withCoords[SourceFireViolations])
}

func TestMappingFor(t *testing.T) {
	m, ok := MappingFor(SourcePoliceIncidents)
	assert.True(t, ok)
	assert.Equal(t, "timestamp", m.IncidentTime)
	assert.Equal(t, "pddistrict", m.Neighborhood)

	_, ok = MappingFor(SourceTable("bogus_table"))
	assert.False(t, ok)
}

func TestColumnLookup(t *testing.T) {
	m, _ := MappingFor(SourceFireIncidents)
	assert.Equal(t, "Incident Date", m.Column(FieldIncidentTime))
	assert.Equal(t, "Analysis Neighborhood", m.Column(FieldNeighborhood))
	assert.Empty(t, m.Column(FieldLatitude), "fire incidents have no native coordinates")
}
