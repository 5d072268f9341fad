package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0))
	assert.Equal(t, 20, ClampLimit(-5))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, 200, ClampLimit(5000))
}

func TestSimulationRecord_BSONLayout(t *testing.T) {
	record := models.SimulationRecord{
		ID:         "abc",
		ScenarioID: "scenario-1",
		Result: models.SimulationResult{
			BreedKey:        "saanen",
			ManagementLevel: models.ManagementMedium,
			CompositionMass: models.CompositionMass{FatKg: 36.05},
		},
	}

	raw, err := bson.Marshal(record)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "abc", doc["_id"])
	result, ok := doc["result"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "saanen", result["breed_key"])
	assert.Equal(t, "medium", result["management_level"])
	// Composition mass is flattened into the result document so it can be queried directly.
	assert.Equal(t, 36.05, result["fat_kg"])
}
