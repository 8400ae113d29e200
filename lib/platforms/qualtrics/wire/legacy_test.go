package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReshapeLegacy(t *testing.T) {
	table := [][]string{
		{"ResponseID", "", "", "Finished"},
		{"Response ID", "What is your favorite color?", "", "Finished"},
		{"R_1", "blue", "ignored", "1"},
		{"R_2", "green", "ignored", "0"},
	}

	records := ReshapeLegacy(table)
	require.Equal(t, []map[string]string{
		{"ResponseID": "R_1", "Q2": "blue", "Finished": "1"},
		{"ResponseID": "R_2", "Q2": "green", "Finished": "0"},
	}, records)
}

func TestReshapeLegacyShortRows(t *testing.T) {
	table := [][]string{
		{"ResponseID", "Q1"},
		{"Response ID", "First question"},
		{"R_1"},
	}

	records := ReshapeLegacy(table)
	require.Equal(t, []map[string]string{
		{"ResponseID": "R_1"},
	}, records)
}

func TestReshapeLegacyNoData(t *testing.T) {
	require.Nil(t, ReshapeLegacy(nil))
	require.Nil(t, ReshapeLegacy([][]string{{"ResponseID"}}))

	records := ReshapeLegacy([][]string{
		{"ResponseID"},
		{"Response ID"},
	})
	require.Empty(t, records)
}
