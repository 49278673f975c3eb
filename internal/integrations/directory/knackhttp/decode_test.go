package knackhttp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeScalar(t *testing.T) {
	require.Equal(t, "", decodeScalar(nil))
	require.Equal(t, "EN_TRANSITO", decodeScalar("EN_TRANSITO"))
	require.Equal(t, "EXPRESS", decodeScalar(map[string]any{"raw": "EXPRESS"}))
	require.Equal(t, "15/01/2025", decodeScalar(map[string]any{"formatted": "15/01/2025"}))
	require.Equal(t, "", decodeScalar(map[string]any{"raw": nil}))
	require.Equal(t, "", decodeScalar(map[string]any{"other": "x"}))
	require.Equal(t, "42", decodeScalar(float64(42)))
}

func TestDecodeAddress(t *testing.T) {
	require.Equal(t, "", decodeAddress(nil))
	require.Equal(t, "", decodeAddress("Cuernavaca"))
	require.Equal(t, "Cuernavaca, Morelos", decodeAddress(map[string]any{"city": "Cuernavaca", "state": "Morelos"}))
	require.Equal(t, "Cuernavaca", decodeAddress(map[string]any{"city": "Cuernavaca"}))
	require.Equal(t, "Morelos", decodeAddress(map[string]any{"state": "Morelos"}))
	require.Equal(t, "", decodeAddress(map[string]any{"street": "Av. San Diego 426"}))
}

func TestDecodeDate(t *testing.T) {
	require.Equal(t, "", decodeDate(nil))
	require.Equal(t, "15/01/2025", decodeDate("15/01/2025"))
	require.Equal(t, "15/01/2025", decodeDate(map[string]any{"date": "01/15/2025", "date_formatted": "15/01/2025"}))
	require.Equal(t, "01/15/2025", decodeDate(map[string]any{"date": "01/15/2025"}))
	require.Equal(t, "", decodeDate(map[string]any{"time": "10:00"}))
}
