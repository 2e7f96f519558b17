package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("RESTAURANT_NAME", "Spice Route")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "Spice Route", cfg.RestaurantName)
	assert.Equal(t, "data/sample_bills.json", cfg.ReceiptLogPath)
	assert.Equal(t, "data/sales_report.csv", cfg.ReportExportPath)
}

func TestLocation(t *testing.T) {
	loc, err := (&Config{Timezone: "Local"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&Config{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&Config{Timezone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}
