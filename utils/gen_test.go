package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/steve-ongera/AgriLink/utils"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"Hass Avocado"}, "hass-avocado"},
		{[]string{"Hass Avocado", "Green Acres"}, "hass-avocado-green-acres"},
		{[]string{"Sukuma  Wiki!!"}, "sukuma-wiki"},
		{[]string{"maize/beans mix"}, "maize-beans-mix"},
		{[]string{"  "}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.Slugify(tt.in...))
	}
}

func TestNewSKU(t *testing.T) {
	sku := utils.NewSKU()
	assert.Regexp(t, regexp.MustCompile(`^FARM-[0-9A-F]{8}$`), sku)
	assert.NotEqual(t, sku, utils.NewSKU())
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2025, 8, 17, 12, 0, 0, 0, time.UTC)
	n := utils.NewOrderNumber(now)
	assert.Len(t, n, 16)
	assert.Regexp(t, regexp.MustCompile(`^AG20250817[0-9A-F]{6}$`), n)
	assert.NotEqual(t, n, utils.NewOrderNumber(now))
}
