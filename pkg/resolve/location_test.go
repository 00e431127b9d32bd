package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Diavel78/product-trainer/pkg/inventory"
	"github.com/Diavel78/product-trainer/pkg/resolve"
)

func TestLocationResolver(t *testing.T) {
	resolver := resolve.NewLocationResolver(resolve.DefaultLocationConfig())

	tests := []struct {
		name     string
		location string
		tags     []string
		url      string
		want     inventory.Store
	}{
		{
			name:     "explicit field canonical spelling",
			location: "Bullhead City",
			want:     inventory.StoreBullheadCity,
		},
		{
			name:     "explicit field short spelling",
			location: "Anderson Bullhead",
			want:     inventory.StoreBullheadCity,
		},
		{
			name:     "explicit field alias",
			location: "AZ West",
			want:     inventory.StoreSouthLakeHavasu,
		},
		{
			name:     "explicit field case insensitive",
			location: "PARKER, az",
			want:     inventory.StoreParker,
		},
		{
			name:     "explicit match wins over conflicting url",
			location: "Reno",
			url:      "https://www.andersonpowersportsparker.com/inventory/x",
			want:     inventory.StoreReno,
		},
		{
			name: "url domain match",
			url:  "https://www.andersonpowersportshavasu.com/inventory/2024-rzr",
			want: inventory.StoreNorthLakeHavasu,
		},
		{
			name: "url beats tags",
			tags: []string{"powersports", "reno"},
			url:  "https://andersonazwestallsports.com/unit/1",
			want: inventory.StoreSouthLakeHavasu,
		},
		{
			name: "tags match when url unknown",
			tags: []string{"new-arrivals", "North Lake Havasu"},
			url:  "https://example.com/unit/1",
			want: inventory.StoreNorthLakeHavasu,
		},
		{
			name:     "unmatched explicit field falls through to url",
			location: "Somewhere Else",
			url:      "https://andersonpowersportsreno.com/unit/9",
			want:     inventory.StoreReno,
		},
		{
			name: "nothing matches",
			url:  "https://example.com/unit/1",
			want: inventory.StoreUnassigned,
		},
		{
			name: "all inputs empty",
			want: inventory.StoreUnassigned,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.location, tt.tags, tt.url)
			assert.Equal(t, tt.want, got)

			// Resolution is idempotent over its own output label.
			assert.True(t, got.IsValid() || got == inventory.StoreUnassigned)
		})
	}
}

func TestLocationResolverFromURL(t *testing.T) {
	resolver := resolve.NewLocationResolver(resolve.DefaultLocationConfig())

	assert.Equal(t, inventory.StoreBullheadCity,
		resolver.FromURL("https://andersonpowersportsbullhead.com/u/1"))
	assert.Equal(t, inventory.StoreUnassigned, resolver.FromURL(""))
	assert.Equal(t, inventory.StoreUnassigned, resolver.FromURL("https://example.com"))
}

func TestLocationResolverCustomTable(t *testing.T) {
	config := resolve.LocationConfig{
		Rules: []resolve.StoreRule{
			{Store: inventory.Store("flagstaff"), Aliases: []string{"Flagstaff"}, Domains: []string{"flagstaffpowersports.com"}},
		},
	}
	resolver := resolve.NewLocationResolver(config)

	assert.Equal(t, inventory.Store("flagstaff"), resolver.Resolve("Flagstaff AZ", nil, ""))
	assert.Equal(t, inventory.Store("flagstaff"), resolver.Resolve("", nil, "https://flagstaffpowersports.com/u/2"))
	assert.Equal(t, inventory.StoreUnassigned, resolver.Resolve("Parker", nil, ""))
}
