package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	tests := []struct {
		name    string
		zones   []Zone
		wantErr string
	}{
		{
			name:  "unique names",
			zones: []Zone{{Name: "global"}, {Name: "header"}, {Name: "items"}},
		},
		{
			name:  "empty collection",
			zones: nil,
		},
		{
			name:    "duplicate name",
			zones:   []Zone{{Name: "header"}, {Name: "header"}},
			wantErr: `duplicate zone name "header"`,
		},
		{
			name:    "empty name",
			zones:   []Zone{{Name: ""}},
			wantErr: "zone with empty name",
		},
		{
			name:  "case-sensitive names are otherwise distinct",
			zones: []Zone{{Name: "header"}, {Name: "Header"}},
		},
		{
			// The reserved name is consumed case-insensitively by the
			// merge, so a second casing variant could never be processed.
			name:    "reserved name rejected in any second casing",
			zones:   []Zone{{Name: "global"}, {Name: "GLOBAL"}},
			wantErr: `zone "GLOBAL": reserved name "global" may appear at most once`,
		},
		{
			name:    "reserved name rejected across mixed casings",
			zones:   []Zone{{Name: "Global"}, {Name: "gLoBaL"}},
			wantErr: `reserved name "global" may appear at most once`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCollection(tt.zones)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Zones, len(tt.zones))
		})
	}
}

func TestCollectionZone(t *testing.T) {
	c, err := NewCollection([]Zone{
		{Name: "header", Keys: map[string]string{"title": "Hi"}},
		{Name: "footer"},
	})
	require.NoError(t, err)

	z := c.Zone("header")
	require.NotNil(t, z)
	assert.Equal(t, "Hi", z.Keys["title"])

	assert.Nil(t, c.Zone("Header"), "lookup is case-sensitive")
	assert.Nil(t, c.Zone("missing"))
}

func TestCollectionGlobal(t *testing.T) {
	c, err := NewCollection([]Zone{
		{Name: "header"},
		{Name: "GLOBAL", Keys: map[string]string{"name": "World"}},
	})
	require.NoError(t, err)

	g := c.Global()
	require.NotNil(t, g, "reserved name matches case-insensitively")
	assert.Equal(t, "World", g.Keys["name"])
	assert.True(t, g.IsGlobal())

	empty, err := NewCollection([]Zone{{Name: "header"}})
	require.NoError(t, err)
	assert.Nil(t, empty.Global())
}
