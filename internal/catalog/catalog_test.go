package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Equal(t, 3, c.Len())

	templates := c.Templates()
	assert.Equal(t, "template-react-ts", templates[0].Value)
	assert.Equal(t, "theabhipatel/template_react_ts", templates[0].Repo)
	assert.True(t, templates[0].Available)
	assert.False(t, templates[1].Available)
	assert.False(t, templates[2].Available)

	tpl, ok := c.Lookup("template-react-ts-dashboard")
	require.True(t, ok)
	assert.Equal(t, "React.js Dashboard with Shadcn (Auth setup)", tpl.Name)
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	templates := c.Templates()
	templates[0].Available = false

	tpl, ok := c.Lookup(templates[0].Value)
	require.True(t, ok)
	assert.True(t, tpl.Available, "mutating the returned slice must not change the catalog")
}

func TestLookup_Missing(t *testing.T) {
	t.Parallel()

	_, ok := Default().Lookup("template-vue")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		templates []Template
		wantErr   string
	}{
		"empty catalog": {
			templates: nil,
			wantErr:   "no templates",
		},
		"missing value": {
			templates: []Template{{Name: "A", Repo: "o/a"}},
			wantErr:   "has no value",
		},
		"missing repo": {
			templates: []Template{{Name: "A", Value: "a"}},
			wantErr:   "has no repo",
		},
		"duplicate value": {
			templates: []Template{
				{Name: "A", Value: "a", Repo: "o/a"},
				{Name: "B", Value: "a", Repo: "o/b"},
			},
			wantErr: "duplicate template value",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.templates)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
templates:
  - name: Vite
    value: vite
    repo: acme/vite
    description: Plain Vite
    available: true
`)
	c, err := Parse(data)
	require.NoError(t, err)
	tpl, ok := c.Lookup("vite")
	require.True(t, ok)
	assert.Equal(t, "acme/vite", tpl.Repo)

	_, err = Parse([]byte("templates: [unclosed"))
	assert.Error(t, err)
}
