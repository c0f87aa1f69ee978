package scaffold

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ariel-frischer/create-tap-react/internal/catalog"
	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comingSoon = "This template is coming soon and not available yet!"

func TestTemplateOption(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tmpl      catalog.Template
		wantLabel string
	}{
		"available": {
			tmpl:      catalog.Template{Name: "Basic", Value: "basic", Description: "Plain setup", Available: true},
			wantLabel: "Basic - Plain setup",
		},
		"coming soon": {
			tmpl:      catalog.Template{Name: "Auth", Value: "auth", Description: "With login"},
			wantLabel: "Auth - Coming Soon - With login",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opt := TemplateOption(tt.tmpl)
			assert.Equal(t, tt.wantLabel, opt.Label)
			assert.Equal(t, tt.tmpl.Value, opt.Value)
			assert.Equal(t, tt.tmpl.Name, opt.Short)
		})
	}
}

func TestSelectTemplate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input        string
		wantValue    string
		wantWarnings int
		wantErr      error
	}{
		"available on first try": {
			input:     "1\n",
			wantValue: "template-react-ts",
		},
		"empty answer picks first": {
			input:     "\n",
			wantValue: "template-react-ts",
		},
		"unavailable then available": {
			input:        "2\n1\n",
			wantValue:    "template-react-ts",
			wantWarnings: 1,
		},
		"two unavailable picks": {
			input:        "3\n2\n1\n",
			wantValue:    "template-react-ts",
			wantWarnings: 2,
		},
		"input closed": {
			input:   "",
			wantErr: prompt.ErrInterrupted,
		},
		"input closed after unavailable pick": {
			input:        "2\n",
			wantWarnings: 1,
			wantErr:      prompt.ErrInterrupted,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := prompt.NewLine(strings.NewReader(tt.input), &out)

			got, err := SelectTemplate(context.Background(), p, catalog.Default(), &out)
			assert.Equal(t, tt.wantWarnings, strings.Count(out.String(), comingSoon))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.True(t, got.Available)
		})
	}
}

func TestSelectTemplate_RetriesWithoutLimit(t *testing.T) {
	t.Parallel()

	selects := make([]string, 0, 1001)
	for range 1000 {
		selects = append(selects, "template-react-ts-auth")
	}
	selects = append(selects, "template-react-ts")
	p := &scriptedPrompter{selects: selects}

	var out bytes.Buffer
	got, err := SelectTemplate(context.Background(), p, catalog.Default(), &out)
	require.NoError(t, err)
	assert.Equal(t, "template-react-ts", got.Value)
	assert.Equal(t, 1001, p.selectCalls)
	assert.Equal(t, 1000, strings.Count(out.String(), comingSoon))
}

func TestSelectTemplate_UnknownValue(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{selects: []string{"template-vue"}}

	_, err := SelectTemplate(context.Background(), p, catalog.Default(), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, clierrors.IsCategory(err, clierrors.Selection))
	assert.Contains(t, err.Error(), "template-vue")
}
