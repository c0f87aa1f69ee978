package scaffold

import (
	"context"
	"fmt"
	"io"

	"github.com/ariel-frischer/create-tap-react/internal/catalog"
	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/fatih/color"
)

// SelectPageSize is the number of templates shown at once.
const SelectPageSize = 10

const selectMessage = "Select a template:"

// TemplateOption renders t as a list entry: cyan name, a red marker when the
// template is not available yet, and a gray description.
func TemplateOption(t catalog.Template) prompt.Option {
	label := color.CyanString(t.Name)
	if !t.Available {
		label += color.RedString(" - Coming Soon")
	}
	label += " - " + color.HiBlackString(t.Description)

	return prompt.Option{Label: label, Value: t.Value, Short: t.Name}
}

// SelectTemplate asks the user to pick a template from c until an available
// one is chosen. Prompt errors are returned unchanged; an answer that is not
// in the catalog is a selection error.
func SelectTemplate(ctx context.Context, p prompt.Prompter, c *catalog.Catalog, out io.Writer) (catalog.Template, error) {
	templates := c.Templates()
	options := make([]prompt.Option, 0, len(templates))
	for _, t := range templates {
		options = append(options, TemplateOption(t))
	}

	for {
		value, err := p.Select(ctx, selectMessage, options, SelectPageSize)
		if err != nil {
			return catalog.Template{}, err
		}

		selected, ok := c.Lookup(value)
		if !ok {
			return catalog.Template{}, clierrors.InvalidTemplateSelection(value)
		}
		if selected.Available {
			return selected, nil
		}

		fmt.Fprintf(out, "\n%s\n", color.RedString("This template is coming soon and not available yet!"))
		fmt.Fprintf(out, "%s\n\n", color.YellowString("Please choose another template."))
	}
}
