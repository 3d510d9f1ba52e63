package notifier

import (
	"fmt"
	"strings"
	"text/template"
)

var templates = map[string]*template.Template{
	"waitlist_confirmation": template.Must(template.New("waitlist_confirmation").Parse(
		"Hi {{.FullName}},\n\n" +
			"You're on the waitlist. We'll reach out as soon as a spot opens up.\n\n" +
			"{{.WebURL}}\n",
	)),
	"maintenance_update": template.Must(template.New("maintenance_update").Parse(
		"The maintenance request \"{{.Title}}\" at {{.PropertyName}} is now {{.Status}}.\n\n" +
			"{{.WebURL}}\n",
	)),
}

func renderTemplate(templateName string, data any) (string, error) {
	tmpl, ok := templates[templateName]
	if !ok {
		return "", fmt.Errorf("unknown notification template %q", templateName)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", templateName, err)
	}
	return sb.String(), nil
}
