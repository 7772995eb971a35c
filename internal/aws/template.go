/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/clapdb.yaml.tmpl
var defaultTemplate string

// RenderDefaultTemplate renders the built-in service template for a
// deployment name using Go templates with Sprig functions
func RenderDefaultTemplate(name string) (string, error) {
	tmpl, err := template.New("clapdb").
		Funcs(sprig.TxtFuncMap()).
		Parse(defaultTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse service template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{
		"ServiceName": name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render service template: %w", err)
	}

	return buf.String(), nil
}
