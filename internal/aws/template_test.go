/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderDefaultTemplate(t *testing.T) {
	rendered, err := RenderDefaultTemplate("analytics")
	require.NoError(t, err)

	assert.Contains(t, rendered, "analytics")

	// Every engine parameter the lifecycle layer submits must be declared.
	for _, key := range []string{
		ParamVersion,
		ParamArchitecture,
		ParamReaderMemorySize,
		ParamWriterMemorySize,
		ParamCompactorMemorySize,
		ParamGatewayMemorySize,
		ParamEnablePrivateVPC,
		ParamEnablePrivateEndpoint,
		ParamEnableLogging,
	} {
		assert.Contains(t, rendered, key)
	}

	for _, output := range []string{
		OutputConsoleURL,
		OutputDataAPIURL,
		OutputLicenseAPIURL,
		OutputStorageBucket,
	} {
		assert.Contains(t, rendered, output)
	}
}

func TestRenderDefaultTemplate_ValidYAML(t *testing.T) {
	rendered, err := RenderDefaultTemplate("analytics")
	require.NoError(t, err)

	// Decode into a Node: the engine's short-form intrinsic tags (!Ref,
	// !Sub) are not plain YAML values.
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(rendered), &doc))

	require.Len(t, doc.Content, 1)
	var keys []string
	for i := 0; i < len(doc.Content[0].Content); i += 2 {
		keys = append(keys, doc.Content[0].Content[i].Value)
	}
	assert.Contains(t, keys, "Parameters")
	assert.Contains(t, keys, "Resources")
	assert.Contains(t, keys, "Outputs")
}
