// Copyright 2026 the hawkbit-client authors
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package model

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
serverUrl: https://hawkbit.example.com
tenant: DEFAULT
controllerId: device7
securityToken: token123
attributes:
  model: X1
  revision: rev2
`)

	config, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://hawkbit.example.com", config.ServerURL)
	assert.Equal(t, "DEFAULT", config.Tenant)
	assert.Equal(t, "device7", config.ControllerID)
	assert.Equal(t, "token123", config.SecurityToken)
	assert.Equal(t, map[string]string{"model": "X1", "revision": "rev2"}, config.Attributes)
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "serverUrl: [")
	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}

func TestFileConfigApplyKeepsFlagValues(t *testing.T) {
	fileConfig := &FileConfig{
		ServerURL:     "https://from-file.example.com",
		Tenant:        "FILE",
		SecurityToken: "file-token",
		Attributes:    map[string]string{"model": "file", "site": "lab"},
	}

	config := &RunConfig{
		ServerURL:  "https://from-flag.example.com",
		Attributes: map[string]string{"model": "flag"},
	}
	fileConfig.Apply(config)

	// Flags win; only empty fields are filled from the file.
	assert.Equal(t, "https://from-flag.example.com", config.ServerURL)
	assert.Equal(t, "FILE", config.Tenant)
	assert.Equal(t, "file-token", config.SecurityToken)
	assert.Equal(t, map[string]string{"model": "flag", "site": "lab"}, config.Attributes)
}
