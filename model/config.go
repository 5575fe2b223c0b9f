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
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig is the fixed per-session configuration: everything the client
// needs to talk to one hawkBit tenant as one controller.
type RunConfig struct {
	ServerURL          string
	Tenant             string
	ControllerID       string
	SecurityToken      string
	PollInterval       time.Duration
	ConnectTimeout     time.Duration
	RequestTimeout     time.Duration
	ServerCertFile     string
	InsecureSkipVerify bool
	DownloadDir        string
	Attributes         map[string]string
}

// FileConfig is the YAML shape of an on-disk configuration file. Values
// set on the command line take precedence over the file.
type FileConfig struct {
	ServerURL      string            `yaml:"serverUrl"`
	Tenant         string            `yaml:"tenant"`
	ControllerID   string            `yaml:"controllerId"`
	SecurityToken  string            `yaml:"securityToken"`
	ServerCertFile string            `yaml:"serverCert"`
	DownloadDir    string            `yaml:"downloadDir"`
	Attributes     map[string]string `yaml:"attributes"`
}

func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &FileConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Apply fills empty RunConfig fields from the file. Attribute maps are
// merged with command-line attributes winning on conflict.
func (f *FileConfig) Apply(config *RunConfig) {
	if config.ServerURL == "" {
		config.ServerURL = f.ServerURL
	}
	if config.Tenant == "" {
		config.Tenant = f.Tenant
	}
	if config.ControllerID == "" {
		config.ControllerID = f.ControllerID
	}
	if config.SecurityToken == "" {
		config.SecurityToken = f.SecurityToken
	}
	if config.ServerCertFile == "" {
		config.ServerCertFile = f.ServerCertFile
	}
	if config.DownloadDir == "" {
		config.DownloadDir = f.DownloadDir
	}
	if len(f.Attributes) > 0 {
		merged := make(map[string]string, len(f.Attributes)+len(config.Attributes))
		for k, v := range f.Attributes {
			merged[k] = v
		}
		for k, v := range config.Attributes {
			merged[k] = v
		}
		config.Attributes = merged
	}
}
