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

package cert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSelfSignedCA(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test ca"},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ca.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, ioutil.WriteFile(path, data, 0600))
	return path
}

func TestTLSConfigDefault(t *testing.T) {
	config, err := TLSConfig("", false)
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestTLSConfigInsecure(t *testing.T) {
	config, err := TLSConfig("", true)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.True(t, config.InsecureSkipVerify)
}

func TestTLSConfigServerCert(t *testing.T) {
	path := writeSelfSignedCA(t)

	config, err := TLSConfig(path, false)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.NotNil(t, config.RootCAs)
	assert.False(t, config.InsecureSkipVerify)
}

func TestTLSConfigMissingFile(t *testing.T) {
	_, err := TLSConfig(filepath.Join(t.TempDir(), "missing.pem"), false)
	assert.Error(t, err)
}

func TestTLSConfigNotPEM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, ioutil.WriteFile(path, []byte("not a certificate"), 0600))

	_, err := TLSConfig(path, false)
	assert.Error(t, err)
}
