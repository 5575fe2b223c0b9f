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
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TLSConfig builds the TLS configuration for the client transport. With
// a server cert file the returned config trusts exactly the CAs in that
// PEM bundle; without one and without insecure it returns nil, leaving
// the system trust store in charge.
func TLSConfig(serverCertFile string, insecureSkipVerify bool) (*tls.Config, error) {
	if serverCertFile == "" {
		if !insecureSkipVerify {
			return nil, nil
		}
		log.Warn("server certificate verification disabled")
		return &tls.Config{InsecureSkipVerify: true}, nil
	}

	data, err := ioutil.ReadFile(serverCertFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading server certificate")
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, errors.Errorf("no certificates found in %s", serverCertFile)
	}

	return &tls.Config{RootCAs: pool}, nil
}
