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

package client

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgemetric/hawkbit-client/model"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artifacts/core.bin", r.URL.Path)
		assert.Equal(t, "TargetToken "+testToken, r.Header.Get("Authorization"))
		fmt.Fprint(w, "firmware bytes")
	}))
	defer server.Close()

	artifact := model.NewArtifact("core.bin", 14, nil, map[string]string{
		"download": server.URL + "/artifacts/core.bin",
	})

	var content []byte
	err := newTestClient(t, server.URL).Download(artifact, func(body io.Reader) error {
		var err error
		content, err = ioutil.ReadAll(body)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "firmware bytes", string(content))
}

func TestDownloadRelation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "d41d8cd9")
	}))
	defer server.Close()

	artifact := model.NewArtifact("core.bin", 0, nil, map[string]string{
		"download": server.URL + "/core.bin",
		"md5sum":   server.URL + "/core.bin.md5",
	})

	invoked := false
	err := newTestClient(t, server.URL).DownloadRelation(artifact, "md5sum", func(body io.Reader) error {
		invoked = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, invoked)
}

func TestDownloadLinkNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing link")
	}))
	defer server.Close()

	artifact := model.NewArtifact("core.bin", 0, nil, map[string]string{
		"md5sum": server.URL + "/core.bin.md5",
	})

	err := newTestClient(t, server.URL).Download(artifact, func(body io.Reader) error {
		t.Error("handler must not run")
		return nil
	})

	var linkErr *LinkNotFoundError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "download", linkErr.Relation)
}

func TestDownloadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	artifact := model.NewArtifact("core.bin", 0, nil, map[string]string{
		"download": server.URL + "/gone.bin",
	})

	err := newTestClient(t, server.URL).Download(artifact, func(body io.Reader) error {
		t.Error("handler must not run on a failed download")
		return nil
	})

	var downloadErr *DownloadError
	require.ErrorAs(t, err, &downloadErr)
	assert.Equal(t, http.StatusNotFound, downloadErr.Code)
}

func TestDownloadHandlerErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data")
	}))
	defer server.Close()

	artifact := model.NewArtifact("core.bin", 0, nil, map[string]string{
		"download": server.URL + "/core.bin",
	})

	handlerErr := errors.New("out of space")
	err := newTestClient(t, server.URL).Download(artifact, func(body io.Reader) error {
		return handlerErr
	})
	assert.Equal(t, handlerErr, err)
}
