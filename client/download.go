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
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edgemetric/hawkbit-client/model"
)

// DownloadHandler consumes an artifact's byte stream. The reader is valid
// only until the handler returns; the connection is released afterwards
// whether or not the handler succeeded.
type DownloadHandler func(body io.Reader) error

// Download streams the artifact's default "download" link to handler.
func (c *Client) Download(artifact model.Artifact, handler DownloadHandler) error {
	return c.DownloadRelation(artifact, model.DownloadLink, handler)
}

// DownloadRelation resolves the named link relation on the artifact and
// streams its content to handler. It fails with LinkNotFoundError before
// any network access when the relation is absent, and with DownloadError
// when the server answers with a non-success status.
func (c *Client) DownloadRelation(artifact model.Artifact, relation string, handler DownloadHandler) error {
	href, ok := artifact.Link(relation)
	if !ok {
		return &LinkNotFoundError{Relation: relation}
	}

	req, err := http.NewRequest(http.MethodGet, href, nil)
	if err != nil {
		return err
	}
	req.Header.Add("Accept", headerAccept)
	req.Header.Add("Authorization", c.authToken)

	start := time.Now()
	response, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "downloading %s", artifact.Filename())
	}
	defer response.Body.Close()

	log.Debugf("[%s] %-40s %d (%6d ms)", c.controllerID, "download: "+artifact.Filename(),
		response.StatusCode, time.Since(start).Milliseconds())

	if response.StatusCode != http.StatusOK {
		return &DownloadError{Code: response.StatusCode}
	}

	return handler(response.Body)
}
