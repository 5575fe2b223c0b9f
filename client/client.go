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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edgemetric/hawkbit-client/cert"
	"github.com/edgemetric/hawkbit-client/model"
)

const (
	relationDeploymentBase = "deploymentBase"
	relationConfigData     = "configData"
	relationCancelAction   = "cancelAction"
)

const (
	headerAccept        = "application/hal+json"
	headerContentType   = "application/json"
	authorizationScheme = "TargetToken "
)

// Client is a hawkBit DDI protocol session for one controller. All
// operations are single-shot request/response cycles; the only state a
// Client carries is the configuration fixed at construction. A Client
// must not be used by more than one goroutine at a time.
type Client struct {
	baseURL      string
	tenant       string
	controllerID string
	authToken    string
	httpClient   *http.Client
}

func NewClient(config *model.RunConfig) (*Client, error) {
	tlsConfig, err := cert.TLSConfig(config.ServerCertFile, config.InsecureSkipVerify)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: config.ConnectTimeout,
		}).DialContext,
		TLSClientConfig: tlsConfig,
	}

	return &Client{
		baseURL:      config.ServerURL,
		tenant:       config.Tenant,
		controllerID: config.ControllerID,
		authToken:    authorizationScheme + config.SecurityToken,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   config.RequestTimeout,
		},
	}, nil
}

// ControllerID is the controller this session polls as.
func (c *Client) ControllerID() string {
	return c.controllerID
}

func (c *Client) controllerURL() string {
	return c.baseURL + "/" + c.tenant + "/controller/v1/" + c.controllerID
}

// do performs one request with the protocol headers and returns the
// status code and the full response body. The body buffer is owned by
// this call; nothing is shared between requests.
func (c *Client) do(method, url string, body []byte, label string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Add("Accept", headerAccept)
	req.Header.Add("Authorization", c.authToken)
	if body != nil {
		req.Header.Add("Content-Type", headerContentType)
	}

	start := time.Now()
	response, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "%s %s failed", method, label)
	}
	defer response.Body.Close()

	payload, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "reading %s response", label)
	}
	elapsed := time.Since(start).Milliseconds()

	log.Debugf("[%s] %-40s %d (%6d ms)", c.controllerID, label, response.StatusCode, elapsed)

	return response.StatusCode, payload, nil
}

// ReadState polls the controller base resource and resolves it to the
// pending action. At most one action is active at a time; when the
// response advertises several links the deployment wins over
// registration, registration over cancellation. Absent and empty links
// mean "nothing pending" and yield StateNone, never an error.
func (c *Client) ReadState() (model.State, error) {
	code, payload, err := c.do(http.MethodGet, c.controllerURL(), nil, "read-state")
	if err != nil {
		return model.State{}, err
	}
	if code != http.StatusOK {
		return model.State{}, &DecodeError{Reason: fmt.Sprintf("poll returned status %d", code)}
	}

	resource := &pollResource{}
	if err := json.Unmarshal(payload, resource); err != nil {
		return model.State{}, &DecodeError{Reason: "poll response", Err: err}
	}

	if href := resource.link(relationDeploymentBase); href != "" {
		log.Debugf("[%s] fetching deployment: %s", c.controllerID, href)
		deployment, err := c.readDeployment(href)
		if err != nil {
			return model.State{}, err
		}
		return model.UpdateState(deployment), nil
	}

	if href := resource.link(relationConfigData); href != "" {
		log.Debugf("[%s] registration requested: %s", c.controllerID, href)
		return model.RegisterState(model.NewRegistration(href)), nil
	}

	if href := resource.link(relationCancelAction); href != "" {
		log.Debugf("[%s] fetching cancel action: %s", c.controllerID, href)
		stop, err := c.readCancel(href)
		if err != nil {
			return model.State{}, err
		}
		return model.CancelState(stop), nil
	}

	log.Debugf("[%s] no pending action", c.controllerID)
	return model.NoneState(), nil
}

func (c *Client) readDeployment(href string) (model.Deployment, error) {
	code, payload, err := c.do(http.MethodGet, href, nil, "read-deployment")
	if err != nil {
		return model.Deployment{}, err
	}
	if code != http.StatusOK {
		return model.Deployment{}, &DecodeError{Reason: fmt.Sprintf("deployment fetch returned status %d", code)}
	}

	resource := &deploymentResource{}
	if err := json.Unmarshal(payload, resource); err != nil {
		return model.Deployment{}, &DecodeError{Reason: "deployment resource", Err: err}
	}

	return resource.toModel()
}

func (c *Client) readCancel(href string) (model.Stop, error) {
	code, payload, err := c.do(http.MethodGet, href, nil, "read-cancel")
	if err != nil {
		return model.Stop{}, err
	}
	if code != http.StatusOK {
		return model.Stop{}, &DecodeError{Reason: fmt.Sprintf("cancel fetch returned status %d", code)}
	}

	resource := &cancelResource{}
	if err := json.Unmarshal(payload, resource); err != nil {
		return model.Stop{}, &DecodeError{Reason: "cancel resource", Err: err}
	}

	return model.NewStop(resource.CancelAction.StopID), nil
}
