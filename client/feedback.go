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
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/edgemetric/hawkbit-client/model"
)

// Execution phase and finished outcome vocabulary of the feedback
// endpoints. The (execution, finished) pairings the report methods send
// are fixed by the server contract.
const (
	executionProceeding = "proceeding"
	executionScheduled  = "scheduled"
	executionResumed    = "resumed"
	executionCanceled   = "canceled"
	executionClosed     = "closed"

	finishedNone    = "none"
	finishedSuccess = "success"
	finishedFailure = "failure"
)

// MergeMode selects how submitted configuration data is combined with
// what the server already holds for the controller.
type MergeMode int

const (
	Merge MergeMode = iota
	Replace
	Remove
)

func (m MergeMode) String() string {
	switch m {
	case Merge:
		return "merge"
	case Remove:
		return "remove"
	}
	return "replace"
}

type feedbackRequest struct {
	ID     string         `json:"id"`
	Status feedbackStatus `json:"status"`
}

type feedbackStatus struct {
	Details   []string       `json:"details"`
	Execution string         `json:"execution"`
	Result    feedbackResult `json:"result"`
}

type feedbackResult struct {
	Finished string `json:"finished"`
}

type configDataRequest struct {
	Mode   string            `json:"mode"`
	Data   map[string]string `json:"data"`
	Status feedbackStatus    `json:"status"`
}

func (c *Client) feedbackURL(relation string, action model.ActionIdentity) string {
	return c.controllerURL() + "/" + relation + "/" + action.ID() + "/feedback"
}

func (c *Client) sendFeedback(relation string, action model.ActionIdentity, execution, finished string, details []string) (model.UpdateResult, error) {
	if details == nil {
		details = []string{}
	}

	body, err := json.Marshal(&feedbackRequest{
		ID: action.ID(),
		Status: feedbackStatus{
			Details:   details,
			Execution: execution,
			Result:    feedbackResult{Finished: finished},
		},
	})
	if err != nil {
		return model.UpdateResult{}, err
	}

	code, _, err := c.do(http.MethodPost, c.feedbackURL(relation, action), body, "feedback: "+execution+"/"+finished)
	if err != nil {
		return model.UpdateResult{}, err
	}

	return model.NewUpdateResult(code), nil
}

// ReportProgress tells the server the deployment is proceeding. done and
// total describe how far the device got; the wire feedback carries only
// the detail strings, so the counters are surfaced in the log.
func (c *Client) ReportProgress(deployment model.Deployment, done, total uint32, details []string) (model.UpdateResult, error) {
	log.Debugf("[%s] deployment %s progress %d/%d", c.controllerID, deployment.ID(), done, total)
	return c.sendFeedback(relationDeploymentBase, deployment, executionProceeding, finishedNone, details)
}

// ReportScheduled tells the server the deployment has been accepted and
// queued on the device.
func (c *Client) ReportScheduled(deployment model.Deployment, details []string) (model.UpdateResult, error) {
	return c.sendFeedback(relationDeploymentBase, deployment, executionScheduled, finishedNone, details)
}

// ReportResumed tells the server a previously interrupted deployment is
// running again.
func (c *Client) ReportResumed(deployment model.Deployment, details []string) (model.UpdateResult, error) {
	return c.sendFeedback(relationDeploymentBase, deployment, executionResumed, finishedNone, details)
}

// ReportCanceled tells the server the device stopped working on the
// deployment.
func (c *Client) ReportCanceled(deployment model.Deployment, details []string) (model.UpdateResult, error) {
	return c.sendFeedback(relationDeploymentBase, deployment, executionCanceled, finishedNone, details)
}

// ReportComplete closes the deployment with a success or failure outcome.
func (c *Client) ReportComplete(deployment model.Deployment, success bool, details []string) (model.UpdateResult, error) {
	finished := finishedSuccess
	if !success {
		finished = finishedFailure
	}
	return c.sendFeedback(relationDeploymentBase, deployment, executionClosed, finished, details)
}

// ReportCancelAccepted confirms a cancel action: the device stopped the
// deployment the stop refers to.
func (c *Client) ReportCancelAccepted(stop model.Stop, details []string) (model.UpdateResult, error) {
	return c.sendFeedback(relationCancelAction, stop, executionClosed, finishedSuccess, details)
}

// ReportCancelRejected closes a cancel action the device could not or
// would not honor.
func (c *Client) ReportCancelRejected(stop model.Stop, details []string) (model.UpdateResult, error) {
	return c.sendFeedback(relationCancelAction, stop, executionClosed, finishedFailure, details)
}

// UpdateRegistration submits the controller's configuration data to the
// registration endpoint the last poll advertised. data is copied verbatim
// into the submission; mode selects how the server merges it.
func (c *Client) UpdateRegistration(registration model.Registration, data map[string]string, mode MergeMode, details []string) (model.UpdateResult, error) {
	if details == nil {
		details = []string{}
	}
	if data == nil {
		data = map[string]string{}
	}

	body, err := json.Marshal(&configDataRequest{
		Mode: mode.String(),
		Data: data,
		Status: feedbackStatus{
			Details:   details,
			Execution: executionClosed,
			Result:    feedbackResult{Finished: finishedSuccess},
		},
	})
	if err != nil {
		return model.UpdateResult{}, err
	}

	code, _, err := c.do(http.MethodPut, registration.URL(), body, "update-registration")
	if err != nil {
		return model.UpdateResult{}, err
	}

	return model.NewUpdateResult(code), nil
}
