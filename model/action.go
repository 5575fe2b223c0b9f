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

// ActionIdentity is anything the server correlates feedback to. Deployment
// and Stop implement it; the id selects the feedback endpoint.
type ActionIdentity interface {
	ID() string
}

// Stop is a cancel action: the server asks the device to stop working on
// a previously issued deployment.
type Stop struct {
	id string
}

func NewStop(id string) Stop {
	return Stop{id: id}
}

// ID is the stopId of the cancel action.
func (s Stop) ID() string {
	return s.id
}

// Registration tells the device to (re-)submit its configuration data to
// the given endpoint.
type Registration struct {
	url string
}

func NewRegistration(url string) Registration {
	return Registration{url: url}
}

// URL is the endpoint configuration data must be PUT to.
func (r Registration) URL() string {
	return r.url
}

// UpdateResult wraps the HTTP status code a feedback or registration
// submission came back with.
type UpdateResult struct {
	code int
}

func NewUpdateResult(code int) UpdateResult {
	return UpdateResult{code: code}
}

func (r UpdateResult) Code() int {
	return r.code
}
