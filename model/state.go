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

// StateType discriminates the action a poll response resolved to.
type StateType int

const (
	StateNone StateType = iota
	StateRegister
	StateUpdate
	StateCancel
)

func (t StateType) String() string {
	switch t {
	case StateNone:
		return "none"
	case StateRegister:
		return "register"
	case StateUpdate:
		return "update"
	case StateCancel:
		return "cancel"
	}
	return "unknown"
}

// State is the decoded outcome of one poll: exactly one of the variant
// payloads is set, selected by Type. A State is built fresh per poll by
// one of the typed constructors and never mutated afterwards.
type State struct {
	stateType    StateType
	deployment   *Deployment
	stop         *Stop
	registration *Registration
}

// NoneState is the steady state: the server has nothing for the device.
func NoneState() State {
	return State{stateType: StateNone}
}

func UpdateState(deployment Deployment) State {
	return State{stateType: StateUpdate, deployment: &deployment}
}

func RegisterState(registration Registration) State {
	return State{stateType: StateRegister, registration: &registration}
}

func CancelState(stop Stop) State {
	return State{stateType: StateCancel, stop: &stop}
}

func (s State) Type() StateType {
	return s.stateType
}

func (s State) Is(t StateType) bool {
	return s.stateType == t
}

// Deployment returns the pending deployment; ok is false unless the state
// is StateUpdate.
func (s State) Deployment() (Deployment, bool) {
	if s.deployment == nil {
		return Deployment{}, false
	}
	return *s.deployment, true
}

// Stop returns the cancel action; ok is false unless the state is
// StateCancel.
func (s State) Stop() (Stop, bool) {
	if s.stop == nil {
		return Stop{}, false
	}
	return *s.stop, true
}

// Registration returns the registration request; ok is false unless the
// state is StateRegister.
func (s State) Registration() (Registration, bool) {
	if s.registration == nil {
		return Registration{}, false
	}
	return *s.registration, true
}
