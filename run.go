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

package main

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/edgemetric/hawkbit-client/client"
	"github.com/edgemetric/hawkbit-client/model"
)

func run(config *model.RunConfig) error {
	c, err := client.NewClient(config)
	if err != nil {
		return err
	}

	log.Infof("polling %s as controller %s", config.ServerURL, config.ControllerID)

	ticker := time.NewTicker(config.PollInterval)
	defer ticker.Stop()

	for {
		if err := pollOnce(c, config); err != nil {
			log.Errorf("[%s] %s", config.ControllerID, err)
		}
		<-ticker.C
	}
}

func pollOnce(c *client.Client, config *model.RunConfig) error {
	state, err := c.ReadState()
	if err != nil {
		return err
	}

	switch state.Type() {
	case model.StateUpdate:
		deployment, _ := state.Deployment()
		return handleDeployment(c, config, deployment)
	case model.StateRegister:
		registration, _ := state.Registration()
		result, err := c.UpdateRegistration(registration, config.Attributes, client.Merge, nil)
		if err != nil {
			return err
		}
		log.Infof("[%s] configuration data submitted (%d)", c.ControllerID(), result.Code())
	case model.StateCancel:
		stop, _ := state.Stop()
		result, err := c.ReportCancelAccepted(stop, []string{"no update in progress"})
		if err != nil {
			return err
		}
		log.Infof("[%s] cancel action %s accepted (%d)", c.ControllerID(), stop.ID(), result.Code())
	}

	return nil
}

func handleDeployment(c *client.Client, config *model.RunConfig, deployment model.Deployment) error {
	var total uint32
	for _, chunk := range deployment.Chunks() {
		total += uint32(len(chunk.Artifacts()))
	}

	log.Infof("[%s] deployment %s: %d chunks, %d artifacts",
		c.ControllerID(), deployment.ID(), len(deployment.Chunks()), total)

	if _, err := c.ReportProgress(deployment, 0, total, nil); err != nil {
		return err
	}

	var done uint32
	for _, chunk := range deployment.Chunks() {
		for _, artifact := range chunk.Artifacts() {
			if err := fetchArtifact(c, config, artifact); err != nil {
				if _, ferr := c.ReportComplete(deployment, false, []string{err.Error()}); ferr != nil {
					return ferr
				}
				return err
			}
			done++
			if _, err := c.ReportProgress(deployment, done, total, []string{"downloaded " + artifact.Filename()}); err != nil {
				return err
			}
		}
	}

	result, err := c.ReportComplete(deployment, true, nil)
	if err != nil {
		return err
	}
	log.Infof("[%s] deployment %s completed (%d)", c.ControllerID(), deployment.ID(), result.Code())
	return nil
}

func fetchArtifact(c *client.Client, config *model.RunConfig, artifact model.Artifact) error {
	if config.DownloadDir == "" {
		return c.Download(artifact, func(body io.Reader) error {
			_, err := io.Copy(ioutil.Discard, body)
			return err
		})
	}

	path := filepath.Join(config.DownloadDir, filepath.Base(artifact.Filename()))
	return c.Download(artifact, func(body io.Reader) error {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if _, err := io.Copy(file, body); err != nil {
			return err
		}
		return file.Sync()
	})
}
