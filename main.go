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
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/edgemetric/hawkbit-client/model"
)

func main() {
	doMain(os.Args)
}

func doMain(args []string) {
	app := &cli.App{
		Commands: []cli.Command{
			{
				Name:   "run",
				Usage:  "Poll the update server and handle pending actions",
				Action: cmdRun,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "server-url",
						Usage: "Update server base URL",
						Value: "https://localhost",
					},
					&cli.StringFlag{
						Name:  "tenant",
						Usage: "Tenant name",
						Value: "DEFAULT",
					},
					&cli.StringFlag{
						Name:  "controller-id",
						Usage: "Controller id; generated when empty",
					},
					&cli.StringFlag{
						Name:  "security-token",
						Usage: "Target security token",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a YAML configuration file",
					},
					&cli.IntFlag{
						Name:  "poll-interval",
						Usage: "Poll interval in seconds",
						Value: 30,
					},
					&cli.IntFlag{
						Name:  "connect-timeout",
						Usage: "Connection timeout in seconds",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "request-timeout",
						Usage: "Total per-request timeout in seconds",
						Value: 60,
					},
					&cli.StringFlag{
						Name:  "server-cert",
						Usage: "Path to the server CA certificate in PEM format",
					},
					&cli.BoolFlag{
						Name:  "insecure",
						Usage: "Skip server certificate verification",
					},
					&cli.StringFlag{
						Name:  "download-dir",
						Usage: "Directory to store downloaded artifacts; discarded when empty",
					},
					&cli.StringSliceFlag{
						Name:  "attribute",
						Usage: "Configuration data attribute, in the form of key:value",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Enable debug mode",
					},
				},
			},
		},
	}

	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

func parseAttributes(attributes []string) map[string]string {
	result := map[string]string{}
	for _, attribute := range attributes {
		parts := strings.SplitN(attribute, ":", 2)
		if len(parts) < 2 {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}

func cmdRun(args *cli.Context) error {
	if args.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	config := &model.RunConfig{
		ServerURL:          args.String("server-url"),
		Tenant:             args.String("tenant"),
		ControllerID:       args.String("controller-id"),
		SecurityToken:      args.String("security-token"),
		PollInterval:       time.Duration(args.Int("poll-interval")) * time.Second,
		ConnectTimeout:     time.Duration(args.Int("connect-timeout")) * time.Second,
		RequestTimeout:     time.Duration(args.Int("request-timeout")) * time.Second,
		ServerCertFile:     args.String("server-cert"),
		InsecureSkipVerify: args.Bool("insecure"),
		DownloadDir:        args.String("download-dir"),
		Attributes:         parseAttributes(args.StringSlice("attribute")),
	}

	if path := args.String("config"); path != "" {
		fileConfig, err := model.LoadFileConfig(path)
		if err != nil {
			return err
		}
		fileConfig.Apply(config)
	}

	if config.ControllerID == "" {
		config.ControllerID = uuid.New().String()
		log.Infof("no controller id configured, using %s", config.ControllerID)
	}

	return run(config)
}
