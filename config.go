// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Remote adapter selection.
const (
	remoteModeGitHub = "github"
	remoteModeInMem  = "inmem"
)

type storeConfig struct {
	// Owner is the user or organization owning the badge repository.
	Owner string `validate:"required"`

	// Repo is the badge repository name.
	Repo string `validate:"required"`

	// BaseURL is the public storage root badge URLs are built from,
	// e.g. https://myorg.github.io/badges.
	BaseURL string `mapstructure:"baseURL" validate:"required,url"`
}

type remoteConfig struct {
	// Mode picks the remote adapter: "github" (default) or "inmem" for
	// local development without a real repository.
	Mode string `validate:"omitempty,oneof=github inmem"`

	// Token is the OAuth access token used for GitHub API calls.
	Token string

	// Branch is the branch writes land on, e.g. gh-pages.
	Branch string

	// Timeout bounds each remote call.
	Timeout time.Duration

	// APIBaseURL overrides the GitHub API endpoint.
	APIBaseURL string `mapstructure:"apiBaseURL"`
}

type serverConfig struct {
	// Address is the listen address of the primary server.
	Address string `validate:"required"`
}

type appConfig struct {
	Store  storeConfig  `validate:"required"`
	Remote remoteConfig `validate:"required"`
	Server serverConfig `validate:"required"`
}

func provideConfig(v *viper.Viper) (appConfig, error) {
	config := appConfig{
		Remote: remoteConfig{Mode: remoteModeGitHub},
		Server: serverConfig{Address: ":8080"},
	}
	if err := v.Unmarshal(&config); err != nil {
		return appConfig{}, err
	}
	if err := validator.New().Struct(&config); err != nil {
		return appConfig{}, err
	}
	return config, nil
}
