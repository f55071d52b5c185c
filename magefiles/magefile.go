//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the larder project using Mage.
//
// Usage:
//
//	mage build        Compile larder binary to bin/
//	mage test:all     Run all tests
//	mage test:race    Run all tests with the race detector
//	mage test:cover   Run all tests and write coverage.out
//	mage lint         Run golangci-lint
//	mage clean        Remove build artifacts
//	mage install      Install larder to GOPATH/bin
package main

const (
	binGo      = "go"
	binaryName = "larder"
	binaryDir  = "bin"
	cmdDir     = "./cmd/larder"
)
