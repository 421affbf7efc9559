// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the safeshare command-line application.
//
// Every command runs in its own short-lived process: the root command loads
// the configuration, opens the metadata and blob stores, wires the client
// services and closes everything again once the command returns. Command
// output goes to the command's writer; diagnostics go to the client log file.
package client
