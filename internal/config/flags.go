// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the blob server flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-blob-backend blob store backend (memory, filesystem, s3)
//	-blob-dir filesystem backend root directory
//	-s3-bucket S3 bucket name
//	-s3-endpoint S3 compatible endpoint URL
//	-c/-config json or toml file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-blob-size upload size limit in bytes
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("blob-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var blobBackend, blobDir string
	var s3Bucket, s3Endpoint string
	var configPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var maxBlobSize int64
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&blobBackend, "blob-backend", "", "Blob store backend")
	fs.StringVar(&blobDir, "blob-dir", "", "Filesystem blob store directory")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 compatible endpoint")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBlobSize, "max-blob-size", 0, "Maximum blob size in bytes")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Blob: Blob{
				Backend: blobBackend,
				Dir:     blobDir,
				S3: S3{
					Bucket:   s3Bucket,
					Endpoint: s3Endpoint,
				},
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBlobSize:    maxBlobSize,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any other host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
