// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test logger and TLS material
package fixtures

import (
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// LogCategory - the logger channel used by the tests
const (
	logDirectory = "testing"
	LogCategory  = "testing"
)

// SetupTestLogger - initialise a file logger below the current directory
func SetupTestLogger() {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})
}

// TeardownTestLogger - stop the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
}

// Directory - the directory holding the TLS fixture files
func Directory() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// CertificateFile - path of the self signed test certificate
func CertificateFile() string {
	return filepath.Join(Directory(), "test.crt")
}

// KeyFile - path of the test certificate's private key
func KeyFile() string {
	return filepath.Join(Directory(), "test.key")
}

// Certificate - PEM text of the test certificate
func Certificate() string {
	return readFile(CertificateFile())
}

// Key - PEM text of the test private key
func Key() string {
	return readFile(KeyFile())
}

// FreePort - a loopback TCP port that was unused when checked
func FreePort() int {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		return 0
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func readFile(name string) string {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		return ""
	}
	return string(data)
}
