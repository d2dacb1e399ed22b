// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kevad/rpc/certificate"
	"github.com/bitmark-inc/kevad/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	tlsConfig, fingerprint, err := certificate.Get(log, "rpc", fixtures.Certificate(), fixtures.Key())
	assert.Nil(t, err, "get")

	pair, err := tls.X509KeyPair([]byte(fixtures.Certificate()), []byte(fixtures.Key()))
	assert.Nil(t, err, "fixture pair")

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "fingerprint")
	assert.Equal(t, []tls.Certificate{pair}, tlsConfig.Certificates, "certificates")
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion, "minimum TLS version")
}

func TestGetMismatchedKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "rpc", fixtures.Certificate(), "not a key")
	assert.NotNil(t, err, "invalid key accepted")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	_, expected, err := certificate.Get(log, "rpc", fixtures.Certificate(), fixtures.Key())
	assert.Nil(t, err, "get")

	_, fingerprint, err := certificate.Load(log, "rpc", fixtures.CertificateFile(), fixtures.KeyFile())
	assert.Nil(t, err, "load")
	assert.Equal(t, expected, fingerprint, "loaded fingerprint")

	missing := filepath.Join(fixtures.Directory(), "missing.crt")
	_, _, err = certificate.Load(log, "rpc", missing, fixtures.KeyFile())
	assert.NotNil(t, err, "missing certificate accepted")

	_, _, err = certificate.Load(log, "rpc", fixtures.CertificateFile(), missing)
	assert.NotNil(t, err, "missing key accepted")
}
