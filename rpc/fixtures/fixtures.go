// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var (
	certificateOnce sync.Once
	certificatePEM  string
	keyPEM          string
)

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Certificate - PEM of a self signed test certificate
func Certificate() string {
	certificateOnce.Do(generate)
	return certificatePEM
}

// Key - PEM of the private key for Certificate
func Key() string {
	certificateOnce.Do(generate)
	return keyPEM
}

func generate() {
	cert, key, err := certgen.NewTLSCertPair("mountbreed test", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(fmt.Sprintf("certificate generation error: %s", err))
	}
	certificatePEM = string(cert)
	keyPEM = string(key)
}
