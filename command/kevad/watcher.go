// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/logger"
)

// configuration file watcher
//
// the directory is watched so editors that replace the file by
// rename still produce a change event
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
}

func newFileWatcher(log *logger.L, targetFile string) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ConfigurationFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		_ = watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
	}, nil
}

// Changed - signalled after the file is written
func (w *fileWatcher) Changed() <-chan struct{} {
	return w.change
}

// Run - forward matching events until shutdown
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if isFileChange(event) {
				w.send()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watch error: %s", err)
		}
	}
	_ = w.watcher.Close()
}

// a pending change already covers this one
func (w *fileWatcher) send() {
	select {
	case w.change <- struct{}{}:
	default:
	}
}

func isFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
