// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// KevaMetrics - counters and gauges of the keva node
type KevaMetrics struct {
	blocksConnected    prometheus.Counter
	blocksDisconnected prometheus.Counter
	rejected           *prometheus.CounterVec
	removed            *prometheus.CounterVec
	pendingNamespaces  prometheus.Gauge
	pendingWrites      prometheus.Gauge
	keyCount           prometheus.Gauge
	tipHeight          prometheus.Gauge
}

var (
	kevaOnce     sync.Once
	kevaRegistry *KevaMetrics
)

// Keva - the process wide metrics, registered on first use
func Keva() *KevaMetrics {
	kevaOnce.Do(func() {
		kevaRegistry = &KevaMetrics{
			blocksConnected: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "keva_blocks_connected_total",
				Help: "Number of blocks connected.",
			}),
			blocksDisconnected: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "keva_blocks_disconnected_total",
				Help: "Number of blocks disconnected.",
			}),
			rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "keva_transactions_rejected_total",
				Help: "Transactions rejected by keva validation, by reason.",
			}, []string{"reason"}),
			removed: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "keva_pool_removed_total",
				Help: "Transactions removed from the pool, by reason.",
			}, []string{"reason"}),
			pendingNamespaces: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "keva_pending_namespaces",
				Help: "Unconfirmed namespace registrations.",
			}),
			pendingWrites: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "keva_pending_writes",
				Help: "Unconfirmed key writes.",
			}),
			keyCount: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "keva_confirmed_keys",
				Help: "Confirmed key records including display names.",
			}),
			tipHeight: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "keva_tip_height",
				Help: "Height of the last connected block.",
			}),
		}
		prometheus.MustRegister(
			kevaRegistry.blocksConnected,
			kevaRegistry.blocksDisconnected,
			kevaRegistry.rejected,
			kevaRegistry.removed,
			kevaRegistry.pendingNamespaces,
			kevaRegistry.pendingWrites,
			kevaRegistry.keyCount,
			kevaRegistry.tipHeight,
		)
	})
	return kevaRegistry
}

// ObserveBlockConnected - a block was connected at height
func (m *KevaMetrics) ObserveBlockConnected(height uint64, keys uint64) {
	if nil == m {
		return
	}
	m.blocksConnected.Inc()
	m.tipHeight.Set(float64(height))
	m.keyCount.Set(float64(keys))
}

// ObserveBlockDisconnected - the tip was disconnected
func (m *KevaMetrics) ObserveBlockDisconnected(height uint64, keys uint64) {
	if nil == m {
		return
	}
	m.blocksDisconnected.Inc()
	m.tipHeight.Set(float64(height))
	m.keyCount.Set(float64(keys))
}

// ObserveRejected - a transaction failed validation
func (m *KevaMetrics) ObserveRejected(reason string) {
	if nil == m {
		return
	}
	if "" == reason {
		reason = "unknown"
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// Rejected - the rejection counter for a reason
func (m *KevaMetrics) Rejected(reason string) prometheus.Counter {
	return m.rejected.WithLabelValues(reason)
}

// ObserveRemoved - a transaction left the pool
func (m *KevaMetrics) ObserveRemoved(reason string) {
	if nil == m {
		return
	}
	m.removed.WithLabelValues(reason).Inc()
}

// SetPending - sizes of the unconfirmed overlay
func (m *KevaMetrics) SetPending(namespaces int, writes int) {
	if nil == m {
		return
	}
	m.pendingNamespaces.Set(float64(namespaces))
	m.pendingWrites.Set(float64(writes))
}
