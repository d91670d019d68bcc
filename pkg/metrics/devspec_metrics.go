// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"sync"

	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	devSpecMetricsOnce sync.Once
	devSpecMetrics     *DeviceSpecMetrics
)

type DeviceSpecMetrics struct {
	specsBuilt     *prometheus.CounterVec
	devicesSkipped *prometheus.CounterVec
}

// NewDeviceSpecMetrics initializes a singleton and registers all the defined metrics.
func NewDeviceSpecMetrics() *DeviceSpecMetrics {
	devSpecMetricsOnce.Do(func() {
		devSpecMetrics = &DeviceSpecMetrics{
			specsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "builder",
				Name:      "specs_total",
				Help:      "Number of specs produced by the device spec builder",
			}, []string{
				specKindLabel,
			}),
			devicesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "inspector",
				Name:      "skipped_devices_total",
				Help:      "Number of devices the device inspector could not classify",
			}, []string{
				reasonLabel,
			}),
		}

		metrics.Registry.MustRegister(
			devSpecMetrics.specsBuilt,
			devSpecMetrics.devicesSkipped,
		)
	})

	return devSpecMetrics
}

// RegisterSpecBuilt increments the number of specs built for the given kind.
func (m *DeviceSpecMetrics) RegisterSpecBuilt(logger logr.Logger, kind SpecKind) {
	labels := prometheus.Labels{specKindLabel: string(kind)}
	m.specsBuilt.With(labels).Inc()

	logger.V(5).WithValues("labels", labels).Info("Incremented spec built metric")
}

// RegisterDeviceSkipped increments the number of devices skipped by the
// inspector for the given reason.
func (m *DeviceSpecMetrics) RegisterDeviceSkipped(logger logr.Logger, reason SkipReason) {
	labels := prometheus.Labels{reasonLabel: string(reason)}
	m.devicesSkipped.With(labels).Inc()

	logger.V(5).WithValues("labels", labels).Info("Incremented device skipped metric")
}

// SpecsBuilt returns the counter for the given kind. Intended for tests.
func (m *DeviceSpecMetrics) SpecsBuilt(kind SpecKind) prometheus.Counter {
	return m.specsBuilt.With(prometheus.Labels{specKindLabel: string(kind)})
}

// DevicesSkipped returns the counter for the given reason. Intended for tests.
func (m *DeviceSpecMetrics) DevicesSkipped(reason SkipReason) prometheus.Counter {
	return m.devicesSkipped.With(prometheus.Labels{reasonLabel: string(reason)})
}
