// Package infra groups technical adapters such as the Excel codecs,
// metrics exporters and the MQTT notifier. These packages should depend
// only on the interfaces defined in the core packages.
package infra
