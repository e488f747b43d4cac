// Package metrics keeps, exports and publishes the observation records
// produced by majority.Measure.
//
// Components:
//
//   - Collector  – caller-owned, append-only log of majority.Metrics. Safe
//     for concurrent use. Each Add is forwarded to the configured Observers.
//   - Observer   – sink interface; NopObserver and Prometheus implement it.
//   - WriteCSV / ExportCSV – CSV with the fixed column order
//     Algorithm,InputSize,InputType,ArrayAccesses,Comparisons,MemoryAllocations,ExecutionTimeNs.
//   - Summary    – multi-line human-readable report for one record.
//   - Prometheus – Observer backed by client_golang counters and a latency
//     histogram, labelled by input type.
//
// Nothing here feeds back into the algorithm: an export failure is reported
// to the caller and never alters the computed results.
package metrics
