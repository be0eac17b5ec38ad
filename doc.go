// Package sdfkit parses, models, and analyzes Standard Delay Format (SDF)
// timing annotations used in chip and FPGA design flows.
//
// What lives where:
//
//	delay/     - Value (min/typ/max triple with optional fields), Corner
//	             labels, DelayPaths and the delay algebra (add, sub, neg,
//	             scale, approximate equality, scalar extraction)
//	model/     - timing entries (IOPATH, INTERCONNECT, PORT, DEVICE,
//	             timing checks, path constraints), header, File, Builder
//	timegraph/ - directed multigraph of pins built from a File; simple-path
//	             search, delay composition, verification, decomposition
//	analysis/  - critical paths, slack, path ranking, batch endpoint
//	             analysis, aggregate statistics, structural query, lint
//	diff/      - structural + value comparison of two Files with tolerance
//	merge/     - ordered merge of Files under a conflict policy
//	normalize/ - timescale rescaling of all delays in a File
//	sdfparse/  - SDF text → File
//	sdfwrite/  - File → SDF text
//	export/    - Graphviz DOT rendering of timing graphs
//	report/    - styled terminal timing report
//	cmd/sdfkit - command-line surface
//
// The engine packages (delay, timegraph, analysis, diff, merge, normalize)
// are computation-only: no I/O, no background goroutines, no shared mutable
// state. A timegraph.Graph is an immutable view over its source File, so
// read-only analyses may run concurrently across goroutines.
//
//	go get github.com/chipflow/sdfkit
package sdfkit
