// Package cli implements the versiontheca command-line interface.
//
// # Overview
//
// versiontheca parses, canonicalizes, compares, steps and sorts version
// strings of six types: basic, decimal, debian (the default), rpm, roman
// and unicode. It is designed for release tooling and packaging scripts:
// results go to stdout one per line and the exit status says whether the
// inputs were valid.
//
// # Commands
//
// canonicalize - Print the canonical form of each version:
//
//	versiontheca canonicalize 0:1.2.0-1          # 1.2-1
//	versiontheca --type rpm canonicalize 1.0.0   # 1.0
//
// validate - Parse each version and print nothing on success:
//
//	versiontheca validate 1:2.3-4
//
// compare - Evaluate a relation, or print -1, 0 or 1:
//
//	versiontheca compare 1.0~rc1 '<' 1.0
//	versiontheca compare 1.10 1.9                # 1
//
// next, previous - Step a version at a 1-based upstream level:
//
//	versiontheca next --level 1 1:2.3-4          # 1:3.0-4
//	versiontheca -t basic previous -l 2 --template 99.9 2.0   # 1.9
//
// sort - Order versions, parsed in parallel:
//
//	versiontheca sort --reverse --file versions.yaml
//
// serve - Run the HTTP service (see package api).
//
// # Global Flags
//
//	--type, -t     Version type (default: debian, env: VERSIONTHECA_TYPE)
//	--log-level    Log level (default: warn, env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Reports
//
// canonicalize, validate, compare, next, previous and sort accept --report
// to write a serialized report instead of plain lines, with --format
// (yaml, json, table) and --output (default: stdout).
//
// # Exit Codes
//
//	0  success, or the comparison holds
//	1  an invalid version, an exhausted limit, or a comparison that fails
//	2  usage or operational error
//	3  help or version output
package cli
