// Package toolchain detects the host build tools the pipeline drives.
//
// Qt6 is located by probing well-known installation prefixes for qmake and
// verifying the reported major version, falling back to a PATH lookup.
// CMake and gcc are queried for display in the build summary. Distribution
// information comes from /etc/os-release. Detection never mutates the
// system; the detected Qt prefix is exported to child processes via
// environment entries on each command.
package toolchain
