// Package deploy verifies build artifacts and assembles the deployment tree.
//
// Verification is a presence check by fixed path: the main executable and
// each plugin library are stat'ed and reported found or missing, with no
// recovery attempted. Packaging recreates the deployment directory, copies
// the executable and whichever plugins were built, and generates a launcher
// script that sets the Qt runtime paths.
package deploy
