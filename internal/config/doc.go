// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive defaults rooted at
// ~/.vault-guard. The main entry points are [GetStructuredConfig] and [Load].
//
// Cryptographic parameters, the TOTP step and the fuzzy-search threshold are
// fixed in code and are not configurable.
package config
