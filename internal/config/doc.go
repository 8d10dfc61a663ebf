// Package config provides configuration loading, merging, and validation
// for the wallet client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults (local daemon, mutinynet invite code)
//
// The main entry point is [GetClientConfig].
package config
