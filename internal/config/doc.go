// Package config provides configuration loading, merging, and validation
// facilities for the career-path client.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every field they set; later sources only fill fields that are still zero:
//  1. Environment variables (a ".env" file in the working directory is
//     loaded first when present)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view.
package config
