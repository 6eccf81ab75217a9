// Package config loads, validates and saves the YAML run configuration used
// by the motley command.
//
// A file has four sections:
//
//	input:      boundary / cell / path point lists, or curves_file naming a
//	            YAML file with the same three keys
//	generation: seed, normalize_stations, tolerance
//	output:     dir, format (yaml | json), stl, mesh_resolution
//	logging:    level (debug | info | warn | error), format (json | console)
//
// Load returns Default() when the file does not exist. The environment
// variables MOTLEY_OUTPUT_DIR and MOTLEY_LOG_LEVEL override the file.
package config
