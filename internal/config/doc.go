// Package config loads crawler settings.
//
// Settings start from Default and may be overridden by a json5 file, which is in turn
// overridden by a sibling "<name>.local.<ext>" file. Command-line flags are applied last
// by the cli package.
package config
