// Package config loads the subway service configuration from YAML.
//
// Values are validated with struct tags, then unset fields receive defaults
// (see Default). A minimal file:
//
//	server:
//	  addr: ":8080"
//	network:
//	  seedFile: network.yml
package config
