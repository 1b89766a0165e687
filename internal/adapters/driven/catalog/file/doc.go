// Package file loads and writes service catalogs as TOML, YAML or JSON files.
//
// Every format uses a single top-level key, services, holding the records
// in catalog order:
//
//	[[services]]
//	id = "aws-ec2"
//	name = "EC2"
//	provider = "AWS"
//	category = "Compute"
//
// The format is chosen from the file extension.
package file
