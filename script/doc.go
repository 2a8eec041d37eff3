/*
Package script applies TOML-scripted response sets to a mock procedure
client.

Scripts keep larger fixtures declarative: each [[procedure]] table names an
address and the canned outcome to return for it, and an optional [default]
table configures the client-wide default response. Scripts are parsed from
bytes, typically an embedded string or go:embed value; the package performs
no file I/O itself.

	var fixture = []byte(`
	[default]
	output = "fallback"

	[[procedure]]
	path = ["fs", "read"]
	output = "file contents"
	delay_ms = 25

	[[procedure]]
	path = ["fs", "write"]
	error = "EROFS"
	`)

	client, err := script.NewClient(fixture)

An error entry always wins over an output on the same procedure, matching
the response precedence of the procmock package.
*/
package script
