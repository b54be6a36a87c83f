// Package ports defines interfaces between layers in the hexagonal architecture.
// Repository and publisher ports are implemented by outbound adapters and
// called by the application layer; health ports are shared with the HTTP
// adapter.
package ports
