// Package api handles incoming HTTP requests and response formatting. It
// adapts the contact endpoint and the spotlight frame preview to the internal
// services, translating service errors into status codes and safe messages.
package api
