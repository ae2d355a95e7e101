package mailgun

import "strings"

// Known API hosts.
const (
	EndpointUS = "api.mailgun.net"
	EndpointEU = "api.eu.mailgun.net"
)

// StorageEndpoint returns the stored-message host for an API host by
// replacing the first "api" with "storage".
func StorageEndpoint(endpoint string) string {
	return strings.Replace(endpoint, "api", "storage", 1)
}
