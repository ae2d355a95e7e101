// Package mailgun is a typed client for the Mailgun HTTP API: sending
// email, listing the event log and fetching stored messages.
package mailgun

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutboundEmail holds the parameters of a single send call.
// Addresses are passed through to the provider without local validation.
type OutboundEmail struct {
	From    string
	To      string
	Subject string

	// Text and HTML are alternative bodies. When HTML is set, Text is not sent.
	Text string
	HTML string

	Cc   []string
	Bcc  []string
	Tags []string
}

// Response records the HTTP status a result was decoded from. It is not
// part of the wire format.
type Response struct {
	StatusCode int `json:"-"`
}

// SetStatusCode implements StatusRecorder.
func (r *Response) SetStatusCode(code int) { r.StatusCode = code }

// OK reports whether the reply had a 2xx status. A provider error payload
// can decode cleanly into a result type, so check this before trusting it.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// SendResponse is the acknowledgement returned for an accepted message.
// On rejection Message carries the provider's explanation.
type SendResponse struct {
	Response

	ID      string `json:"id"`
	Message string `json:"message"`
}

// EventsPage is one page of the domain event log.
type EventsPage struct {
	Response

	Items  []Item `json:"items"`
	Paging Paging `json:"paging"`
}

// HasNext reports whether the page carries a cursor to a following page.
func (p *EventsPage) HasNext() bool {
	return p.Paging.Next != ""
}

// Paging holds the opaque cursor URLs of an events page.
type Paging struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

// Item is a single logged event.
type Item struct {
	ID              string          `json:"id"`
	Event           string          `json:"event"`
	Timestamp       float64         `json:"timestamp"`
	LogLevel        string          `json:"log-level"`
	Method          string          `json:"method,omitempty"`
	Recipient       string          `json:"recipient"`
	RecipientDomain string          `json:"recipient-domain"`
	Envelope        Envelope        `json:"envelope"`
	Flags           Flags           `json:"flags"`
	Message         Message         `json:"message"`
	Storage         Storage         `json:"storage"`
	DeliveryStatus  *DeliveryStatus `json:"delivery-status,omitempty"`
	Tags            []string        `json:"tags,omitempty"`

	// Shapes of these are account-defined.
	UserVariables json.RawMessage `json:"user-variables,omitempty"`
	Campaigns     json.RawMessage `json:"campaigns,omitempty"`
}

// Envelope is the SMTP envelope of an event.
type Envelope struct {
	Transport string `json:"transport"`
	Sender    string `json:"sender"`
	SendingIP string `json:"sending-ip"`
	Targets   string `json:"targets"`
}

// Flags are independently optional event flags.
type Flags struct {
	IsRouted        *bool `json:"is-routed,omitempty"`
	IsAuthenticated *bool `json:"is-authenticated,omitempty"`
	IsSystemTest    *bool `json:"is-system-test,omitempty"`
	IsTestMode      *bool `json:"is-test-mode,omitempty"`
}

// Message describes the message an event refers to.
type Message struct {
	Headers     MessageSummary    `json:"headers"`
	Attachments []EventAttachment `json:"attachments,omitempty"`
	Size        int64             `json:"size"`
}

// MessageSummary is the subset of headers included in an event.
type MessageSummary struct {
	To        string `json:"to"`
	MessageID string `json:"message-id"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
}

// EventAttachment is attachment metadata as reported in the event log.
type EventAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content-type"`
	Size        int64  `json:"size"`
}

// Storage locates the stored copy of a message. Key is accepted by
// Client.GetMessageByID.
type Storage struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// DeliveryStatus is the SMTP-level outcome of a delivery attempt.
type DeliveryStatus struct {
	TLS                 bool    `json:"tls"`
	MXHost              string  `json:"mx-host"`
	AttemptNo           int     `json:"attempt-no"`
	Code                int     `json:"code"`
	Message             string  `json:"message"`
	CertificateVerified bool    `json:"certificate-verified"`
	Description         string  `json:"description,omitempty"`
	SessionSeconds      float64 `json:"session-seconds,omitempty"`
}

// StoredMessage is the full content of a stored message.
//
// The provider returns some values twice, once under a lower-case key and
// once under the header name (from/From, subject/Subject, sender/Sender).
// They are kept as separate fields because they can differ.
type StoredMessage struct {
	Response

	From       string `json:"from"`
	Sender     string `json:"sender"`
	Recipients string `json:"recipients"`
	Subject    string `json:"subject"`

	HeaderTo          string `json:"To"`
	HeaderFrom        string `json:"From"`
	HeaderSubject     string `json:"Subject"`
	HeaderSender      string `json:"Sender,omitempty"`
	HeaderReceived    string `json:"Received"`
	HeaderDate        string `json:"Date,omitempty"`
	HeaderMessageID   string `json:"Message-Id,omitempty"`
	HeaderMimeVersion string `json:"Mime-Version,omitempty"`
	HeaderContentType string `json:"Content-Type,omitempty"`

	BodyPlain         string `json:"body-plain"`
	BodyHTML          string `json:"body-html"`
	StrippedText      string `json:"stripped-text"`
	StrippedHTML      string `json:"stripped-html"`
	StrippedSignature string `json:"stripped-signature"`

	MessageHeaders MessageHeaders  `json:"message-headers"`
	Attachments    []Attachment    `json:"attachments"`
	ContentIDMap   json.RawMessage `json:"content-id-map,omitempty"`
}

// Attachment is a stored attachment. Size is textual on the wire.
type Attachment struct {
	Size        string `json:"size"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	ContentType string `json:"content-type"`
}

// StoredMIME is a stored message fetched in its raw MIME form.
type StoredMIME struct {
	Response

	Recipients string `json:"recipients"`
	Sender     string `json:"sender"`
	From       string `json:"from"`
	Subject    string `json:"subject"`
	BodyMIME   string `json:"body-mime"`
}

// HeaderPair is a header name and value, encoded as a two-element array.
type HeaderPair [2]string

// Name returns the header name.
func (p HeaderPair) Name() string { return p[0] }

// Value returns the header value.
func (p HeaderPair) Value() string { return p[1] }

// UnmarshalJSON rejects entries that are not exactly a name and a value.
func (p *HeaderPair) UnmarshalJSON(data []byte) error {
	var fields []string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) != 2 {
		return fmt.Errorf("mailgun: header entry has %d elements, want 2", len(fields))
	}
	p[0], p[1] = fields[0], fields[1]
	return nil
}

// MessageHeaders is an ordered header list. Repeated names stay as
// separate entries.
type MessageHeaders []HeaderPair

// Get returns the first value for name, compared case-insensitively.
func (h MessageHeaders) Get(name string) string {
	for _, p := range h {
		if strings.EqualFold(p.Name(), name) {
			return p.Value()
		}
	}
	return ""
}

// Values returns every value for name in wire order.
func (h MessageHeaders) Values(name string) []string {
	var values []string
	for _, p := range h {
		if strings.EqualFold(p.Name(), name) {
			values = append(values, p.Value())
		}
	}
	return values
}
