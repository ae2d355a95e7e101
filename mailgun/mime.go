package mailgun

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// ParsedMIME is the decoded content of a raw stored message.
type ParsedMIME struct {
	From        []string
	To          []string
	Subject     string
	MessageID   string
	Text        string
	HTML        string
	Attachments []MIMEAttachment

	// Skipped lists parts that were left out, with the reason.
	Skipped []SkippedPart
}

// SkippedPart describes a MIME part ParseMIME could not use.
type SkippedPart struct {
	ContentType string
	Reason      string
}

// MIMEAttachment is a decoded attachment part.
type MIMEAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ParseMIME decodes the BodyMIME of a StoredMIME. The first text/plain and
// text/html parts become Text and HTML; parts with attachment disposition
// or a filename become attachments. Transfer encodings and charsets are
// decoded. Parts with an unknown charset or transfer encoding, and inline
// parts that are neither a body nor named, are reported in Skipped.
func ParseMIME(raw string) (*ParsedMIME, error) {
	mr, err := mail.CreateReader(strings.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	defer mr.Close()

	result := &ParsedMIME{
		From: addressList(mr.Header, "From"),
		To:   addressList(mr.Header, "To"),
	}
	if result.Subject, err = mr.Header.Subject(); err != nil {
		result.Subject = mr.Header.Get("Subject")
	}
	if result.MessageID, err = mr.Header.MessageID(); err != nil {
		result.MessageID = mr.Header.Get("Message-Id")
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if message.IsUnknownCharset(err) || message.IsUnknownEncoding(err) {
				result.Skipped = append(result.Skipped, SkippedPart{Reason: err.Error()})
				continue
			}
			return nil, fmt.Errorf("failed to read next part: %w", err)
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			mediaType, params, _ := h.ContentType()
			content, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s part: %w", mediaType, err)
			}

			switch {
			case mediaType == "text/plain" && result.Text == "":
				result.Text = string(content)
			case mediaType == "text/html" && result.HTML == "":
				result.HTML = string(content)
			default:
				filename := inlineFilename(h, params)
				if filename == "" {
					result.Skipped = append(result.Skipped, SkippedPart{
						ContentType: mediaType,
						Reason:      "inline part without a filename",
					})
					continue
				}
				result.Attachments = append(result.Attachments, MIMEAttachment{
					Filename:    filename,
					ContentType: mediaType,
					Content:     content,
				})
			}

		case *mail.AttachmentHeader:
			filename, _ := h.Filename()
			mediaType, _, _ := h.ContentType()
			content, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to read attachment %q: %w", filename, err)
			}
			result.Attachments = append(result.Attachments, MIMEAttachment{
				Filename:    filename,
				ContentType: mediaType,
				Content:     content,
			})
		}
	}

	return result, nil
}

// addressList returns the bare addresses of a header, falling back to a
// comma split when the list does not parse as RFC 5322.
func addressList(h mail.Header, key string) []string {
	addrs, err := h.AddressList(key)
	if err != nil {
		var out []string
		for _, p := range strings.Split(h.Get(key), ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.Address)
	}
	return out
}

// inlineFilename looks for a filename on an inline part, in the
// Content-Disposition first and the Content-Type name parameter second.
func inlineFilename(h *mail.InlineHeader, params map[string]string) string {
	if _, dparams, err := h.ContentDisposition(); err == nil && dparams["filename"] != "" {
		return dparams["filename"]
	}
	return params["name"]
}
