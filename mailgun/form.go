package mailgun

import "net/url"

// buildSendForm converts an OutboundEmail into the form body of the
// messages endpoint. HTML takes precedence over Text.
func buildSendForm(msg OutboundEmail) url.Values {
	form := url.Values{}
	form.Set("from", msg.From)
	form.Set("to", msg.To)
	form.Set("subject", msg.Subject)

	switch {
	case msg.HTML != "":
		form.Set("html", msg.HTML)
	case msg.Text != "":
		form.Set("text", msg.Text)
	}

	for _, addr := range msg.Cc {
		form.Add("cc", addr)
	}
	for _, addr := range msg.Bcc {
		form.Add("bcc", addr)
	}
	for _, tag := range msg.Tags {
		form.Add("o:tag", tag)
	}

	return form
}
