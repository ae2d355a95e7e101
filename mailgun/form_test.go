package mailgun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSendForm_HTMLWinsOverText(t *testing.T) {
	t.Parallel()

	form := buildSendForm(OutboundEmail{
		From:    "bob@example.com",
		To:      "alice@example.org",
		Subject: "Hi",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})

	assert.Equal(t, "bob@example.com", form.Get("from"))
	assert.Equal(t, "alice@example.org", form.Get("to"))
	assert.Equal(t, "Hi", form.Get("subject"))
	assert.Equal(t, "<p>html body</p>", form.Get("html"))
	assert.NotContains(t, form, "text")
}

func TestBuildSendForm_HTMLOnly(t *testing.T) {
	t.Parallel()

	form := buildSendForm(OutboundEmail{HTML: "<b>x</b>"})

	assert.Equal(t, "<b>x</b>", form.Get("html"))
	assert.NotContains(t, form, "text")
}

func TestBuildSendForm_TextOnly(t *testing.T) {
	t.Parallel()

	form := buildSendForm(OutboundEmail{
		From:    "bob@example.com",
		To:      "alice@example.org",
		Subject: "Hi",
		Text:    "plain body",
	})

	assert.Equal(t, "plain body", form.Get("text"))
	assert.NotContains(t, form, "html")
}

func TestBuildSendForm_NoBody(t *testing.T) {
	t.Parallel()

	form := buildSendForm(OutboundEmail{From: "a@example.com", To: "b@example.com"})

	assert.NotContains(t, form, "text")
	assert.NotContains(t, form, "html")
	assert.Contains(t, form, "subject")
}

func TestBuildSendForm_RepeatedFields(t *testing.T) {
	t.Parallel()

	form := buildSendForm(OutboundEmail{
		Text: "body",
		Cc:   []string{"c1@example.com", "c2@example.com"},
		Bcc:  []string{"hidden@example.com"},
		Tags: []string{"welcome", "onboarding"},
	})

	assert.Equal(t, []string{"c1@example.com", "c2@example.com"}, form["cc"])
	assert.Equal(t, []string{"hidden@example.com"}, form["bcc"])
	assert.Equal(t, []string{"welcome", "onboarding"}, form["o:tag"])
}
