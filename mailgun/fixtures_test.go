package mailgun

// eventsPageJSON is an events page with one delivered and one accepted item.
const eventsPageJSON = `{
  "items": [
    {
      "id": "czsjqFATSlC3QtAK-C80nw",
      "event": "delivered",
      "timestamp": 1521243339.873676,
      "log-level": "info",
      "method": "http",
      "recipient": "alice@example.org",
      "recipient-domain": "example.org",
      "envelope": {
        "transport": "smtp",
        "sender": "bob@example.com",
        "sending-ip": "209.61.154.250",
        "targets": "alice@example.org"
      },
      "flags": {
        "is-routed": false,
        "is-authenticated": true,
        "is-test-mode": false
      },
      "message": {
        "headers": {
          "to": "Alice <alice@example.org>",
          "message-id": "20130503182626.18666.16540@example.com",
          "from": "Bob <bob@example.com>",
          "subject": "Test delivered webhook"
        },
        "attachments": [
          {"filename": "report.pdf", "content-type": "application/pdf", "size": 2048}
        ],
        "size": 111
      },
      "storage": {
        "url": "https://storage.mailgun.net/v3/domains/example.com/messages/AbC123",
        "key": "AbC123"
      },
      "delivery-status": {
        "tls": true,
        "mx-host": "smtp-in.example.org",
        "attempt-no": 1,
        "code": 250,
        "message": "OK",
        "certificate-verified": true,
        "description": "",
        "session-seconds": 0.43
      },
      "tags": ["welcome"],
      "user-variables": {"order": "42"},
      "campaigns": []
    },
    {
      "id": "b5dKOc3yQZuJeq_KIHEyiw",
      "event": "accepted",
      "timestamp": 1521243338.1,
      "log-level": "info",
      "recipient": "carol@example.org",
      "recipient-domain": "example.org",
      "envelope": {
        "transport": "smtp",
        "sender": "bob@example.com",
        "sending-ip": "209.61.154.250",
        "targets": "carol@example.org"
      },
      "flags": {},
      "message": {
        "headers": {
          "to": "carol@example.org",
          "message-id": "20130503182626.18666.16541@example.com",
          "from": "bob@example.com",
          "subject": "Hello"
        },
        "size": 90
      },
      "storage": {
        "url": "https://storage.mailgun.net/v3/domains/example.com/messages/XyZ789",
        "key": "XyZ789"
      }
    }
  ],
  "paging": {
    "first": "https://api.mailgun.net/v3/example.com/events/W3siYSI6IGZhbHNlfQ==",
    "last": "https://api.mailgun.net/v3/example.com/events/W3siYSI6IHRydWV9",
    "next": "https://api.mailgun.net/v3/example.com/events/W3siYiI6IDF9",
    "previous": "https://api.mailgun.net/v3/example.com/events/W3siYiI6IDB9"
  }
}`

// storedMessageJSON has lower-case and header-style duplicates that differ.
const storedMessageJSON = `{
  "from": "bob@example.com",
  "sender": "bob@example.com",
  "recipients": "alice@example.org",
  "subject": "hello",
  "To": "Alice <alice@example.org>",
  "From": "Bob <bob@example.com>",
  "Subject": "Hello, Alice",
  "Sender": "bounce@example.com",
  "Received": "by luna.mailgun.net with SMTP mgrt 8734663311733",
  "Date": "Fri, 03 May 2013 18:26:27 +0000",
  "Message-Id": "20130503182626.18666.16540@example.com",
  "Mime-Version": "1.0",
  "Content-Type": "multipart/alternative; boundary=\"eb663d73ae0a4d6c9153cc0aec8b7520\"",
  "body-plain": "Hi Alice,\n\nThanks.\n\n-- \nBob",
  "body-html": "<p>Hi Alice,</p><p>Thanks.</p>",
  "stripped-text": "Hi Alice,\n\nThanks.",
  "stripped-html": "<p>Hi Alice,</p>",
  "stripped-signature": "Bob",
  "message-headers": [
    ["Received", "by luna.mailgun.net with SMTP mgrt 8734663311733"],
    ["Received", "from mail.example.com (mail.example.com [10.0.0.1])"],
    ["Subject", "Hello, Alice"],
    ["From", "Bob <bob@example.com>"]
  ],
  "attachments": [
    {
      "size": "2048",
      "url": "https://storage.mailgun.net/v3/domains/example.com/messages/AbC123/attachments/0",
      "name": "report.pdf",
      "content-type": "application/pdf"
    }
  ],
  "content-id-map": {"ii_1":"https://storage.mailgun.net/v3/domains/example.com/messages/AbC123/attachments/1"}
}`
