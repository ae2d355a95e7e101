package mailgun

import "context"

// Send sends msg and decodes the acknowledgement into a T.
func Send[T any](ctx context.Context, c *Client, msg OutboundEmail) (T, error) {
	var out T
	err := c.SendEmail(ctx, msg, &out)
	return out, err
}

// Events fetches one events page as a T, usually EventsPage.
func Events[T any](ctx context.Context, c *Client) (T, error) {
	var out T
	err := c.GetAllEvents(ctx, &out)
	return out, err
}

// MessageByID fetches a stored message as a T, usually StoredMessage.
func MessageByID[T any](ctx context.Context, c *Client, id string) (T, error) {
	var out T
	err := c.GetMessageByID(ctx, id, &out)
	return out, err
}
