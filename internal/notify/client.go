package notify

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const pushoverAPI = "https://api.pushover.net/1/messages.json"

// Client delivers notifications through the Pushover message API.
// With empty credentials the client is disabled and Send is a no-op.
type Client struct {
	Token string
	User  string
}

func NewClient(token, user string) *Client {
	return &Client{Token: token, User: user}
}

func (c *Client) Enabled() bool {
	return c.Token != "" && c.User != ""
}

func (c *Client) Send(title, message string) error {
	if !c.Enabled() {
		return nil
	}

	params := url.Values{}
	params.Set("token", c.Token)
	params.Set("user", c.User)
	params.Set("title", title)
	params.Set("message", message)

	resp, err := http.PostForm(pushoverAPI, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pushover api error: status %s, body %s", resp.Status, string(body))
	}
	return nil
}
