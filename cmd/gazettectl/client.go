package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Client struct {
	baseURL string
	auth    string
}

func NewClient(baseURL, auth string) *Client {
	return &Client{baseURL: baseURL, auth: auth}
}

func (c *Client) Get(path string, out interface{}) error {
	resp, err := http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func (c *Client) Post(path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewReader(b)
	}
	req, _ := http.NewRequest("POST", c.baseURL+path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if c.auth != "" {
		req.Header.Set("X-Dev-Auth", c.auth)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func parseResponse(resp *http.Response, out interface{}) error {
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		// The audit endpoint answers {"error": ...}, everything else
		// {"code","message"}.
		var errResp struct {
			Error   string `json:"error"`
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		json.Unmarshal(b, &errResp)
		if errResp.Error != "" {
			if errResp.Message != "" {
				return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
			}
			return fmt.Errorf("%s", errResp.Error)
		}
		if errResp.Code != "" {
			return fmt.Errorf("%s: %s", errResp.Code, errResp.Message)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(b, out)
	}
	return nil
}
