// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/pkg/errors"
)

// apiClient is the programmatic interface to a running server's
// health/readiness/DLQ API, the same thin wrapper model.Client provides
// for the teacher's provisioning server.
type apiClient struct {
	address    string
	httpClient *http.Client
}

func newAPIClient(address string) *apiClient {
	return &apiClient{
		address:    address,
		httpClient: &http.Client{},
	}
}

func closeBody(r *http.Response) {
	if r.Body != nil {
		_, _ = ioutil.ReadAll(r.Body)
		_ = r.Body.Close()
	}
}

func (c *apiClient) buildURL(urlPath string, args ...interface{}) string {
	return fmt.Sprintf("%s%s", c.address, fmt.Sprintf(urlPath, args...))
}

func (c *apiClient) doGet(u string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create http request")
	}
	return c.httpClient.Do(req)
}

func (c *apiClient) doPost(u string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(nil))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create http request")
	}
	return c.httpClient.Do(req)
}

func (c *apiClient) doDelete(u string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create http request")
	}
	return c.httpClient.Do(req)
}

// decodeJSON decodes resp's body into v, returning an error carrying the
// status code when the request did not succeed.
func decodeJSON(resp *http.Response, v interface{}) error {
	defer closeBody(resp)
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("request failed with status code %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "    ")
	return encoder.Encode(data)
}
