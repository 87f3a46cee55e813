package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CallRPC posts the call to the server at node and returns the raw result,
// an error result of the server is returned as error.
func CallRPC(node, method string, params []interface{}) (json.RawMessage, error) {
	client := &http.Client{Timeout: 20 * time.Second}

	if params == nil {
		params = []interface{}{}
	}
	body, err := json.Marshal(Call{Method: method, Params: params})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("POST", node, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Close = true
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data json.RawMessage
	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return nil, err
	}
	var result struct {
		Error interface{} `json:"error"`
	}
	if json.Unmarshal(data, &result) == nil && result.Error != nil {
		return nil, fmt.Errorf("CallRPC(%s, %v) => %v", method, params, result.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CallRPC(%s, %v) => %s", method, params, resp.Status)
	}
	return data, nil
}
