package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger

	apiKey string
}

func NewClientController(
	client *http.Client,
	apiKey string,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

var (
	ErrCodeOrderNotFound = -2013

	// ErrOrderNotFound means the broker answered and does not know the order.
	// It must stay distinguishable from ErrBrokerUnreachable: the first is
	// divergence evidence, the second only degrades the pass.
	ErrOrderNotFound     = fmt.Errorf("%s", "Order does not exist.")
	ErrBrokerUnreachable = fmt.Errorf("%s", "Broker unreachable.")
)

type ErrStruct struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (c *ClientController) Send(ctx context.Context, method string, url *url.URL, body []byte, useApiKey bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	if useApiKey {
		req.Header.Add("X-API-KEY", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrBrokerUnreachable, err.Error())
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		respErr, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
			var errMsg ErrStruct
			if err := json.Unmarshal(respErr, &errMsg); err != nil {
				return nil, err
			}
			switch errMsg.Code {
			case ErrCodeOrderNotFound:
				return nil, ErrOrderNotFound
			}

			return nil, fmt.Errorf("%s Err:%+v", "Unknown error", errMsg)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, errors.Wrap(ErrBrokerUnreachable,
				fmt.Sprintf("statusCode %d; resp %s;", resp.StatusCode, respErr))
		}

		return nil, errors.New(fmt.Sprintf("statusCode %d; resp %s;", resp.StatusCode, respErr))
	}

	out, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return out, nil
}
