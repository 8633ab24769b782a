package usecasees

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"doctor/internal/controllers"
	"doctor/internal/usecasees/structs"
	"doctor/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	orderURLPath    = "/api/v3/order"
	holdingsURLPath = "/api/v3/positions"
)

// brokerUseCase is the read-only adapter over the broker API. It never
// submits, cancels or modifies anything.
type brokerUseCase struct {
	clientController controllers.ClientCtrl
	cryptoController controllers.CryptoCtrl

	url         string
	callTimeout time.Duration

	logger *logrus.Logger
}

func NewBrokerUseCase(
	client controllers.ClientCtrl,
	crypto controllers.CryptoCtrl,
	url string,
	callTimeout time.Duration,
	logger *logrus.Logger,
) *brokerUseCase {
	return &brokerUseCase{
		clientController: client,
		cryptoController: crypto,
		url:              url,
		callTimeout:      callTimeout,
		logger:           logger,
	}
}

func (u *brokerUseCase) GetOrder(ctx context.Context, externalID string) (*structs.BrokerOrder, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(orderURLPath)

	q := baseURL.Query()
	q.Set("orderId", externalID)
	q.Set("recvWindow", "60000")
	q.Set("timestamp", fmt.Sprintf("%d000", time.Now().Unix()))

	sig := u.cryptoController.GetSignature(q.Encode())
	q.Set("signature", sig)

	baseURL.RawQuery = q.Encode()

	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()

	req, err := u.clientController.Send(callCtx, http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, err
	}

	var out structs.BrokerOrder

	if err := json.Unmarshal(req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (u *brokerUseCase) ListHoldings(ctx context.Context) ([]structs.BrokerHolding, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(holdingsURLPath)

	q := baseURL.Query()
	q.Set("recvWindow", "60000")
	q.Set("timestamp", fmt.Sprintf("%d000", time.Now().Unix()))

	sig := u.cryptoController.GetSignature(q.Encode())
	q.Set("signature", sig)

	baseURL.RawQuery = q.Encode()

	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()

	req, err := u.clientController.Send(callCtx, http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, err
	}

	var out []structs.BrokerHolding

	if err := json.Unmarshal(req, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Snapshot reads broker truth for the given local orders plus all current
// holdings. A side that fails only clears its OK flag; the reachable side is
// still returned so the detector can keep working with it.
func (u *brokerUseCase) Snapshot(ctx context.Context, orders []models.Order) *structs.BrokerSnapshot {
	snapshot := &structs.BrokerSnapshot{
		Orders:     map[string]structs.BrokerOrder{},
		Holdings:   map[string]structs.BrokerHolding{},
		OrdersOK:   true,
		HoldingsOK: true,
		FetchedAt:  time.Now(),
	}

	for _, order := range orders {
		if order.ExternalID == "" {
			continue
		}

		brokerOrder, err := u.GetOrder(ctx, order.ExternalID)
		if err != nil {
			if errors.Is(err, controllers.ErrOrderNotFound) {
				continue
			}

			u.logger.
				WithError(err).
				WithField("externalID", order.ExternalID).
				Error("broker order lookup failed")

			snapshot.OrdersOK = false
			snapshot.OrdersErr = err

			break
		}

		snapshot.Orders[order.ExternalID] = *brokerOrder
	}

	holdings, err := u.ListHoldings(ctx)
	if err != nil {
		u.logger.
			WithError(err).
			Error("broker holdings lookup failed")

		snapshot.HoldingsOK = false
		snapshot.HoldingsErr = err

		return snapshot
	}

	for _, holding := range holdings {
		snapshot.Holdings[holding.Symbol] = holding
	}

	return snapshot
}
