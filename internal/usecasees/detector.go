package usecasees

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"doctor/internal/repository/postgres"
	"doctor/internal/usecasees/structs"
	"doctor/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// detectorUseCase classifies divergence between the local ledger and a broker
// snapshot into typed issues. Evaluation order is fixed: orders, then
// positions, then staleness, so position-level decisions always see the
// order-derived evidence of the same pass.
type detectorUseCase struct {
	broker       *brokerUseCase
	orderRepo    postgres.OrderRepo
	positionRepo postgres.PositionRepo

	qtyTolerance float64
	stuckAfter   time.Duration
	staleAfter   time.Duration

	logger *logrus.Logger
}

func NewDetectorUseCase(
	broker *brokerUseCase,
	orderRepo postgres.OrderRepo,
	positionRepo postgres.PositionRepo,
	qtyTolerance float64,
	stuckAfter time.Duration,
	staleAfter time.Duration,
	logger *logrus.Logger,
) *detectorUseCase {
	return &detectorUseCase{
		broker:       broker,
		orderRepo:    orderRepo,
		positionRepo: positionRepo,
		qtyTolerance: qtyTolerance,
		stuckAfter:   stuckAfter,
		staleAfter:   staleAfter,
		logger:       logger,
	}
}

// Detect runs one full classification. A non-nil error means the ledger
// itself was unreadable; whatever issues could still be determined are
// returned alongside it.
func (u *detectorUseCase) Detect(ctx context.Context) ([]structs.Issue, error) {
	var issues []structs.Issue

	now := time.Now()

	orders, err := u.orderRepo.GetActive()
	if err != nil {
		issues = append(issues, connectivityIssue("ledger:orders", err))
		return issues, errors.Wrap(err, "read active orders")
	}

	positions, err := u.positionRepo.GetOpen()
	if err != nil {
		issues = append(issues, connectivityIssue("ledger:positions", err))
		return issues, errors.Wrap(err, "read open positions")
	}

	snapshot := u.broker.Snapshot(ctx, orders)

	issues = append(issues, u.checkOrders(orders, snapshot, now)...)
	issues = append(issues, u.checkPositions(positions, snapshot)...)
	issues = append(issues, u.checkStaleness(orders, positions, now)...)

	return issues, nil
}

func (u *detectorUseCase) checkOrders(orders []models.Order, snapshot *structs.BrokerSnapshot, now time.Time) []structs.Issue {
	var issues []structs.Issue

	if !snapshot.OrdersOK {
		issues = append(issues, connectivityIssue("broker:orders", snapshot.OrdersErr))
		return issues
	}

	for _, order := range orders {
		if order.ExternalID == "" {
			// Never submitted. Only worth flagging once it has been
			// sitting around past the stuck threshold.
			if order.Age(now) >= u.stuckAfter {
				issues = append(issues, u.stuckOrderIssue(&order, now))
			}
			continue
		}

		brokerOrder, found := snapshot.Orders[order.ExternalID]
		if !found {
			if order.Age(now) < u.stuckAfter {
				issues = append(issues, structs.Issue{
					Type:     structs.IssueOrderNotFound,
					Severity: structs.SeverityWarning,
					Subject:  fmt.Sprintf("order:%s", order.ID),
					Evidence: structs.Evidence{
						LocalStatus: order.Status,
						Symbol:      order.Symbol,
						ExternalID:  order.ExternalID,
						OrderAge:    order.Age(now).String(),
						Detail:      "order unknown to the broker",
					},
					Remediation: &structs.Remediation{
						Kind:    structs.RemediationExpireOrder,
						OrderID: order.ID,
						Reason:  "expired: order unknown to the broker",
					},
				})
			} else {
				issues = append(issues, u.stuckOrderIssue(&order, now))
			}
			continue
		}

		if brokerOrder.Status != order.Status {
			issues = append(issues, u.statusMismatchIssue(&order, &brokerOrder))
		}
	}

	return issues
}

func (u *detectorUseCase) stuckOrderIssue(order *models.Order, now time.Time) structs.Issue {
	return structs.Issue{
		Type:     structs.IssueStuckOrder,
		Severity: structs.SeverityWarning,
		Subject:  fmt.Sprintf("order:%s", order.ID),
		Evidence: structs.Evidence{
			LocalStatus: order.Status,
			Symbol:      order.Symbol,
			ExternalID:  order.ExternalID,
			OrderAge:    order.Age(now).String(),
			Detail:      "order stuck in a non-terminal status past the threshold",
		},
		Remediation: &structs.Remediation{
			Kind:    structs.RemediationExpireOrder,
			OrderID: order.ID,
			Reason:  "expired: stuck past threshold",
		},
	}
}

func (u *detectorUseCase) statusMismatchIssue(order *models.Order, brokerOrder *structs.BrokerOrder) structs.Issue {
	issue := structs.Issue{
		Type:     structs.IssueOrderStatusMismatch,
		Severity: structs.SeverityWarning,
		Subject:  fmt.Sprintf("order:%s", order.ID),
		Evidence: structs.Evidence{
			LocalStatus:    order.Status,
			BrokerStatus:   brokerOrder.Status,
			FilledQty:      brokerOrder.FilledQty,
			FilledAvgPrice: brokerOrder.FilledAvgPrice,
			Symbol:         order.Symbol,
			ExternalID:     order.ExternalID,
		},
	}

	// Broker truth is only adoptable along a confirmed forward transition.
	// Anything else (a rewound status, an unknown status string) carries no
	// remediation and falls through to escalation.
	if models.CanAdvance(order.Status, brokerOrder.Status) {
		issue.Remediation = &structs.Remediation{
			Kind:           structs.RemediationAdoptStatus,
			OrderID:        order.ID,
			Status:         brokerOrder.Status,
			FilledQty:      brokerOrder.FilledQty,
			FilledAvgPrice: brokerOrder.FilledAvgPrice,
		}
	} else {
		issue.Severity = structs.SeverityCritical
		issue.Evidence.Detail = "broker status is not a forward transition"
	}

	return issue
}

func (u *detectorUseCase) checkPositions(positions []models.Position, snapshot *structs.BrokerSnapshot) []structs.Issue {
	var issues []structs.Issue

	if !snapshot.HoldingsOK {
		issues = append(issues, connectivityIssue("broker:holdings", snapshot.HoldingsErr))
		return issues
	}

	seen := map[string]bool{}

	for _, position := range positions {
		seen[position.Symbol] = true

		holding, found := snapshot.Holdings[position.Symbol]
		if !found {
			issues = append(issues, structs.Issue{
				Type:     structs.IssuePhantomPosition,
				Severity: structs.SeverityWarning,
				Subject:  fmt.Sprintf("position:%s", position.ID),
				Evidence: structs.Evidence{
					Symbol:   position.Symbol,
					LocalQty: position.Quantity,
					Detail:   "no broker holding for an open local position",
				},
				Remediation: &structs.Remediation{
					Kind:       structs.RemediationClosePos,
					PositionID: position.ID,
					Reason:     "closed: no holding at the broker",
				},
			})
			continue
		}

		if position.Quantity <= 0 {
			continue
		}

		relDiff := math.Abs(position.Quantity-holding.Qty) / position.Quantity
		if relDiff < 1e-9 {
			continue
		}

		severity := structs.SeverityWarning
		if relDiff > u.qtyTolerance {
			severity = structs.SeverityCritical
		}

		issues = append(issues, structs.Issue{
			Type:     structs.IssueQtyMismatch,
			Severity: severity,
			Subject:  fmt.Sprintf("position:%s", position.ID),
			Evidence: structs.Evidence{
				Symbol:    position.Symbol,
				LocalQty:  position.Quantity,
				BrokerQty: holding.Qty,
				Detail:    fmt.Sprintf("relative diff %.4f", relDiff),
			},
			Remediation: &structs.Remediation{
				Kind:       structs.RemediationSyncQuantity,
				PositionID: position.ID,
				Quantity:   holding.Qty,
			},
		})
	}

	// Broker holdings with no local open position. Deliberately no
	// remediation: adopting one silently would mask a bug involving real
	// capital.
	var orphanSymbols []string
	for symbol := range snapshot.Holdings {
		if !seen[symbol] {
			orphanSymbols = append(orphanSymbols, symbol)
		}
	}
	sort.Strings(orphanSymbols)

	for _, symbol := range orphanSymbols {
		holding := snapshot.Holdings[symbol]

		issues = append(issues, structs.Issue{
			Type:     structs.IssueOrphanPosition,
			Severity: structs.SeverityCritical,
			Subject:  fmt.Sprintf("symbol:%s", symbol),
			Evidence: structs.Evidence{
				Symbol:    symbol,
				BrokerQty: holding.Qty,
				Detail:    "broker holding with no local open position",
			},
		})
	}

	return issues
}

func (u *detectorUseCase) checkStaleness(orders []models.Order, positions []models.Position, now time.Time) []structs.Issue {
	if len(orders) == 0 && len(positions) == 0 {
		// No active session, silence is expected.
		return nil
	}

	last, err := u.orderRepo.LastActivityAt()
	if err != nil {
		u.logger.
			WithError(err).
			Error("last activity lookup failed")
		return nil
	}

	if now.Sub(last) <= u.staleAfter {
		return nil
	}

	return []structs.Issue{{
		Type:     structs.IssueCycleStale,
		Severity: structs.SeverityInfo,
		Subject:  "ledger",
		Evidence: structs.Evidence{
			LastActivity: last,
			Detail:       fmt.Sprintf("no ledger activity for %s", now.Sub(last).Round(time.Second)),
		},
	}}
}

func connectivityIssue(subject string, err error) structs.Issue {
	detail := "unreachable"
	if err != nil {
		detail = err.Error()
	}

	return structs.Issue{
		Type:     structs.IssueConnectivity,
		Severity: structs.SeverityCritical,
		Subject:  subject,
		Evidence: structs.Evidence{
			Detail: detail,
		},
	}
}
