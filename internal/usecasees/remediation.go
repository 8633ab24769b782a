package usecasees

import (
	"fmt"
	"time"

	"doctor/internal/repository/postgres"
	"doctor/internal/usecasees/structs"
	"doctor/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidTransition = errors.New("status transition not confirmed by the broker")
	ErrUnknownKind       = errors.New("unknown remediation kind")
)

// remediationUseCase applies one approved remediation to the local ledger.
// It depends on the ledger repositories only: there is no broker client to
// reach, so a broker-mutating fix cannot be expressed here.
type remediationUseCase struct {
	orderRepo    postgres.OrderRepo
	positionRepo postgres.PositionRepo

	logger *logrus.Logger
}

func NewRemediationUseCase(
	orderRepo postgres.OrderRepo,
	positionRepo postgres.PositionRepo,
	logger *logrus.Logger,
) *remediationUseCase {
	return &remediationUseCase{
		orderRepo:    orderRepo,
		positionRepo: positionRepo,
		logger:       logger,
	}
}

// Apply executes a single local mutation. Re-applying a remediation to an
// already-corrected record is a no-op; every write is one statement, so a
// failure leaves no partial state.
func (u *remediationUseCase) Apply(rem *structs.Remediation) error {
	switch rem.Kind {
	case structs.RemediationExpireOrder:
		return u.expireOrder(rem)
	case structs.RemediationAdoptStatus:
		return u.adoptOrderStatus(rem)
	case structs.RemediationClosePos:
		return u.closePosition(rem)
	case structs.RemediationSyncQuantity:
		return u.syncQuantity(rem)
	}

	return errors.Wrap(ErrUnknownKind, string(rem.Kind))
}

func (u *remediationUseCase) expireOrder(rem *structs.Remediation) error {
	order, err := u.orderRepo.GetByID(rem.OrderID)
	if err != nil {
		return err
	}

	if order.Status == models.OrderStatusExpired {
		return nil
	}

	if models.IsTerminalOrderStatus(order.Status) {
		return errors.Wrap(ErrInvalidTransition,
			fmt.Sprintf("%s -> %s", order.Status, models.OrderStatusExpired))
	}

	return u.orderRepo.Expire(rem.OrderID, rem.Reason, time.Now())
}

func (u *remediationUseCase) adoptOrderStatus(rem *structs.Remediation) error {
	order, err := u.orderRepo.GetByID(rem.OrderID)
	if err != nil {
		return err
	}

	if order.Status == rem.Status &&
		order.FilledQty == rem.FilledQty &&
		order.FilledAvgPrice == rem.FilledAvgPrice {
		return nil
	}

	if !models.CanAdvance(order.Status, rem.Status) {
		return errors.Wrap(ErrInvalidTransition,
			fmt.Sprintf("%s -> %s", order.Status, rem.Status))
	}

	if rem.FilledQty < 0 || rem.FilledQty > order.Quantity {
		return errors.New(fmt.Sprintf("broker filled qty %.8f out of bounds for qty %.8f",
			rem.FilledQty, order.Quantity))
	}

	return u.orderRepo.AdoptBrokerState(rem.OrderID, rem.Status, rem.FilledQty, rem.FilledAvgPrice, time.Now())
}

func (u *remediationUseCase) closePosition(rem *structs.Remediation) error {
	position, err := u.positionRepo.GetByID(rem.PositionID)
	if err != nil {
		return err
	}

	if position.Status == models.PositionStatusClosed {
		return nil
	}

	if position.Status != models.PositionStatusOpen {
		return errors.New(fmt.Sprintf("position %s is %s, not open", rem.PositionID, position.Status))
	}

	return u.positionRepo.Close(rem.PositionID, time.Now())
}

func (u *remediationUseCase) syncQuantity(rem *structs.Remediation) error {
	position, err := u.positionRepo.GetByID(rem.PositionID)
	if err != nil {
		return err
	}

	if position.Status != models.PositionStatusOpen {
		return errors.New(fmt.Sprintf("position %s is %s, not open", rem.PositionID, position.Status))
	}

	if position.Quantity == rem.Quantity {
		return nil
	}

	if rem.Quantity < 0 {
		return errors.New(fmt.Sprintf("broker qty %.8f is negative", rem.Quantity))
	}

	return u.positionRepo.SetQuantity(rem.PositionID, rem.Quantity, time.Now())
}
